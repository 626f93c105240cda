package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// NormalizeExpression is spec §4.1's `normalizeExpression(sourceNode) →
// ilExpr`.
func (n *Normalizer) NormalizeExpression(expr sourceast.Expression) ilast.Expression {
	switch e := expr.(type) {
	case nil:
		return nil
	case *sourceast.Literal:
		return n.normalizeLiteral(e)
	case *sourceast.Identifier:
		return &ilast.Identifier{Name: e.Name}
	case *sourceast.BinaryExpr:
		return n.normalizeBinary(e)
	case *sourceast.UnaryExpr:
		return n.normalizeUnary(e)
	case *sourceast.AssignExpr:
		return &ilast.AssignExpr{Op: e.Op, Target: n.NormalizeExpression(e.Target), Value: n.NormalizeExpression(e.Value)}
	case *sourceast.ConditionalExpr:
		return &ilast.Conditional{Test: n.NormalizeExpression(e.Test), Then: n.NormalizeExpression(e.Then), Else: n.NormalizeExpression(e.Else)}
	case *sourceast.CallExpr:
		return n.normalizeCall(e)
	case *sourceast.NewExpr:
		return n.normalizeNew(e)
	case *sourceast.MemberExpr:
		return n.normalizeMember(e)
	case *sourceast.IndexExpr:
		return &ilast.Subscript{Object: n.NormalizeExpression(e.Object), Index: n.NormalizeExpression(e.Index)}
	case *sourceast.SliceExpr:
		return &ilast.Slice{Object: n.NormalizeExpression(e.Object), Start: n.NormalizeExpression(e.Start), End: n.NormalizeExpression(e.End)}
	case *sourceast.LambdaExpr:
		return n.normalizeLambda(e)
	case *sourceast.ListLit:
		var els []ilast.Expression
		for _, el := range e.Elements {
			els = append(els, n.NormalizeExpression(el))
		}
		return &ilast.ListLit{Elements: els}
	case *sourceast.DictLit:
		var entries []ilast.DictEntry
		for _, d := range e.Entries {
			entries = append(entries, ilast.DictEntry{Key: n.NormalizeExpression(d.Key), Value: n.NormalizeExpression(d.Value)})
		}
		return &ilast.DictLit{Entries: entries}
	case *sourceast.SpreadExpr:
		return &ilast.Spread{Argument: n.NormalizeExpression(e.Argument)}
	case *sourceast.TemplateLiteral:
		var parts []ilast.StringPart
		for _, p := range e.Parts {
			parts = append(parts, ilast.StringPart{Text: p.Text, Expr: n.NormalizeExpression(p.Expr)})
		}
		return &ilast.StringInterpolation{Parts: parts}
	default:
		n.sess.WarnUnknown(expr.Kind(), pos(expr), expr)
		return &ilast.Unknown{NodeKind: expr.Kind()}
	}
}

func (n *Normalizer) normalizeLiteral(e *sourceast.Literal) *ilast.Literal {
	switch e.LitKind {
	case sourceast.LitInt:
		return ilast.NewIntLiteral(e.Int, ilast.W0)
	case sourceast.LitFloat:
		return ilast.NewFloatLiteral(e.Float)
	case sourceast.LitBool:
		return ilast.NewBoolLiteral(e.Bool)
	case sourceast.LitString:
		return ilast.NewStringLiteral(e.Str)
	case sourceast.LitBytes:
		return &ilast.Literal{LitKind: ilast.LBytes, Bytes: e.Bytes}
	case sourceast.LitNull:
		return ilast.NewNullLiteral()
	case sourceast.LitRegex:
		return &ilast.Literal{LitKind: ilast.LRegex, Regex: e.Regex}
	case sourceast.LitBigInt:
		return &ilast.Literal{LitKind: ilast.LBigInt, BigInt: e.BigInt}
	default:
		return ilast.NewNullLiteral()
	}
}

// normalizeUnary handles plain unary operators directly; pre/post
// increment and decrement are left as ilast.IncDec for the Target
// Transformer to bifurcate (spec §4.2.3).
func (n *Normalizer) normalizeUnary(e *sourceast.UnaryExpr) ilast.Expression {
	switch e.Op {
	case sourceast.UnaryPreInc:
		return &ilast.IncDec{Pre: true, Delta: 1, Operand: n.NormalizeExpression(e.Operand)}
	case sourceast.UnaryPreDec:
		return &ilast.IncDec{Pre: true, Delta: -1, Operand: n.NormalizeExpression(e.Operand)}
	case sourceast.UnaryPostInc:
		return &ilast.IncDec{Pre: false, Delta: 1, Operand: n.NormalizeExpression(e.Operand)}
	case sourceast.UnaryPostDec:
		return &ilast.IncDec{Pre: false, Delta: -1, Operand: n.NormalizeExpression(e.Operand)}
	case sourceast.UnaryBitNot:
		operand := n.NormalizeExpression(e.Operand)
		return &ilast.Bitwise{TypedExpr: ilast.TypedExpr{Type: ilast.TInt(ilast.W32)}, Op: ilast.BitNot, Left: operand, Bits: ilast.W32}
	default:
		operand := n.NormalizeExpression(e.Operand)
		return &ilast.Unary{TypedExpr: ilast.TypedExpr{Type: operand.ResultType()}, Op: string(e.Op), Operand: operand}
	}
}
