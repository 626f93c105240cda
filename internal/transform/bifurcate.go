// This file implements spec §4.2.3's statement/expression bifurcation:
// the Source allows assignments and pre/post-increments in expression
// position; Python and BASIC do not. lowerExpr walks an IL expression
// and, whenever it finds an AssignExpr or IncDec, pushes the
// corresponding target-statement onto the Collector threaded in from
// the enclosing statement (spec §9: "a scoped collector passed by
// exclusive reference", never ambient global state) and returns a bare
// value reference in its place.
package transform

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

// lowerExpressionStmt is the statement-level entry point for an IL
// ExpressionStmt. It recognizes the two shapes the normalizer
// deliberately leaves for this layer to resolve (see
// normalizer.normalizeExpressionStmt's doc comment): a chained
// assignment (spec §4.2.3 rule 4) and a bare top-level assignment/
// increment, before falling back to a general side-effect expression.
func (t *Transformer) lowerExpressionStmt(s *ilast.ExpressionStmt, col *session.Collector) []targetast.Statement {
	switch e := s.Expr.(type) {
	case *ilast.AssignExpr:
		if targets, value, ok := flattenAssignChain(e); ok {
			var out []targetast.Statement
			for i := len(targets) - 1; i >= 0; i-- {
				out = append(out, &targetast.Assign{Op: "=", Target: t.lowerExpr(targets[i], col), Value: t.lowerExpr(value, col)})
			}
			return out
		}
		return []targetast.Statement{&targetast.Assign{Op: e.Op, Target: t.lowerExpr(e.Target, col), Value: t.lowerExpr(e.Value, col)}}
	case *ilast.IncDec:
		return []targetast.Statement{incDecStatement(e, t.lowerExpr(e.Operand, col))}
	default:
		return []targetast.Statement{&targetast.ExpressionStmt{Expr: t.lowerExpr(s.Expr, col)}}
	}
}

// flattenAssignChain detects `a = b = c = v` (spec §4.2.3 rule 4): a
// right-nested run of `=`-assignments to plain identifiers. It returns
// the chain's targets in outer-to-inner order (a, b, c) and the final
// right-hand value v. ok is false for anything else (a single
// assignment, a chain through a non-identifier target, a chain using a
// compound operator), in which case the caller lowers e as an ordinary
// assignment instead.
func flattenAssignChain(e *ilast.AssignExpr) (targets []ilast.Expression, value ilast.Expression, ok bool) {
	if e.Op != "=" {
		return nil, nil, false
	}
	if _, isIdent := e.Target.(*ilast.Identifier); !isIdent {
		return nil, nil, false
	}
	targets = append(targets, e.Target)
	cur := e.Value
	for {
		next, isAssign := cur.(*ilast.AssignExpr)
		if !isAssign || next.Op != "=" {
			break
		}
		if _, isIdent := next.Target.(*ilast.Identifier); !isIdent {
			break
		}
		targets = append(targets, next.Target)
		cur = next.Value
	}
	if len(targets) < 2 {
		return nil, nil, false
	}
	return targets, cur, true
}

// incDecStatement renders a bare `n += 1` / `n -= 1` statement for an
// IncDec, used both for a standalone `n++;` statement and for the pre/
// post-statements pushed while bifurcating a nested increment.
func incDecStatement(e *ilast.IncDec, operand targetast.Expression) targetast.Statement {
	op := "+="
	if e.Delta < 0 {
		op = "-="
	}
	return &targetast.Assign{Op: op, Target: operand, Value: &targetast.Literal{LitKind: targetast.LInt, Int: 1}}
}

// lowerExpr is spec §4.2.3's expression-lowering core: every recursive
// call threads the same col so a side effect discovered arbitrarily deep
// inside an expression tree still lands in the correct enclosing
// statement's pre/post queue (spec §5 ordering guarantee: sub-expressions
// are visited in source order, so queue order is deterministic).
func (t *Transformer) lowerExpr(e ilast.Expression, col *session.Collector) targetast.Expression {
	switch x := e.(type) {
	case nil:
		return nil
	case *ilast.AssignExpr:
		return t.lowerAssignExprInPlace(x, col)
	case *ilast.IncDec:
		return t.lowerIncDecInPlace(x, col)
	case *ilast.Literal:
		return t.lowerLiteral(x)
	case *ilast.Identifier:
		return &targetast.Identifier{Name: t.varName(x.Name)}
	case *ilast.Binary:
		return t.lowerBinary(x, col)
	case *ilast.Unary:
		return &targetast.Unary{Op: x.Op, Operand: t.lowerExpr(x.Operand, col)}
	case *ilast.Conditional:
		return &targetast.Conditional{Test: t.lowerExpr(x.Test, col), Then: t.lowerExpr(x.Then, col), Else: t.lowerExpr(x.Else, col)}
	case *ilast.Call:
		return &targetast.Call{Callee: t.lowerExpr(x.Callee, col), Args: t.lowerExprList(x.Args, col)}
	case *ilast.New:
		return &targetast.New{ClassName: t.className(x.ClassName), Args: t.lowerExprList(x.Args, col)}
	case *ilast.MemberAccess:
		return &targetast.MemberAccess{Object: t.lowerExpr(x.Object, col), Property: t.memberName(x.Object, x.Property)}
	case *ilast.Subscript:
		return &targetast.Subscript{Object: t.lowerExpr(x.Object, col), Index: t.lowerExpr(x.Index, col)}
	case *ilast.Slice:
		return &targetast.Slice{Object: t.lowerExpr(x.Object, col), Start: t.lowerExpr(x.Start, col), End: t.lowerExpr(x.End, col)}
	case *ilast.Lambda:
		return t.lowerLambda(x, col)
	case *ilast.ListLit:
		return &targetast.ListLit{Elements: t.lowerExprList(x.Elements, col)}
	case *ilast.DictLit:
		entries := make([]targetast.DictEntry, 0, len(x.Entries))
		for _, en := range x.Entries {
			entries = append(entries, targetast.DictEntry{Key: t.lowerExpr(en.Key, col), Value: t.lowerExpr(en.Value, col)})
		}
		return &targetast.DictLit{Entries: entries}
	case *ilast.TupleLit:
		return t.lowerTupleLit(x, col)
	case *ilast.Spread:
		return t.lowerExpr(x.Argument, col) // targets with no native spread lower to the plain iterable; callers of ListLit-with-Spread resolve this via library.go's call-arg flattening
	case *ilast.StringInterpolation:
		return t.lowerStringInterpolation(x, col)
	case *ilast.ThisPropertyAccess:
		return t.lowerThisPropertyAccess(x)
	case *ilast.ThisMethodCall:
		return &targetast.Call{Callee: t.thisMethodCallee(x.Method), Args: t.lowerExprList(x.Args, col)}
	case *ilast.ParentMethodCall:
		return &targetast.Call{Callee: t.parentMethodCallee(x.Method), Args: t.lowerExprList(x.Args, col)}
	case *ilast.ErrorCreation:
		return t.lowerErrorCreation(x, col)
	case *ilast.Unknown:
		return &targetast.UnknownExpr{NodeKind: x.NodeKind, Snapshot: x.Snapshot}
	default:
		return t.lowerLibraryPrimitive(e, col)
	}
}

// memberName converts a dotted-access property name. A property read
// off `this`/`self` would already have been distinguished as a
// ThisPropertyAccess by the normalizer; a plain MemberAccess's object is
// some other value, so its Property is treated as a data key (object
// literal property access) and left as-is rather than case-converted,
// matching the Source's own dynamic-object semantics.
func (t *Transformer) memberName(_ ilast.Expression, property string) string {
	return property
}

// lowerAssignExprInPlace implements spec §4.2.3 rule 3: an assignment
// surviving in expression position becomes a pre-statement plus a bare
// reference to the target in its place.
func (t *Transformer) lowerAssignExprInPlace(e *ilast.AssignExpr, col *session.Collector) targetast.Expression {
	target := t.lowerExpr(e.Target, col)
	value := t.lowerExpr(e.Value, col)
	col.PushPre(&targetast.Assign{Op: e.Op, Target: target, Value: value})
	return target
}

// lowerIncDecInPlace implements spec §4.2.3 rules 1–2: a post-increment
// pushes its update to the post-queue and yields the pre-update value; a
// pre-increment pushes to the pre-queue and yields the post-update
// value. Because the emitted text evaluates left-to-right same as the
// Source, referencing the bare (already-lowered) operand in both cases
// produces the correct value at the point the expression is read.
func (t *Transformer) lowerIncDecInPlace(e *ilast.IncDec, col *session.Collector) targetast.Expression {
	operand := t.lowerExpr(e.Operand, col)
	stmt := incDecStatement(e, operand)
	if e.Pre {
		col.PushPre(stmt)
	} else {
		col.PushPost(stmt)
	}
	return operand
}
