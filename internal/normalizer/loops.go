package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// normalizeFor lowers the classic C-style for loop. Init collapses to a
// single IL statement (a plain VarDecl or Assign) — the Target
// Transformer's control-flow lowering (§4.2.4), not the normalizer,
// decides whether the loop survives as a native ranged loop or becomes a
// target while-loop.
func (n *Normalizer) normalizeFor(s *sourceast.ForStmt) *ilast.For {
	out := &ilast.For{
		Test:   n.NormalizeExpression(s.Test),
		Update: n.NormalizeExpression(s.Update),
		Body:   n.normalizeBodyOf(s.Body),
	}
	switch init := s.Init.(type) {
	case nil:
	case *sourceast.VarDecl:
		if decls := n.normalizeVarDecl(init); len(decls) > 0 {
			out.Init = decls[0]
		}
	case *sourceast.ExpressionStmt:
		if assign, ok := init.Expr.(*sourceast.AssignExpr); ok {
			out.Init = &ilast.Assign{Op: assign.Op, Target: n.NormalizeExpression(assign.Target), Value: n.NormalizeExpression(assign.Value)}
		}
	default:
		if stmts := n.NormalizeStatement(init); len(stmts) > 0 {
			out.Init = stmts[0]
		}
	}
	return out
}
