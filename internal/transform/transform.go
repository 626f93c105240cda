// Package transform implements the Target Transformer of spec §4.2: it
// rewrites internal/ilast into internal/targetast, resolving naming
// (§4.2.1), numeric/bitwise semantics (§4.2.2), statement/expression
// bifurcation (§4.2.3), control flow (§4.2.4), library/primitive mapping
// (§4.2.5), and class shape (§4.2.6). One Transformer is built per
// module transformation and is not reused across modules, mirroring the
// TranspileSession it is bound to (spec §5).
package transform

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

// Transformer carries the state the naming and class-shape rules need
// beyond the session: the field/method name sets of the class currently
// being lowered (for collision renaming, §4.2.1) and the property whose
// getter/setter body is presently being lowered (for backing-field
// self-reference substitution, §4.2.1).
type Transformer struct {
	sess *session.TranspileSession
	opts session.Options

	classFieldNames  map[string]bool
	classMethodNames map[string]bool
	currentProperty  string // target-cased property name, "" outside a getter/setter body
}

// Transform is spec §4.2's public contract:
// `transform(ilModule, options) → targetModule`.
func Transform(mod *ilast.Module, sess *session.TranspileSession) *targetast.Module {
	t := &Transformer{sess: sess, opts: sess.Options}
	out := &targetast.Module{Name: mod.Name}
	out.Body = t.lowerStatements(mod.Body)
	return out
}

func (t *Transformer) isBasic() bool { return t.opts.Dialect.IsBasicFamily() }

// lowerStatements lowers a statement sequence, giving each top-level
// statement in it its own pre/post-statement Collector scope (spec §5
// "Mutable walk state" — cleared and restored around each statement
// boundary) and flattening the result per spec §4.2.3's closing rule:
// pre-statements, the statement itself, post-statements.
func (t *Transformer) lowerStatements(stmts []ilast.Statement) []targetast.Statement {
	var out []targetast.Statement
	for _, s := range stmts {
		out = append(out, t.lowerStatement(s)...)
	}
	return out
}

// lowerStatement lowers one IL statement to its target-statement
// sequence (ordinarily one statement, occasionally several after
// bifurcation or chained-assignment flattening).
func (t *Transformer) lowerStatement(stmt ilast.Statement) []targetast.Statement {
	col := &session.Collector{}
	main := t.lowerStatementMain(stmt, col)
	return flattenCollector(col, main)
}

// flattenCollector assembles Pre, main (possibly nil/empty/multiple),
// and Post into one sequence (spec §8.1 property 7).
func flattenCollector(col *session.Collector, main []targetast.Statement) []targetast.Statement {
	var out []targetast.Statement
	for _, p := range col.Pre {
		out = append(out, p.Stmt.(targetast.Statement))
	}
	out = append(out, main...)
	for _, p := range col.Post {
		out = append(out, p.Stmt.(targetast.Statement))
	}
	return out
}

// lowerStatementMain dispatches over the closed IL statement variant
// set (spec §9's "exhaustive pattern matching over a closed variant
// set" — a systems-language stand-in for the Source's method-name-
// lookup dispatch).
func (t *Transformer) lowerStatementMain(stmt ilast.Statement, col *session.Collector) []targetast.Statement {
	switch s := stmt.(type) {
	case *ilast.VarDecl:
		return t.lowerVarDecl(s, col)
	case *ilast.Assign:
		return []targetast.Statement{&targetast.Assign{Op: s.Op, Target: t.lowerExpr(s.Target, col), Value: t.lowerExpr(s.Value, col)}}
	case *ilast.ExpressionStmt:
		return t.lowerExpressionStmt(s, col)
	case *ilast.Return:
		var v targetast.Expression
		if s.Value != nil {
			v = t.lowerExpr(s.Value, col)
		}
		return []targetast.Statement{&targetast.Return{Value: v}}
	case *ilast.If:
		return []targetast.Statement{&targetast.If{Test: t.lowerExpr(s.Test, col), Then: t.lowerStatements(s.Then), Else: t.lowerStatements(s.Else)}}
	case *ilast.For:
		return t.lowerFor(s)
	case *ilast.ForEach:
		return []targetast.Statement{&targetast.ForEach{VarName: t.varName(s.VarName), Iterable: t.lowerExpr(s.Iterable, col), Body: t.lowerStatements(s.Body)}}
	case *ilast.While:
		return t.lowerWhile(s)
	case *ilast.DoWhile:
		return t.lowerDoWhile(s)
	case *ilast.Switch:
		return t.lowerSwitch(s)
	case *ilast.Try:
		return t.lowerTry(s)
	case *ilast.Throw:
		return t.lowerThrow(s, col)
	case *ilast.Break:
		return []targetast.Statement{&targetast.Break{}}
	case *ilast.Continue:
		return []targetast.Statement{&targetast.Continue{}}
	case *ilast.Pass:
		return []targetast.Statement{&targetast.Pass{}}
	case *ilast.Block:
		return []targetast.Statement{&targetast.Block{Body: t.lowerStatements(s.Body)}}
	case *ilast.Function:
		return []targetast.Statement{t.lowerFunction(s)}
	case *ilast.Class:
		return []targetast.Statement{t.lowerClass(s)}
	case *ilast.ParentConstructorCall:
		return []targetast.Statement{t.lowerParentConstructorCall(s, col)}
	case *ilast.DebugOutput:
		return []targetast.Statement{t.lowerDebugOutput(s, col)}
	case *ilast.Unknown:
		return []targetast.Statement{&targetast.UnknownStmt{NodeKind: s.NodeKind, Snapshot: s.Snapshot}}
	case nil:
		return nil
	default:
		t.sess.WarnUnknown(stmt.Kind(), session.Position{}, stmt)
		return []targetast.Statement{&targetast.UnknownStmt{NodeKind: stmt.Kind()}}
	}
}

func (t *Transformer) lowerVarDecl(s *ilast.VarDecl, col *session.Collector) []targetast.Statement {
	var init targetast.Expression
	if s.Init != nil {
		init = t.lowerExpr(s.Init, col)
	}
	names := make([]string, len(s.Names))
	for i, n := range s.Names {
		names[i] = t.varName(n)
	}
	if t.isBasic() {
		ty := s.Type
		return []targetast.Statement{&targetast.Dim{Names: names, Type: &ty, Init: init}}
	}
	if init == nil {
		init = &targetast.Literal{LitKind: targetast.LNull}
	}
	// Python has no bare declaration statement; a VarDecl becomes a plain
	// assignment. The Target AST's Assign has no annotation slot, so the
	// VarDecl's type is dropped here and no `: Type` annotation is emitted
	// for a local variable, even under strictTypes/addTypeHints. A VarDecl
	// with no initializer defaults to None.
	return []targetast.Statement{&targetast.Assign{Op: "=", Target: &targetast.Identifier{Name: names[0]}, Value: init}}
}

func (t *Transformer) lowerParentConstructorCall(s *ilast.ParentConstructorCall, col *session.Collector) targetast.Statement {
	args := t.lowerExprList(s.Args, col)
	if t.isBasic() {
		return &targetast.ExpressionStmt{Expr: &targetast.Call{Callee: &targetast.Identifier{Name: "MyBase.New"}, Args: args}}
	}
	return &targetast.ExpressionStmt{Expr: &targetast.Call{
		Callee: &targetast.MemberAccess{Object: &targetast.Call{Callee: &targetast.Identifier{Name: "super"}}, Property: "__init__"},
		Args:   args,
	}}
}

func (t *Transformer) lowerDebugOutput(s *ilast.DebugOutput, col *session.Collector) targetast.Statement {
	name := "print"
	if t.isBasic() {
		name = "Print"
	}
	return &targetast.ExpressionStmt{Expr: &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: t.lowerExprList(s.Args, col)}}
}

func (t *Transformer) lowerExprList(exprs []ilast.Expression, col *session.Collector) []targetast.Expression {
	out := make([]targetast.Expression, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, t.lowerExpr(e, col))
	}
	return out
}
