// Package normalizer implements the IL Normalizer of spec §4.1: one pass,
// bottom-up, collapsing Source-AST idioms into the fixed IL vocabulary of
// internal/ilast. Normalization is purely additive — an unrecognized
// construct becomes an ilast.Unknown placeholder plus a Placeholder
// diagnostic, never an aborted pass (spec §4.1 "Failure semantics",
// §7).
package normalizer

import (
	"strconv"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// Normalizer holds the single piece of state normalization needs beyond
// the session: the current inference Scope (see typeinfer.go), rebuilt
// per function body.
type Normalizer struct {
	sess      *session.TranspileSession
	scope     *Scope
	tmpSerial int
}

// New constructs a Normalizer bound to sess for diagnostics.
func New(sess *session.TranspileSession) *Normalizer {
	return &Normalizer{sess: sess, scope: NewScope(nil)}
}

// tempName mints a fresh hidden temporary identifier for destructuring
// expansion (§4.1 rewrite 5), unique within one Normalizer's lifetime.
func (n *Normalizer) tempName() string {
	n.tmpSerial++
	return "__destructure_tmp" + strconv.Itoa(n.tmpSerial)
}

// Normalize is the top-level entry point: Source AST in, IL AST out
// (spec §4.1 `normalize(sourceModule) → ilModule`).
func Normalize(program *sourceast.Program, sess *session.TranspileSession) *ilast.Module {
	n := New(sess)
	body := program.Body
	if unwrapped, ok := detectModuleWrapper(body); ok {
		body = unwrapped
	}
	mod := &ilast.Module{Name: "main"}
	for _, stmt := range body {
		mod.Body = append(mod.Body, n.NormalizeStatement(stmt)...)
	}
	return mod
}

func pos(n sourceast.Node) session.Position {
	p := n.Pos()
	return session.Position{Line: p.Line, Column: p.Column}
}

// NormalizeStatement is spec §4.1's `normalizeStatement(sourceNode) →
// ilStmt | ilStmt[]`: most Source statements lower 1:1, but destructuring
// declarations and a few other idioms expand to several IL statements.
func (n *Normalizer) NormalizeStatement(stmt sourceast.Statement) []ilast.Statement {
	switch s := stmt.(type) {
	case *sourceast.VarDecl:
		return n.normalizeVarDecl(s)
	case *sourceast.ExpressionStmt:
		return n.normalizeExpressionStmt(s)
	case *sourceast.ReturnStmt:
		var v ilast.Expression
		if s.Value != nil {
			v = n.NormalizeExpression(s.Value)
		}
		return []ilast.Statement{&ilast.Return{Value: v}}
	case *sourceast.ThrowStmt:
		var v ilast.Expression
		if s.Value != nil {
			v = n.NormalizeExpression(s.Value)
		}
		return []ilast.Statement{&ilast.Throw{Value: v}}
	case *sourceast.BreakStmt:
		return []ilast.Statement{&ilast.Break{}}
	case *sourceast.ContinueStmt:
		return []ilast.Statement{&ilast.Continue{}}
	case *sourceast.Block:
		return []ilast.Statement{&ilast.Block{Body: n.normalizeStatements(s.Body)}}
	case *sourceast.IfStmt:
		return []ilast.Statement{n.normalizeIf(s)}
	case *sourceast.ForStmt:
		return []ilast.Statement{n.normalizeFor(s)}
	case *sourceast.ForEachStmt:
		return []ilast.Statement{n.normalizeForEach(s)}
	case *sourceast.WhileStmt:
		return []ilast.Statement{&ilast.While{Test: n.NormalizeExpression(s.Test), Body: n.normalizeBodyOf(s.Body)}}
	case *sourceast.DoWhileStmt:
		return []ilast.Statement{&ilast.DoWhile{Body: n.normalizeBodyOf(s.Body), Test: n.NormalizeExpression(s.Test)}}
	case *sourceast.SwitchStmt:
		return []ilast.Statement{n.normalizeSwitch(s)}
	case *sourceast.TryStmt:
		return []ilast.Statement{n.normalizeTry(s)}
	case *sourceast.FunctionDecl:
		return []ilast.Statement{n.normalizeFunction(s)}
	case *sourceast.ClassDecl:
		return []ilast.Statement{n.normalizeClass(s)}
	case nil:
		return nil
	default:
		n.sess.WarnUnknown(stmt.Kind(), pos(stmt), stmt)
		return []ilast.Statement{&ilast.Unknown{NodeKind: stmt.Kind()}}
	}
}

func (n *Normalizer) normalizeStatements(stmts []sourceast.Statement) []ilast.Statement {
	var out []ilast.Statement
	for _, s := range stmts {
		out = append(out, n.NormalizeStatement(s)...)
	}
	return out
}

// normalizeBodyOf normalizes a single Statement that may itself be a
// Block, flattening the Block's own body rather than nesting an extra
// ilast.Block — loop/if bodies are represented as []ilast.Statement in
// the IL, so a Source `{ ... }` block body collapses to its contents.
func (n *Normalizer) normalizeBodyOf(stmt sourceast.Statement) []ilast.Statement {
	if stmt == nil {
		return nil
	}
	if b, ok := stmt.(*sourceast.Block); ok {
		return n.normalizeStatements(b.Body)
	}
	return n.NormalizeStatement(stmt)
}

func (n *Normalizer) normalizeIf(s *sourceast.IfStmt) *ilast.If {
	out := &ilast.If{
		Test: n.NormalizeExpression(s.Test),
		Then: n.normalizeBodyOf(s.Then),
	}
	if s.Else != nil {
		out.Else = n.normalizeBodyOf(s.Else)
	}
	return out
}

func (n *Normalizer) normalizeForEach(s *sourceast.ForEachStmt) *ilast.ForEach {
	return &ilast.ForEach{
		VarName:  s.Var.Name,
		Iterable: n.NormalizeExpression(s.Iterable),
		IsKeysOf: s.IsKeysOf,
		Body:     n.normalizeBodyOf(s.Body),
	}
}

func (n *Normalizer) normalizeSwitch(s *sourceast.SwitchStmt) *ilast.Switch {
	out := &ilast.Switch{Discriminant: n.NormalizeExpression(s.Discriminant)}
	for _, c := range s.Cases {
		var tests []ilast.Expression
		for _, t := range c.Tests {
			tests = append(tests, n.NormalizeExpression(t))
		}
		out.Cases = append(out.Cases, ilast.SwitchCase{Tests: tests, Body: n.normalizeStatements(c.Body)})
	}
	return out
}

func (n *Normalizer) normalizeTry(s *sourceast.TryStmt) *ilast.Try {
	out := &ilast.Try{Body: n.normalizeStatements(s.Body)}
	if s.Catch != nil {
		param := ""
		if s.Catch.Param != nil {
			param = s.Catch.Param.Name
		}
		out.Catch = &ilast.Catch{Param: param, Body: n.normalizeStatements(s.Catch.Body)}
	}
	if s.Finally != nil {
		out.Finally = n.normalizeStatements(s.Finally)
	}
	if len(out.Body) == 0 {
		out.Body = []ilast.Statement{&ilast.Pass{}}
	}
	return out
}

// normalizeExpressionStmt wraps the normalized expression as-is. An
// assignment or increment written at statement level normalizes to an
// ilast.AssignExpr/IncDec inside the ExpressionStmt, same as it would
// nested anywhere else; internal/transform's statement collector (spec
// §4.2.3's closing paragraph) is what recognizes "this ExpressionStmt's
// expression is itself an assignment" and rewrites it to a bare
// ilast.Assign instead of bifurcating it needlessly. Keeping exactly one
// place that understands assignment-as-expression (the transformer) is
// what spec §4.2.3 prescribes — the normalizer does not special-case
// this.
func (n *Normalizer) normalizeExpressionStmt(s *sourceast.ExpressionStmt) []ilast.Statement {
	if call, ok := s.Expr.(*sourceast.CallExpr); ok {
		if callee, ok := call.Callee.(*sourceast.Identifier); ok && callee.Name == "super" {
			var args []ilast.Expression
			for _, a := range call.Args {
				args = append(args, n.NormalizeExpression(a))
			}
			return []ilast.Statement{&ilast.ParentConstructorCall{Args: args}}
		}
	}
	return []ilast.Statement{&ilast.ExpressionStmt{Expr: n.NormalizeExpression(s.Expr)}}
}
