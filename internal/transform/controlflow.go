// This file implements spec §4.2.4's control-flow lowering: the C-style
// for-loop's range-for heuristic, switch's dialect-dependent shape,
// do-while's target-native form, and try/throw's exception-vs-On Error
// split.
package transform

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

// flattenPreOnly extracts a Collector's pre-statements as plain target
// statements, used by the control-flow lowerings below where a loop's
// test expression is evaluated outside of the normal per-statement
// Collector scope lowerStatement sets up.
func flattenPreOnly(col *session.Collector) []targetast.Statement {
	out := make([]targetast.Statement, 0, len(col.Pre))
	for _, p := range col.Pre {
		out = append(out, p.Stmt.(targetast.Statement))
	}
	return out
}

// lowerLoopTest lowers a loop test once for its primary use and, if
// lowering it surfaced pre-statements (the test itself had a side
// effect), lowers it a second time to produce the statements that must
// be duplicated at the bottom of the loop body (spec §4.2.3 rule 5: "a
// side-effecting loop condition is hoisted before the loop and
// re-evaluated at the end of each iteration").
func (t *Transformer) lowerLoopTest(test ilast.Expression) (expr targetast.Expression, pre, bodyAppend []targetast.Statement) {
	if test == nil {
		return &targetast.Literal{LitKind: targetast.LBool, Bool: true}, nil, nil
	}
	col := &session.Collector{}
	expr = t.lowerExpr(test, col)
	pre = flattenPreOnly(col)
	if len(pre) > 0 {
		dupCol := &session.Collector{}
		t.lowerExpr(test, dupCol)
		bodyAppend = flattenPreOnly(dupCol)
	}
	return
}

func (t *Transformer) lowerFor(s *ilast.For) []targetast.Statement {
	if rf, ok := t.tryRangeFor(s); ok {
		return []targetast.Statement{rf}
	}
	var out []targetast.Statement
	if s.Init != nil {
		initCol := &session.Collector{}
		out = append(out, flattenCollector(initCol, t.lowerStatementMain(s.Init, initCol))...)
	}
	test, pre, bodyAppend := t.lowerLoopTest(s.Test)
	out = append(out, pre...)
	body := t.lowerStatements(s.Body)
	body = append(body, bodyAppend...)
	if s.Update != nil {
		updCol := &session.Collector{}
		body = append(body, flattenCollector(updCol, []targetast.Statement{&targetast.ExpressionStmt{Expr: t.lowerExpr(s.Update, updCol)}})...)
	}
	out = append(out, &targetast.While{Test: test, Body: body})
	return out
}

// tryRangeFor recognizes the counted C-style loop shape spec §4.2.4
// calls "the range-for heuristic": `for (let i = start; i < stop; i++)`
// (or `<=`/`+=step`/`-=step` variants) with a simple identifier counter
// not otherwise mutated in the test/start bound. Anything else falls
// back to lowerFor's while-loop rendering.
func (t *Transformer) tryRangeFor(s *ilast.For) (*targetast.For, bool) {
	decl, ok := s.Init.(*ilast.VarDecl)
	if !ok || len(decl.Names) != 1 || decl.Init == nil {
		return nil, false
	}
	name := decl.Names[0]
	cmp, ok := s.Test.(*ilast.Binary)
	if !ok {
		return nil, false
	}
	ident, ok := cmp.Left.(*ilast.Identifier)
	if !ok || ident.Name != name {
		return nil, false
	}
	inclusive := false
	switch cmp.Op {
	case "<":
	case "<=":
		inclusive = true
	default:
		return nil, false
	}
	step, ok := stepOf(s.Update, name)
	if !ok {
		return nil, false
	}
	col := &session.Collector{}
	start := t.lowerExpr(decl.Init, col)
	stop := t.lowerExpr(cmp.Right, col)
	if !col.Empty() {
		return nil, false
	}
	if inclusive {
		delta := int64(1)
		if step < 0 {
			delta = -1
		}
		stop = &targetast.Binary{Op: "+", Left: stop, Right: intLit(delta)}
	}
	return &targetast.For{
		Var:   t.varName(name),
		Start: start,
		Stop:  stop,
		Step:  intLit(step),
		Body:  t.lowerStatements(s.Body),
	}, true
}

func stepOf(update ilast.Expression, name string) (int64, bool) {
	switch u := update.(type) {
	case *ilast.IncDec:
		ident, ok := u.Operand.(*ilast.Identifier)
		if !ok || ident.Name != name {
			return 0, false
		}
		return u.Delta, true
	case *ilast.AssignExpr:
		ident, ok := u.Target.(*ilast.Identifier)
		if !ok || ident.Name != name {
			return 0, false
		}
		lit, ok := u.Value.(*ilast.Literal)
		if !ok || lit.LitKind != ilast.LInt {
			return 0, false
		}
		switch u.Op {
		case "+=":
			return lit.Int, true
		case "-=":
			return -lit.Int, true
		}
	}
	return 0, false
}

func (t *Transformer) lowerWhile(s *ilast.While) []targetast.Statement {
	test, pre, bodyAppend := t.lowerLoopTest(s.Test)
	body := append(t.lowerStatements(s.Body), bodyAppend...)
	return append(pre, &targetast.While{Test: test, Body: body})
}

func (t *Transformer) lowerDoWhile(s *ilast.DoWhile) []targetast.Statement {
	col := &session.Collector{}
	test := t.lowerExpr(s.Test, col)
	bodyAppend := flattenPreOnly(col)
	if t.isBasic() {
		body := append(t.lowerStatements(s.Body), bodyAppend...)
		return []targetast.Statement{&targetast.DoLoop{TestAtTop: false, Test: test, Body: body}}
	}
	breakIfDone := &targetast.If{Test: &targetast.Unary{Op: "not", Operand: test}, Then: []targetast.Statement{&targetast.Break{}}}
	body := t.lowerStatements(s.Body)
	body = append(body, bodyAppend...)
	body = append(body, breakIfDone)
	return []targetast.Statement{&targetast.While{Test: &targetast.Literal{LitKind: targetast.LBool, Bool: true}, Body: body}}
}

func stripBreaks(body []ilast.Statement) []ilast.Statement {
	out := make([]ilast.Statement, 0, len(body))
	for _, st := range body {
		if _, ok := st.(*ilast.Break); ok {
			continue
		}
		out = append(out, st)
	}
	return out
}

func (t *Transformer) lowerSwitch(s *ilast.Switch) []targetast.Statement {
	if t.isBasic() {
		return t.lowerSwitchSelectCase(s)
	}
	return t.lowerSwitchAsIfChain(s)
}

func (t *Transformer) lowerSwitchSelectCase(s *ilast.Switch) []targetast.Statement {
	col := &session.Collector{}
	disc := t.lowerExpr(s.Discriminant, col)
	arms := make([]targetast.SelectCaseArm, 0, len(s.Cases))
	for _, c := range s.Cases {
		tests := t.lowerExprList(c.Tests, col)
		arms = append(arms, targetast.SelectCaseArm{Tests: tests, Body: t.lowerStatements(stripBreaks(c.Body))})
	}
	out := flattenPreOnly(col)
	out = append(out, &targetast.SelectCase{Discriminant: disc, Arms: arms})
	return out
}

// lowerSwitchAsIfChain is the Python rendering of spec §4.2.4: a switch
// becomes a descending If/Else chain, matching multiple case labels with
// `or` and collapsing the bodies bottom-up so the first matching case
// wins exactly as fallthrough-free switch cases do.
func (t *Transformer) lowerSwitchAsIfChain(s *ilast.Switch) []targetast.Statement {
	col := &session.Collector{}
	disc := t.lowerExpr(s.Discriminant, col)
	var elseBody []targetast.Statement
	for i := len(s.Cases) - 1; i >= 0; i-- {
		c := s.Cases[i]
		body := t.lowerStatements(stripBreaks(c.Body))
		if len(c.Tests) == 0 {
			elseBody = body
			continue
		}
		var test targetast.Expression
		for _, tst := range c.Tests {
			eq := &targetast.Binary{Op: "==", Left: disc, Right: t.lowerExpr(tst, col)}
			if test == nil {
				test = eq
			} else {
				test = &targetast.Binary{Op: "or", Left: test, Right: eq}
			}
		}
		elseBody = []targetast.Statement{&targetast.If{Test: test, Then: body, Else: elseBody}}
	}
	out := flattenPreOnly(col)
	out = append(out, elseBody...)
	return out
}

func (t *Transformer) lowerTry(s *ilast.Try) []targetast.Statement {
	if t.isBasic() && !t.opts.UseExceptions {
		return t.lowerTryOnError(s)
	}
	return []targetast.Statement{t.lowerTryNative(s)}
}

func (t *Transformer) lowerTryNative(s *ilast.Try) targetast.Statement {
	body := t.lowerStatements(s.Body)
	var catches []*targetast.ExceptClause
	if s.Catch != nil {
		excType := ""
		param := ""
		if s.Catch.Param != "" {
			param = t.varName(s.Catch.Param)
		}
		if t.isBasic() {
			excType = "Exception"
		}
		catches = []*targetast.ExceptClause{{ExcType: excType, Param: param, Body: t.lowerStatements(s.Catch.Body)}}
	}
	return &targetast.Try{Body: body, Catches: catches, Finally: t.lowerStatements(s.Finally)}
}

// lowerTryOnError is the BASIC `useExceptions=false` fallback (spec
// §4.2's TargetOptions table): `On Error Resume Next` replaces the
// try/catch structure entirely, since classic BASIC has no block-scoped
// exception handling to map a Catch body onto directly.
func (t *Transformer) lowerTryOnError(s *ilast.Try) []targetast.Statement {
	out := []targetast.Statement{&targetast.OnError{ResumeNext: true}}
	out = append(out, t.lowerStatements(s.Body)...)
	if s.Catch != nil {
		out = append(out, t.lowerStatements(s.Catch.Body)...)
	}
	out = append(out, t.lowerStatements(s.Finally)...)
	return out
}

// lowerThrow implements the `throw null` idiom special-case: the Source
// uses it as a generic assertion failure, so it lowers to a fixed
// ValueError message rather than an untyped raise (spec §4.2.4).
func (t *Transformer) lowerThrow(s *ilast.Throw, col *session.Collector) []targetast.Statement {
	if s.Value == nil {
		msg := &targetast.Literal{LitKind: targetast.LString, Str: "Verification failed"}
		if t.isBasic() {
			return []targetast.Statement{&targetast.Throw{Value: msg}}
		}
		return []targetast.Statement{&targetast.Throw{Value: &targetast.Call{Callee: &targetast.Identifier{Name: "ValueError"}, Args: []targetast.Expression{msg}}}}
	}
	return []targetast.Statement{&targetast.Throw{Value: t.lowerExpr(s.Value, col)}}
}
