// This file implements the statement side of emit: indentation/layout
// (§4.3.3) for every Target AST statement variant, including the
// Function/Class declaration shapes and their docstrings.
package emit

import (
	"strings"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

func (e *Emitter) emitStatement(stmt targetast.Statement) {
	switch s := stmt.(type) {
	case *targetast.VarDecl:
		e.emitVarDecl(s)
	case *targetast.Dim:
		e.emitDim(s)
	case *targetast.Assign:
		e.line(e.emitExpr(s.Target) + " " + s.Op + " " + e.emitExpr(s.Value))
	case *targetast.ExpressionStmt:
		e.line(e.emitExpr(s.Expr))
	case *targetast.Return:
		if s.Value == nil {
			e.line(e.returnKeyword())
			return
		}
		e.line(e.returnKeyword() + " " + e.emitExpr(s.Value))
	case *targetast.If:
		e.emitIf(s)
	case *targetast.For:
		e.emitFor(s)
	case *targetast.ForEach:
		e.emitForEach(s)
	case *targetast.While:
		e.emitWhile(s)
	case *targetast.DoLoop:
		e.emitDoLoop(s)
	case *targetast.SelectCase:
		e.emitSelectCase(s)
	case *targetast.Try:
		e.emitTry(s)
	case *targetast.OnError:
		e.emitOnError(s)
	case *targetast.Label:
		e.line(s.Name + ":")
	case *targetast.Throw:
		e.emitThrow(s)
	case *targetast.Break:
		e.line(e.breakKeyword())
	case *targetast.Continue:
		e.line(e.continueKeyword())
	case *targetast.Pass:
		if !e.isBasic() {
			e.line("pass")
		}
	case *targetast.Block:
		e.writeBody(s.Body)
	case *targetast.WithStmt:
		e.emitWith(s)
	case *targetast.Function:
		e.emitFunction(s)
	case *targetast.Class:
		e.emitClass(s)
	case *targetast.TypeDeclaration:
		e.emitTypeDeclaration(s)
	case *targetast.UnknownStmt:
		e.line(e.unknownComment(s.NodeKind))
	default:
		e.line(e.unknownComment(stmt.Kind()))
	}
}

func (e *Emitter) returnKeyword() string {
	if e.isBasic() {
		return "Return"
	}
	return "return"
}

func (e *Emitter) breakKeyword() string {
	if e.isBasic() {
		return "Exit Do"
	}
	return "break"
}

func (e *Emitter) continueKeyword() string {
	if e.isBasic() {
		return "Continue Do"
	}
	return "continue"
}

func (e *Emitter) emitVarDecl(s *targetast.VarDecl) {
	name := strings.Join(s.Names, ", ")
	hint := ""
	if e.wantsHint(s.Type) {
		hint = ": " + e.pythonTypeName(s.Type)
	}
	if s.Init == nil {
		e.line(name + hint + " = None")
		return
	}
	e.line(name + hint + " = " + e.emitExpr(s.Init))
}

func (e *Emitter) emitDim(s *targetast.Dim) {
	decl := "Dim " + strings.Join(s.Names, ", ")
	if e.wantsHint(s.Type) {
		decl += " As " + e.basicTypeName(s.Type)
	}
	if s.Init != nil {
		decl += " = " + e.emitExpr(s.Init)
	}
	e.line(decl)
}

func (e *Emitter) enterBlock()   { e.indent++ }
func (e *Emitter) leaveBlock()   { e.indent-- }

func (e *Emitter) emitBody(body []targetast.Statement) {
	e.enterBlock()
	if len(body) == 0 {
		if !e.isBasic() {
			e.line("pass")
		}
	} else {
		for _, st := range body {
			e.emitStatement(st)
		}
	}
	e.leaveBlock()
}

func (e *Emitter) emitIf(s *targetast.If) {
	if e.isBasic() {
		e.line("If " + e.emitExpr(s.Test) + " Then")
		e.emitBody(s.Then)
		if len(s.Else) > 0 {
			e.line("Else")
			e.emitBody(s.Else)
		}
		e.line("End If")
		return
	}
	e.line("if " + e.emitExpr(s.Test) + ":")
	e.emitBody(s.Then)
	if len(s.Else) > 0 {
		e.line("else:")
		e.emitBody(s.Else)
	}
}

func (e *Emitter) emitFor(s *targetast.For) {
	if e.isBasic() {
		header := "For " + s.Var + " = " + e.emitExpr(s.Start) + " To " + e.emitExpr(s.Stop)
		if s.Step != nil {
			if lit, ok := s.Step.(*targetast.Literal); !ok || lit.LitKind != targetast.LInt || lit.Int != 1 {
				header += " Step " + e.emitExpr(s.Step)
			}
		}
		e.line(header)
		e.emitBody(s.Body)
		e.line("Next " + s.Var)
		return
	}
	rangeCall := "range(" + e.emitExpr(s.Start) + ", " + e.emitExpr(s.Stop)
	if lit, ok := s.Step.(*targetast.Literal); !ok || lit.LitKind != targetast.LInt || lit.Int != 1 {
		rangeCall += ", " + e.emitExpr(s.Step)
	}
	rangeCall += ")"
	e.line("for " + s.Var + " in " + rangeCall + ":")
	e.emitBody(s.Body)
}

func (e *Emitter) emitForEach(s *targetast.ForEach) {
	if e.isBasic() {
		e.line("For Each " + s.VarName + " In " + e.emitExpr(s.Iterable))
		e.emitBody(s.Body)
		e.line("Next " + s.VarName)
		return
	}
	e.line("for " + s.VarName + " in " + e.emitExpr(s.Iterable) + ":")
	e.emitBody(s.Body)
}

func (e *Emitter) emitWhile(s *targetast.While) {
	if e.isBasic() {
		e.line("Do While " + e.emitExpr(s.Test))
		e.emitBody(s.Body)
		e.line("Loop")
		return
	}
	e.line("while " + e.emitExpr(s.Test) + ":")
	e.emitBody(s.Body)
}

func (e *Emitter) emitDoLoop(s *targetast.DoLoop) {
	kw := "While"
	if s.Negate {
		kw = "Until"
	}
	if s.TestAtTop {
		e.line("Do " + kw + " " + e.emitExpr(s.Test))
		e.emitBody(s.Body)
		e.line("Loop")
		return
	}
	e.line("Do")
	e.emitBody(s.Body)
	e.line("Loop " + kw + " " + e.emitExpr(s.Test))
}

func (e *Emitter) emitSelectCase(s *targetast.SelectCase) {
	e.line("Select Case " + e.emitExpr(s.Discriminant))
	e.enterBlock()
	for _, arm := range s.Arms {
		if len(arm.Tests) == 0 {
			e.line("Case Else")
		} else {
			e.line("Case " + e.emitExprCSV(arm.Tests))
		}
		e.emitBody(arm.Body)
	}
	e.leaveBlock()
	e.line("End Select")
}

func (e *Emitter) emitTry(s *targetast.Try) {
	if e.isBasic() {
		e.emitTryBasic(s)
		return
	}
	e.line("try:")
	e.emitBody(s.Body)
	for _, c := range s.Catches {
		header := "except"
		if c.ExcType != "" {
			header += " " + c.ExcType
			if c.Param != "" {
				header += " as " + c.Param
			}
		}
		e.line(header + ":")
		e.emitBody(c.Body)
	}
	if len(s.Finally) > 0 {
		e.line("finally:")
		e.emitBody(s.Finally)
	}
}

func (e *Emitter) emitTryBasic(s *targetast.Try) {
	e.line("Try")
	e.emitBody(s.Body)
	for _, c := range s.Catches {
		header := "Catch"
		if c.Param != "" {
			header += " " + c.Param + " As " + orDefault(c.ExcType, "Exception")
		}
		e.line(header)
		e.emitBody(c.Body)
	}
	if len(s.Finally) > 0 {
		e.line("Finally")
		e.emitBody(s.Finally)
	}
	e.line("End Try")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (e *Emitter) emitOnError(s *targetast.OnError) {
	if s.ResumeNext {
		e.line("On Error Resume Next")
		return
	}
	e.line("On Error GoTo " + s.Label)
}

func (e *Emitter) emitThrow(s *targetast.Throw) {
	if e.isBasic() {
		e.line("Throw " + e.emitExpr(s.Value))
		return
	}
	e.line("raise " + e.emitExpr(s.Value))
}

func (e *Emitter) emitWith(s *targetast.WithStmt) {
	e.line("with " + e.emitExpr(s.Context) + " as " + s.VarName + ":")
	e.emitBody(s.Body)
}
