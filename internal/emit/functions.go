// This file renders Function/Method/Class/Property/TypeDeclaration
// nodes: signatures, docstrings, decorators, and the BASIC Class-vs-Type
// split of §4.2.6/§4.3.3.
package emit

import (
	"strings"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

func (e *Emitter) paramSig(p targetast.Parameter) string {
	if e.isBasic() {
		name := p.Name
		if p.Rest {
			name = "ParamArray " + name
		}
		sig := name
		if e.wantsHint(p.Type) {
			sig += " As " + e.basicTypeName(p.Type)
		}
		if p.Default != nil {
			sig += " = " + e.emitExpr(p.Default)
		}
		return sig
	}
	name := p.Name
	if p.Rest {
		name = "*" + name
	}
	sig := name
	if e.wantsHint(p.Type) {
		sig += ": " + e.pythonTypeName(p.Type)
	}
	if p.Default != nil {
		sig += "=" + e.emitExpr(p.Default)
	}
	return sig
}

func (e *Emitter) paramList(params []targetast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = e.paramSig(p)
	}
	return strings.Join(parts, ", ")
}

func (e *Emitter) emitDocstring(doc string) {
	if doc == "" || !e.opts.AddDocstrings {
		return
	}
	if e.isBasic() {
		for _, ln := range strings.Split(doc, "\n") {
			e.line("' " + ln)
		}
		return
	}
	if !strings.Contains(doc, "\n") {
		e.line(`"""` + doc + `"""`)
		return
	}
	e.line(`"""` + doc)
	for _, ln := range strings.Split(doc, "\n") {
		e.line(ln)
	}
	e.line(`"""`)
}

func (e *Emitter) emitDecorators(decs []*targetast.Decorator) {
	for _, d := range decs {
		if len(d.Args) == 0 {
			e.line("@" + d.Name)
			continue
		}
		e.line("@" + d.Name + "(" + e.emitExprCSV(d.Args) + ")")
	}
}

func (e *Emitter) emitFunction(f *targetast.Function) {
	if e.isBasic() {
		e.emitBasicFunction(f.Name, f.Params, f.Body, f.ReturnType, f.Docstring)
		return
	}
	e.emitDecorators(f.Decorators)
	header := "def " + f.Name + "(" + e.paramList(f.Params) + ")"
	if e.wantsHint(f.ReturnType) {
		header += " -> " + e.pythonTypeName(f.ReturnType)
	}
	e.line(header + ":")
	e.enterBlock()
	e.emitDocstring(f.Docstring)
	e.emitBodyInline(f.Body)
	e.leaveBlock()
}

// emitBodyInline writes a body at the current indent (already entered),
// falling back to `pass` when empty, matching emitBody's rule but
// without a redundant indent push — used after a docstring line that
// already opened the block.
func (e *Emitter) emitBodyInline(body []targetast.Statement) {
	if len(body) == 0 {
		if !e.isBasic() {
			e.line("pass")
		}
		return
	}
	for _, st := range body {
		e.emitStatement(st)
	}
}

// emitBasicFunction renders one BASIC Function/Sub declaration. A name
// starting with "New" (constructors) or a Void return type renders as
// `Sub`; anything else, including a nil return type, is a `Function`.
func (e *Emitter) emitBasicFunction(name string, params []targetast.Parameter, body []targetast.Statement, retType *ilast.Type, docstring string) {
	isFunc := !strings.HasPrefix(name, "New") && (retType == nil || retType.Kind != ilast.VoidType)
	kw := "Sub"
	if isFunc {
		kw = "Function"
	}
	header := "Public " + kw + " " + name + "(" + e.paramList(params) + ")"
	if isFunc && e.wantsHint(retType) {
		header += " As " + e.basicTypeName(retType)
	}
	e.line(header)
	e.enterBlock()
	e.emitDocstring(docstring)
	e.emitBodyInline(body)
	e.leaveBlock()
	e.line("End " + kw)
}

func (e *Emitter) emitClass(c *targetast.Class) {
	if e.isBasic() {
		e.emitBasicClass(c)
		return
	}
	e.emitPythonClass(c)
}

func (e *Emitter) emitPythonClass(c *targetast.Class) {
	header := "class " + c.Name
	if c.Extends != "" {
		header += "(" + c.Extends + ")"
	}
	e.line(header + ":")
	e.enterBlock()
	e.emitDocstring(c.Docstring)
	wroteMember := false
	for _, f := range c.Fields {
		wroteMember = true
		e.emitField(f)
	}
	for i, p := range c.Properties {
		if wroteMember || i > 0 {
			e.blank()
		}
		wroteMember = true
		e.emitPythonProperty(p)
	}
	for _, m := range c.Methods {
		if wroteMember {
			e.blank()
		}
		wroteMember = true
		e.emitMethod(m)
	}
	if !wroteMember {
		e.line("pass")
	}
	e.leaveBlock()
}

func (e *Emitter) emitField(f targetast.Field) {
	if e.isBasic() {
		decl := "Public " + f.Name
		if e.wantsHint(f.Type) {
			decl += " As " + e.basicTypeName(f.Type)
		}
		if f.Default != nil {
			decl += " = " + e.emitExpr(f.Default)
		}
		e.line(decl)
		return
	}
	decl := f.Name
	if e.wantsHint(f.Type) {
		decl += ": " + e.pythonTypeName(f.Type)
	}
	if f.Default != nil {
		decl += " = " + e.emitExpr(f.Default)
	} else if !e.wantsHint(f.Type) {
		decl += " = None"
	}
	e.line(decl)
}

func (e *Emitter) emitPythonProperty(p targetast.Property) {
	if p.Kind == targetast.Getter {
		e.line("@property")
		e.line("def " + p.Name + "(self):")
	} else {
		e.line("@" + p.Name + ".setter")
		e.line("def " + p.Name + "(self, " + p.Param + "):")
	}
	e.emitBody(p.Body)
}

func (e *Emitter) emitMethod(m targetast.Method) {
	if e.isBasic() {
		e.emitBasicMethod(m)
		return
	}
	e.emitDecorators(m.Decorators)
	params := e.paramList(m.Params)
	if m.MKind != targetast.MStatic {
		if params == "" {
			params = "self"
		} else {
			params = "self, " + params
		}
	}
	header := "def " + m.Name + "(" + params + ")"
	if e.wantsHint(m.ReturnType) {
		header += " -> " + e.pythonTypeName(m.ReturnType)
	}
	e.line(header + ":")
	e.enterBlock()
	e.emitDocstring(m.Docstring)
	e.emitBodyInline(m.Body)
	e.leaveBlock()
}

func (e *Emitter) emitBasicMethod(m targetast.Method) {
	modifier := "Public "
	if m.MKind == targetast.MStatic {
		modifier = "Public Shared "
	}
	isFunc := m.MKind != targetast.MConstructor && (m.ReturnType == nil || m.ReturnType.Kind != ilast.VoidType)
	kw := "Sub"
	if isFunc {
		kw = "Function"
	}
	header := modifier + kw + " " + m.Name + "(" + e.paramList(m.Params) + ")"
	if isFunc && e.wantsHint(m.ReturnType) {
		header += " As " + e.basicTypeName(m.ReturnType)
	}
	e.line(header)
	e.enterBlock()
	e.emitDocstring(m.Docstring)
	e.emitBodyInline(m.Body)
	e.leaveBlock()
	e.line("End " + kw)
}

func (e *Emitter) emitBasicClass(c *targetast.Class) {
	e.line("Public Class " + c.Name)
	e.enterBlock()
	if c.Extends != "" {
		e.line("Inherits " + c.Extends)
	}
	e.emitDocstring(c.Docstring)
	for _, f := range c.Fields {
		e.emitField(f)
	}
	for _, p := range c.Properties {
		e.emitBasicProperty(p)
	}
	for _, m := range c.Methods {
		e.emitMethod(m)
	}
	e.leaveBlock()
	e.line("End Class")
}

func (e *Emitter) emitBasicProperty(p targetast.Property) {
	if p.Kind == targetast.Getter {
		e.line("Public Property Get " + p.Name + "()")
		e.emitBody(p.Body)
		e.line("End Property")
		return
	}
	e.line("Public Property Let " + p.Name + "(" + p.Param + ")")
	e.emitBody(p.Body)
	e.line("End Property")
}

func (e *Emitter) emitTypeDeclaration(t *targetast.TypeDeclaration) {
	e.line("Public Type " + t.Name)
	e.enterBlock()
	for _, f := range t.Fields {
		decl := f.Name
		if e.wantsHint(f.Type) {
			decl += " As " + e.basicTypeName(f.Type)
		}
		e.line(decl)
	}
	e.leaveBlock()
	e.line("End Type")
}
