// This file implements spec §4.2.6's class-shape rules: constructor and
// property handling, the Python accessor decorator pair, the BASIC
// Class-vs-Type+functions split, and the backing-field substitution a
// getter/setter needs when its body reads the property it implements.
package transform

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

func (t *Transformer) lowerFunction(s *ilast.Function) targetast.Statement {
	rt := s.ReturnType
	return &targetast.Function{
		Name:       t.funcName(s.Name),
		Params:     t.lowerParams(s.Params),
		Body:       t.lowerStatements(s.Body),
		ReturnType: &rt,
		Docstring:  s.Docstring,
	}
}

func (t *Transformer) lowerParams(params []ilast.Parameter) []targetast.Parameter {
	out := make([]targetast.Parameter, 0, len(params))
	for _, p := range params {
		var def targetast.Expression
		if p.Default != nil {
			col := &session.Collector{}
			def = t.lowerExpr(p.Default, col)
		}
		ty := p.Type
		out = append(out, targetast.Parameter{Name: t.varName(p.Name), Type: &ty, Default: def, Rest: p.Rest})
	}
	return out
}

// lowerClass picks the Python-style class rendering or, on the BASIC
// path with useClasses=false, the Type+functions rendering (§4.2.6).
func (t *Transformer) lowerClass(c *ilast.Class) targetast.Statement {
	if t.isBasic() && !t.opts.UseClasses {
		return t.lowerClassAsType(c)
	}
	return t.lowerClassAsClass(c)
}

func (t *Transformer) lowerClassAsClass(c *ilast.Class) targetast.Statement {
	savedFields, savedMethods, savedProp := t.classFieldNames, t.classMethodNames, t.currentProperty
	defer func() { t.classFieldNames, t.classMethodNames, t.currentProperty = savedFields, savedMethods, savedProp }()

	t.classMethodNames = make(map[string]bool, len(c.Methods)+len(c.Properties))
	for _, m := range c.Methods {
		t.classMethodNames[t.methodName(m.Name)] = true
	}
	for _, p := range c.Properties {
		t.classMethodNames[t.methodName(p.Name)] = true
	}

	t.classFieldNames = make(map[string]bool, len(c.Fields))
	fields := make([]targetast.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		name := t.resolveFieldName(f.Name)
		t.classFieldNames[name] = true
		var def targetast.Expression
		if f.Default != nil {
			col := &session.Collector{}
			def = t.lowerExpr(f.Default, col)
		}
		ty := f.Type
		fields = append(fields, targetast.Field{Name: name, Type: &ty, Default: def})
	}

	extraFields, props := t.lowerProperties(c.Properties)
	fields = append(fields, extraFields...)

	methods := make([]targetast.Method, 0, len(c.Methods)+len(c.Statics))
	seenMethodNames := make(map[string]bool, len(c.Methods))
	for i := range c.Methods {
		m := &c.Methods[i]
		name := t.methodName(m.Name)
		if t.isDelegatingWrapperMethod(m, name) {
			continue
		}
		if seenMethodNames[name] {
			continue
		}
		seenMethodNames[name] = true
		methods = append(methods, t.lowerMethod(m))
	}
	for _, sb := range c.Statics {
		methods = append(methods, t.lowerStaticBlock(sb))
	}

	// useProperties=false on the BASIC path asks for paired Get/Set
	// methods instead of a native Property Get/Set block (§4.2's
	// TargetOptions table); Python always keeps the decorator form.
	if t.isBasic() && !t.opts.UseProperties && len(props) > 0 {
		methods = append(methods, propertiesToMethods(props)...)
		props = nil
	}

	extends := c.Extends
	if extends != "" {
		extends = t.className(extends)
	}

	return &targetast.Class{
		Name:          t.className(c.Name),
		Extends:       extends,
		Fields:        fields,
		Properties:    props,
		Methods:       methods,
		Docstring:     c.Docstring,
		FrameworkRefs: c.FrameworkRefs,
	}
}

// lowerProperties pairs getter/setter arms by name and applies §4.2.6's
// rules: a getter-only property whose body is exactly `return <literal>`
// (the Open Question #1 "static getter" shape — it reads no instance
// state) collapses to a plain class variable instead of an accessor
// pair; a setter with no matching getter gets a synthesized getter
// returning the backing field, since Python's `@x.setter` requires
// `@property` to already exist.
func (t *Transformer) lowerProperties(props []ilast.Property) ([]targetast.Field, []targetast.Property) {
	var order []string
	byName := make(map[string][]ilast.Property)
	for _, p := range props {
		if _, seen := byName[p.Name]; !seen {
			order = append(order, p.Name)
		}
		byName[p.Name] = append(byName[p.Name], p)
	}

	var fields []targetast.Field
	var out []targetast.Property
	for _, name := range order {
		arms := byName[name]
		var getter, setter *ilast.Property
		for i := range arms {
			if arms[i].Kind == ilast.Getter {
				getter = &arms[i]
			} else {
				setter = &arms[i]
			}
		}
		propName := t.methodName(name)

		if getter != nil && setter == nil {
			if lit, ok := literalGetterValue(getter.Body); ok {
				col := &session.Collector{}
				fields = append(fields, targetast.Field{Name: propName, Default: t.lowerExpr(lit, col)})
				continue
			}
		}

		t.currentProperty = propName
		if getter != nil {
			out = append(out, targetast.Property{Name: propName, Kind: targetast.Getter, Body: t.lowerStatements(getter.Body)})
		} else if setter != nil {
			out = append(out, targetast.Property{Name: propName, Kind: targetast.Getter, Body: t.syntheticGetterBody(propName)})
		}
		if setter != nil {
			out = append(out, targetast.Property{Name: propName, Kind: targetast.Setter, Param: t.varName(setter.Param), Body: t.lowerStatements(setter.Body)})
		}
		t.currentProperty = ""
	}
	return fields, out
}

// literalGetterValue recognizes a getter body that is exactly a single
// `return <literal>` statement, with no other statements and no
// self-reference — the shape Open Question #1 collapses to a field.
func literalGetterValue(body []ilast.Statement) (*ilast.Literal, bool) {
	if len(body) != 1 {
		return nil, false
	}
	ret, ok := body[0].(*ilast.Return)
	if !ok || ret.Value == nil {
		return nil, false
	}
	lit, ok := ret.Value.(*ilast.Literal)
	return lit, ok
}

// propertiesToMethods renders a lowered Property list as paired Get<Name>/
// Set<Name> methods, the useProperties=false BASIC rendering (§4.2's
// TargetOptions table).
func propertiesToMethods(props []targetast.Property) []targetast.Method {
	out := make([]targetast.Method, 0, len(props))
	for _, p := range props {
		if p.Kind == targetast.Getter {
			out = append(out, targetast.Method{Name: "Get" + p.Name, Body: p.Body})
			continue
		}
		out = append(out, targetast.Method{
			Name:   "Set" + p.Name,
			Params: []targetast.Parameter{{Name: p.Param}},
			Body:   p.Body,
		})
	}
	return out
}

func (t *Transformer) syntheticGetterBody(propName string) []targetast.Statement {
	self := "self"
	if t.isBasic() {
		self = "Me"
	}
	backing := syntheticGetterBacking(propName)
	return []targetast.Statement{&targetast.Return{Value: &targetast.MemberAccess{Object: &targetast.Identifier{Name: self}, Property: backing}}}
}

// isDelegatingWrapperMethod recognizes the §4.2.6 drop case: m's entire
// body is a single call to another method under a distinct Source
// spelling that collapses to the same converted name as m itself.
// Keeping such a wrapper would have it call itself once case conversion
// merges the two names, recursing infinitely.
func (t *Transformer) isDelegatingWrapperMethod(m *ilast.Method, convertedName string) bool {
	if len(m.Body) != 1 {
		return false
	}
	var call *ilast.ThisMethodCall
	switch s := m.Body[0].(type) {
	case *ilast.Return:
		call, _ = s.Value.(*ilast.ThisMethodCall)
	case *ilast.ExpressionStmt:
		call, _ = s.Expr.(*ilast.ThisMethodCall)
	}
	return call != nil && call.Method != m.Name && t.methodName(call.Method) == convertedName
}

func (t *Transformer) lowerMethod(m *ilast.Method) targetast.Method {
	kind := targetast.MPlain
	name := t.methodName(m.Name)
	var decorators []*targetast.Decorator
	switch m.MKind {
	case ilast.MConstructor:
		kind = targetast.MConstructor
		if t.isBasic() {
			name = "New"
		} else {
			name = "__init__"
		}
	case ilast.MStatic:
		kind = targetast.MStatic
		if !t.isBasic() {
			decorators = []*targetast.Decorator{{Name: "staticmethod"}}
		}
	}
	rt := m.ReturnType
	return targetast.Method{
		Name:       name,
		MKind:      kind,
		Params:     t.lowerParams(m.Params),
		Body:       t.lowerStatements(m.Body),
		ReturnType: &rt,
		Docstring:  m.Docstring,
		Decorators: decorators,
	}
}

// lowerStaticBlock folds a class-body initializer block into a synthetic
// static method: a `@classmethod` named `_static_init` on the Python
// path, a `Public Shared` method named StaticInit on BASIC. No call to it
// is emitted on either path.
func (t *Transformer) lowerStaticBlock(sb ilast.StaticBlock) targetast.Method {
	name := "_static_init"
	var decorators []*targetast.Decorator
	if t.isBasic() {
		name = "StaticInit"
	} else {
		decorators = []*targetast.Decorator{{Name: "classmethod"}}
	}
	return targetast.Method{Name: name, MKind: targetast.MStatic, Body: t.lowerStatements(sb.Body), Decorators: decorators}
}

// lowerClassAsType is the BASIC useClasses=false rendering: fields
// become a Type record and methods/properties become standalone
// functions taking `self As <TypeName>` as their first parameter
// (§4.2.6). The caller flattens the returned Block into sibling
// top-level statements.
func (t *Transformer) lowerClassAsType(c *ilast.Class) targetast.Statement {
	savedFields := t.classFieldNames
	defer func() { t.classFieldNames = savedFields }()

	typeName := t.className(c.Name)
	t.classFieldNames = make(map[string]bool, len(c.Fields))
	fields := make([]targetast.TypeField, 0, len(c.Fields))
	for _, f := range c.Fields {
		name := t.resolveFieldName(f.Name)
		t.classFieldNames[name] = true
		ty := f.Type
		fields = append(fields, targetast.TypeField{Name: name, Type: &ty})
	}

	body := []targetast.Statement{&targetast.TypeDeclaration{Name: typeName, Fields: fields}}
	for _, m := range c.Methods {
		body = append(body, t.lowerClassMethodAsFunction(typeName, &m))
	}
	for _, p := range c.Properties {
		body = append(body, t.lowerPropertyAsFunction(typeName, &p))
	}
	return &targetast.Block{Body: body}
}

func (t *Transformer) selfParam(typeName string) targetast.Parameter {
	return targetast.Parameter{Name: "self", Type: &ilast.Type{Kind: ilast.ClassType, Class: typeName}}
}

func (t *Transformer) lowerClassMethodAsFunction(typeName string, m *ilast.Method) targetast.Statement {
	name := t.methodName(m.Name)
	if m.MKind == ilast.MConstructor {
		name = "New" + typeName
	}
	params := append([]targetast.Parameter{t.selfParam(typeName)}, t.lowerParams(m.Params)...)
	rt := m.ReturnType
	return &targetast.Function{Name: name, Params: params, Body: t.lowerStatements(m.Body), ReturnType: &rt, Docstring: m.Docstring}
}

func (t *Transformer) lowerPropertyAsFunction(typeName string, p *ilast.Property) targetast.Statement {
	params := []targetast.Parameter{t.selfParam(typeName)}
	prefix := "Get"
	if p.Kind == ilast.Setter {
		prefix = "Set"
		params = append(params, targetast.Parameter{Name: t.varName(p.Param)})
	}
	name := prefix + t.className(p.Name)
	return &targetast.Function{Name: name, Params: params, Body: t.lowerStatements(p.Body)}
}

// ---- OOP expression helpers ----

func (t *Transformer) selfWord() string {
	if t.isBasic() {
		return "Me"
	}
	return "self"
}

// lowerThisPropertyAccess resolves §4.2.1's backing-field substitution:
// a getter/setter body that reads the very property it implements would
// otherwise recurse through the case-converted accessor name forever, so
// it is redirected to the `_<name>_backing` field instead.
func (t *Transformer) lowerThisPropertyAccess(x *ilast.ThisPropertyAccess) targetast.Expression {
	converted := t.fieldName(x.Property)
	var name string
	switch {
	case t.currentProperty != "" && converted == t.currentProperty:
		name = backingFieldName(t.currentProperty)
	case t.classMethodNames[converted]:
		name = "_" + converted + "_value"
	default:
		name = converted
	}
	return &targetast.MemberAccess{Object: &targetast.Identifier{Name: t.selfWord()}, Property: name}
}

func (t *Transformer) thisMethodCallee(method string) targetast.Expression {
	return &targetast.MemberAccess{Object: &targetast.Identifier{Name: t.selfWord()}, Property: t.methodName(method)}
}

func (t *Transformer) parentMethodCallee(method string) targetast.Expression {
	if t.isBasic() {
		return &targetast.MemberAccess{Object: &targetast.Identifier{Name: "MyBase"}, Property: t.methodName(method)}
	}
	return &targetast.MemberAccess{Object: &targetast.Call{Callee: &targetast.Identifier{Name: "super"}}, Property: t.methodName(method)}
}

// lowerLambda renders an IL Lambda. Python keeps single-expression
// lambdas as a native `lambda`; a block-bodied lambda carries Body
// through, and the emitter prints it as a `lambda` whose body is an
// Unknown placeholder (no nested `def` is generated). BASIC
// dialects have no first-class function value, so a Lambda surviving
// this far (the normalizer could not inline its one call site) becomes
// a Placeholder — hoisting it to a named procedure needs a declaration
// context this expression-level call does not have.
func (t *Transformer) lowerLambda(x *ilast.Lambda, col *session.Collector) targetast.Expression {
	if !t.isBasic() {
		if x.ExprBody != nil {
			return &targetast.Lambda{Params: t.lowerParams(x.Params), ExprBody: t.lowerExpr(x.ExprBody, col)}
		}
		return &targetast.Lambda{Params: t.lowerParams(x.Params), Body: t.lowerStatements(x.Body)}
	}
	t.sess.Warn("BASIC has no first-class function value; lambda left unresolved", session.Position{})
	return &targetast.UnknownExpr{NodeKind: "Lambda"}
}

func (t *Transformer) lowerTupleLit(x *ilast.TupleLit, col *session.Collector) targetast.Expression {
	elements := t.lowerExprList(x.Elements, col)
	if !t.isBasic() {
		return &targetast.Tuple{Elements: elements}
	}
	return &targetast.ListLit{Elements: elements}
}

// lowerStringInterpolation renders an FString on the Python path; BASIC
// dialects have no template-literal syntax, so it lowers to a chain of
// `&`-concatenated CStr() conversions.
func (t *Transformer) lowerStringInterpolation(x *ilast.StringInterpolation, col *session.Collector) targetast.Expression {
	if !t.isBasic() {
		parts := make([]targetast.FStringPart, 0, len(x.Parts))
		for _, p := range x.Parts {
			if p.Expr == nil {
				parts = append(parts, targetast.FStringPart{Text: p.Text})
				continue
			}
			parts = append(parts, targetast.FStringPart{Expr: t.lowerExpr(p.Expr, col)})
		}
		return &targetast.FString{Parts: parts}
	}
	var result targetast.Expression
	for _, p := range x.Parts {
		var piece targetast.Expression
		if p.Expr == nil {
			piece = &targetast.Literal{LitKind: targetast.LString, Str: p.Text}
		} else {
			piece = &targetast.Cast{Fn: targetast.CStr, Value: t.lowerExpr(p.Expr, col)}
		}
		if result == nil {
			result = piece
		} else {
			result = &targetast.Binary{Op: "&", Left: result, Right: piece}
		}
	}
	if result == nil {
		return &targetast.Literal{LitKind: targetast.LString, Str: ""}
	}
	return result
}
