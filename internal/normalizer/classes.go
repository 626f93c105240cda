package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

func (n *Normalizer) normalizeParams(params []sourceast.Parameter) []ilast.Parameter {
	out := make([]ilast.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, ilast.Parameter{
			Name:    p.Name,
			Type:    typeFromAnnotation(p.Type),
			Default: n.NormalizeExpression(p.Default),
			Rest:    p.Rest,
		})
	}
	return out
}

func (n *Normalizer) normalizeFunction(s *sourceast.FunctionDecl) *ilast.Function {
	return &ilast.Function{
		Name:       s.Name,
		Params:     n.normalizeParams(s.Params),
		Body:       n.normalizeStatements(s.Body),
		ReturnType: typeFromAnnotation(s.ReturnType),
		Docstring:  s.Docstring,
	}
}

// normalizeClass is spec §4.1 rewrite 4's entry point: explicit fields
// normalize directly, methods dispatch by MethodKind (a getter/setter
// becomes a Property, everything else a Method), and the constructor's
// `this.x = …` assignments are additionally extracted into synthesized
// Field declarations (§4.1 rewrite 4).
func (n *Normalizer) normalizeClass(s *sourceast.ClassDecl) *ilast.Class {
	n.sess.DefinedClassNames[s.Name] = true

	out := &ilast.Class{Name: s.Name, Extends: s.Extends, Docstring: s.Docstring}
	if s.Extends != "" {
		out.FrameworkRefs = append(out.FrameworkRefs, s.Extends)
		n.sess.NeedStub(s.Extends)
	}

	for _, f := range s.Fields {
		out.Fields = append(out.Fields, ilast.Field{
			Name:    f.Name,
			Type:    typeFromAnnotation(f.Type),
			Default: n.NormalizeExpression(f.Default),
		})
	}

	for _, m := range s.Methods {
		switch m.Kind_ {
		case sourceast.MethodGetter:
			out.Properties = append(out.Properties, ilast.Property{Name: m.Name, Kind: ilast.Getter, Body: n.normalizeStatements(m.Body)})
		case sourceast.MethodSetter:
			param := ""
			if len(m.Params) > 0 {
				param = m.Params[0].Name
			}
			out.Properties = append(out.Properties, ilast.Property{Name: m.Name, Kind: ilast.Setter, Param: param, Body: n.normalizeStatements(m.Body)})
		case sourceast.MethodConstructor:
			body := n.normalizeStatements(m.Body)
			fields, body := extractConstructorFields(body)
			out.Fields = append(out.Fields, fields...)
			out.Methods = append(out.Methods, ilast.Method{Name: m.Name, MKind: ilast.MConstructor, Params: n.normalizeParams(m.Params), Body: body, Docstring: m.Docstring})
		case sourceast.MethodStatic:
			out.Methods = append(out.Methods, ilast.Method{Name: m.Name, MKind: ilast.MStatic, Params: n.normalizeParams(m.Params), Body: n.normalizeStatements(m.Body), Docstring: m.Docstring})
		default:
			out.Methods = append(out.Methods, ilast.Method{Name: m.Name, MKind: ilast.MPlain, Params: n.normalizeParams(m.Params), Body: n.normalizeStatements(m.Body), Docstring: m.Docstring})
		}
	}
	return out
}

// extractConstructorFields scans an already-normalized constructor body
// for top-level `this.x = value` assignments — recognizable post-
// normalization as an ExpressionStmt wrapping an AssignExpr whose Target
// is a ThisPropertyAccess — and turns each into a synthesized Field plus
// a plain Assign statement in place of the expression statement (spec
// §4.1 rewrite 4).
func extractConstructorFields(body []ilast.Statement) ([]ilast.Field, []ilast.Statement) {
	var fields []ilast.Field
	out := make([]ilast.Statement, 0, len(body))
	for _, stmt := range body {
		es, ok := stmt.(*ilast.ExpressionStmt)
		if !ok {
			out = append(out, stmt)
			continue
		}
		assign, ok := es.Expr.(*ilast.AssignExpr)
		if !ok || assign.Op != "=" {
			out = append(out, stmt)
			continue
		}
		target, ok := assign.Target.(*ilast.ThisPropertyAccess)
		if !ok {
			out = append(out, stmt)
			continue
		}
		fields = append(fields, ilast.Field{Name: target.Property, Type: assign.Value.ResultType()})
		out = append(out, &ilast.Assign{Op: "=", Target: target, Value: assign.Value})
	}
	return fields, out
}
