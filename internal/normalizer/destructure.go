package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// normalizeVarDecl is spec §4.1 rewrite 5's entry point. A plain
// identifier target lowers to a single VarDecl; an Array/Object pattern
// target introduces a hidden temporary bound to the initializer and
// expands into one VarDecl per bound name, reading through the
// temporary by index (array) or key (object), both modeled as a
// Subscript so §4.2.3 rule 6's `target = temp["key"]` shape survives
// the Target Transformer unchanged.
func (n *Normalizer) normalizeVarDecl(s *sourceast.VarDecl) []ilast.Statement {
	switch target := s.Target.(type) {
	case *sourceast.Identifier:
		init := n.NormalizeExpression(s.Init)
		t := typeFromAnnotation(s.Type)
		if t.Kind == ilast.Any && init != nil {
			t = init.ResultType()
		}
		return []ilast.Statement{&ilast.VarDecl{Names: []string{target.Name}, Type: t, Init: init}}
	case *sourceast.ArrayPattern, *sourceast.ObjectPattern:
		init := n.NormalizeExpression(s.Init)
		tmp := n.tempName()
		out := []ilast.Statement{&ilast.VarDecl{Names: []string{tmp}, Type: init.ResultType(), Init: init}}
		out = append(out, n.destructureBinding(target, &ilast.Identifier{Name: tmp, TypedExpr: ilast.TypedExpr{Type: init.ResultType()}})...)
		return out
	default:
		n.sess.WarnUnknown("VarDecl", pos(s), s)
		return []ilast.Statement{&ilast.Unknown{NodeKind: "VarDecl"}}
	}
}

// destructureBinding expands one destructuring pattern against an
// already-bound source expression (the hidden temporary, or a nested
// element/property read off it), recursing for nested patterns.
func (n *Normalizer) destructureBinding(target sourceast.Expression, source ilast.Expression) []ilast.Statement {
	switch pat := target.(type) {
	case *sourceast.ArrayPattern:
		var out []ilast.Statement
		for i, el := range pat.Elements {
			elemExpr := &ilast.Subscript{Object: source, Index: ilast.NewIntLiteral(int64(i), ilast.W0)}
			out = append(out, n.bindElement(el, elemExpr)...)
		}
		return out
	case *sourceast.ObjectPattern:
		var out []ilast.Statement
		for _, prop := range pat.Props {
			elemExpr := &ilast.Subscript{Object: source, Index: ilast.NewStringLiteral(prop.Key)}
			out = append(out, n.bindElement(prop.Value, elemExpr)...)
		}
		return out
	default:
		return nil
	}
}

// bindElement binds one destructuring element: a plain identifier gets a
// direct VarDecl; a nested pattern is routed through a fresh temporary so
// its own elements read from a stable, side-effect-free expression.
func (n *Normalizer) bindElement(el sourceast.Expression, elemExpr ilast.Expression) []ilast.Statement {
	switch e := el.(type) {
	case *sourceast.Identifier:
		return []ilast.Statement{&ilast.VarDecl{Names: []string{e.Name}, Type: elemExpr.ResultType(), Init: elemExpr}}
	case *sourceast.ArrayPattern, *sourceast.ObjectPattern:
		tmp := n.tempName()
		out := []ilast.Statement{&ilast.VarDecl{Names: []string{tmp}, Type: elemExpr.ResultType(), Init: elemExpr}}
		out = append(out, n.destructureBinding(e, &ilast.Identifier{Name: tmp})...)
		return out
	default:
		return nil
	}
}
