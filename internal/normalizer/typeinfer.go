package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// Scope is a chain of identifier->Type bindings used for type inference
// (spec §4.1 rewrite 3): "Identifier types flow from declaration
// annotations or initializer expressions."
type Scope struct {
	parent *Scope
	vars   map[string]ilast.Type
}

// NewScope creates a child scope of parent (nil for the module scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: make(map[string]ilast.Type)}
}

// Define records the inferred type of name in this scope.
func (s *Scope) Define(name string, t ilast.Type) {
	s.vars[name] = t
}

// Lookup resolves name through the scope chain, defaulting to Any.
func (s *Scope) Lookup(name string) ilast.Type {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t
		}
	}
	return ilast.TAny
}

func typeFromAnnotation(ta *sourceast.TypeAnnotation) ilast.Type {
	if ta == nil {
		return ilast.TAny
	}
	switch ta.Name {
	case "number":
		return ilast.TFloat()
	case "int", "integer":
		return ilast.TInt(ilast.W32)
	case "string":
		return ilast.TString()
	case "boolean", "bool":
		return ilast.TBool()
	case "bigint":
		return ilast.TBigInt()
	case "Array":
		elem := ilast.TAny
		if ta.Elem != nil {
			elem = typeFromAnnotation(ta.Elem)
		}
		return ilast.TArray(elem)
	default:
		return ilast.TAny
	}
}

// inferBinaryType implements spec §4.2.2/§4.1 rewrite 3's numeric-width
// propagation: mixed int/float produces float; two fixed-width ints keep
// the wider of the two widths; anything else (string concat via `+`,
// comparisons, logical operators) yields the operator's natural type.
func inferBinaryType(op string, left, right ilast.Type) ilast.Type {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return ilast.TBool()
	case "+":
		if left.Kind == ilast.StringType || right.Kind == ilast.StringType {
			return ilast.TString()
		}
	}
	if left.IsNumeric() && right.IsNumeric() {
		if left.Kind == ilast.FloatType || right.Kind == ilast.FloatType {
			return ilast.TFloat()
		}
		if left.Kind == ilast.BigIntType || right.Kind == ilast.BigIntType {
			return ilast.TBigInt()
		}
		w := left.Width
		if right.Width > w {
			w = right.Width
		}
		return ilast.TInt(w)
	}
	return ilast.TAny
}
