// This file renders ilast.Type as a dialect type annotation, gated by
// the addTypeHints/strictTypes TargetOptions (spec §4.2's options table:
// "strictTypes: emit annotations even when inferred type is the
// universal Any").
package emit

import "github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"

// wantsHint reports whether t should be rendered as an annotation at
// all under the active options.
func (e *Emitter) wantsHint(t *ilast.Type) bool {
	if t == nil || !e.opts.AddTypeHints {
		return false
	}
	if t.Kind == ilast.Any && !e.opts.StrictTypes {
		return false
	}
	return true
}

func (e *Emitter) pythonTypeName(t *ilast.Type) string {
	switch t.Kind {
	case ilast.IntType, ilast.BigIntType:
		return "int"
	case ilast.FloatType:
		return "float"
	case ilast.BoolType:
		return "bool"
	case ilast.StringType:
		return "str"
	case ilast.BytesType:
		return "bytes"
	case ilast.NullType, ilast.VoidType:
		return "None"
	case ilast.ArrayType:
		if t.Elem != nil {
			return "list[" + e.pythonTypeName(t.Elem) + "]"
		}
		return "list"
	case ilast.DictType:
		return "dict"
	case ilast.ClassType:
		return t.Class
	case ilast.FunctionType:
		return "Callable"
	default:
		return "Any"
	}
}

func (e *Emitter) basicTypeName(t *ilast.Type) string {
	switch t.Kind {
	case ilast.IntType:
		switch t.Width {
		case ilast.W8:
			return "Byte"
		case ilast.W16:
			return "Integer"
		case ilast.W64:
			return "LongLong"
		default:
			return "Long"
		}
	case ilast.BigIntType:
		return "LongLong"
	case ilast.FloatType:
		return "Double"
	case ilast.BoolType:
		return "Boolean"
	case ilast.StringType:
		return "String"
	case ilast.BytesType:
		return "Byte()"
	case ilast.ArrayType:
		if t.Elem != nil {
			return e.basicTypeName(t.Elem) + "()"
		}
		return "Variant()"
	case ilast.DictType:
		return "Object"
	case ilast.ClassType:
		return t.Class
	default:
		return "Variant"
	}
}
