// This file implements spec §4.2.5's library/primitive mapping table:
// every remaining ilast primitive node (array/string/math helpers, typed
// buffers, map/set literals, reflection checks) is rendered here to
// either a target builtin call or a prelude helper the emitter's stub
// registry (internal/stubs) is told to resolve.
package transform

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

func (t *Transformer) lowerLibraryPrimitive(e ilast.Expression, col *session.Collector) targetast.Expression {
	switch x := e.(type) {
	case *ilast.Bitwise:
		return t.lowerBitwise(x, col)
	case *ilast.Rotate:
		return t.lowerRotate(x, col)
	case *ilast.PackBytes:
		return t.lowerPackBytes(x, col)
	case *ilast.UnpackBytes:
		return t.lowerUnpackBytes(x, col)
	case *ilast.Cast:
		return t.lowerCast(x, col)
	case *ilast.ArrayCall:
		return t.lowerArrayCall(x, col)
	case *ilast.StringCall:
		return t.lowerStringCall(x, col)
	case *ilast.MathCall:
		return t.lowerMathCall(x, col)
	case *ilast.MathConstant:
		return t.lowerMathConstant(x)
	case *ilast.NumberConstant:
		return t.lowerNumberConstant(x)
	case *ilast.HexDecode:
		t.sess.NeedImport("_hex_decode")
		return t.call1("_hex_decode", "bytes.fromhex", x.Value, col)
	case *ilast.HexEncode:
		t.sess.NeedImport("_hex_encode")
		return t.call1("_hex_encode", "bytes.hex", x.Value, col)
	case *ilast.StringToBytes:
		return t.call1("_string_to_bytes", "", x.Value, col)
	case *ilast.BytesToString:
		return t.call1("_bytes_to_string", "", x.Value, col)
	case *ilast.ArrayCreation:
		return t.lowerArrayCreation(x, col)
	case *ilast.TypedArrayCreation:
		return t.lowerTypedArrayCreation(x, col)
	case *ilast.BufferCreation:
		return t.call1("_buffer_create", "bytearray", x.Size, col)
	case *ilast.DataViewCreation:
		return t.call1("_dataview_create", "", x.Buffer, col)
	case *ilast.MapCreation:
		return t.lowerMapCreation(x, col)
	case *ilast.SetCreation:
		return t.lowerSetCreation(x, col)
	case *ilast.InstanceOfCheck:
		return t.lowerInstanceOfCheck(x, col)
	case *ilast.IsArrayCheck:
		return t.call1("_is_array", "", x.Value, col)
	case *ilast.IsIntegerCheck:
		return t.call1("_is_integer", "", x.Value, col)
	case *ilast.TypeOfExpression:
		return t.call1("_type_of", "type", x.Value, col)
	case *ilast.ObjectCall:
		return t.lowerObjectCall(x, col)
	case *ilast.ArrayFrom:
		return t.lowerArrayFrom(x, col)
	default:
		t.sess.WarnUnknown(e.Kind(), session.Position{}, e)
		return &targetast.UnknownExpr{NodeKind: e.Kind()}
	}
}

// call1 builds a single-argument call, preferring a dialect builtin
// (pythonBuiltin, used only on the Python path when non-empty) over the
// prelude helper name.
func (t *Transformer) call1(helperName, pythonBuiltin string, arg ilast.Expression, col *session.Collector) targetast.Expression {
	value := t.lowerExpr(arg, col)
	if !t.isBasic() && pythonBuiltin != "" {
		return &targetast.Call{Callee: &targetast.Identifier{Name: pythonBuiltin}, Args: []targetast.Expression{value}}
	}
	t.sess.NeedImport(helperName)
	return &targetast.Call{Callee: &targetast.Identifier{Name: helperName}, Args: []targetast.Expression{value}}
}

func (t *Transformer) lowerErrorCreation(x *ilast.ErrorCreation, col *session.Collector) targetast.Expression {
	var msg targetast.Expression
	if x.Message != nil {
		msg = t.lowerExpr(x.Message, col)
	} else {
		msg = &targetast.Literal{LitKind: targetast.LString, Str: ""}
	}
	if t.isBasic() {
		return &targetast.Call{Callee: &targetast.Identifier{Name: "New Exception"}, Args: []targetast.Expression{msg}}
	}
	name := pythonExceptionName(x.ErrorKind)
	return &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: []targetast.Expression{msg}}
}

func pythonExceptionName(kind string) string {
	switch kind {
	case "TypeError":
		return "TypeError"
	case "RangeError":
		return "ValueError"
	default:
		return "Exception"
	}
}

// ---- array/string/math primitives ----

func (t *Transformer) lowerArrayCall(x *ilast.ArrayCall, col *session.Collector) targetast.Expression {
	receiver := t.lowerExpr(x.Receiver, col)
	switch x.Op {
	case ilast.OpArrayLength:
		if t.isBasic() {
			return &targetast.Call{Callee: &targetast.MemberAccess{Object: receiver, Property: "Length"}}
		}
		return &targetast.Call{Callee: &targetast.Identifier{Name: "len"}, Args: []targetast.Expression{receiver}}
	case ilast.OpArrayMap, ilast.OpArrayFilter:
		return t.lowerArrayComprehension(x, receiver, col)
	default:
		t.sess.NeedImport("_array_" + string(x.Op))
		args := append([]targetast.Expression{receiver}, t.lowerExprList(x.Args, col)...)
		if x.Callback != nil {
			args = append(args, t.lowerExpr(x.Callback, col))
		}
		if x.Initial != nil {
			args = append(args, t.lowerExpr(x.Initial, col))
		}
		return &targetast.Call{Callee: &targetast.Identifier{Name: "_array_" + string(x.Op)}, Args: args}
	}
}

// lowerArrayComprehension renders Map/Filter as a Python list
// comprehension when the callback is a single-expression Lambda (the
// common case); anything more complex falls back to a named helper call.
func (t *Transformer) lowerArrayComprehension(x *ilast.ArrayCall, receiver targetast.Expression, col *session.Collector) targetast.Expression {
	lambda, ok := x.Callback.(*ilast.Lambda)
	if !t.isBasic() && ok && lambda.ExprBody != nil && len(lambda.Params) >= 1 {
		varName := t.varName(lambda.Params[0].Name)
		inner := &session.Collector{}
		expr := t.lowerExpr(lambda.ExprBody, inner)
		if x.Op == ilast.OpArrayFilter {
			return &targetast.ListComprehension{Expr: &targetast.Identifier{Name: varName}, VarName: varName, Iterable: receiver, Cond: expr}
		}
		return &targetast.ListComprehension{Expr: expr, VarName: varName, Iterable: receiver}
	}
	t.sess.NeedImport("_array_" + string(x.Op))
	args := []targetast.Expression{receiver, t.lowerExpr(x.Callback, col)}
	return &targetast.Call{Callee: &targetast.Identifier{Name: "_array_" + string(x.Op)}, Args: args}
}

func (t *Transformer) lowerStringCall(x *ilast.StringCall, col *session.Collector) targetast.Expression {
	receiver := t.lowerExpr(x.Receiver, col)
	args := t.lowerExprList(x.Args, col)
	if !t.isBasic() {
		if py, ok := stringOpPythonMethod[x.Op]; ok {
			return &targetast.Call{Callee: &targetast.MemberAccess{Object: receiver, Property: py}, Args: args}
		}
	}
	t.sess.NeedImport("_string_" + string(x.Op))
	return &targetast.Call{Callee: &targetast.Identifier{Name: "_string_" + string(x.Op)}, Args: append([]targetast.Expression{receiver}, args...)}
}

var stringOpPythonMethod = map[ilast.StringOp]string{
	ilast.OpStringReplace:    "replace",
	ilast.OpStringSplit:      "split",
	ilast.OpStringToUpper:    "upper",
	ilast.OpStringToLower:    "lower",
	ilast.OpStringTrim:       "strip",
	ilast.OpStringStartsWith: "startswith",
	ilast.OpStringEndsWith:   "endswith",
	ilast.OpStringIndexOf:    "find",
}

func (t *Transformer) lowerMathCall(x *ilast.MathCall, col *session.Collector) targetast.Expression {
	args := t.lowerExprList(x.Args, col)
	if x.Fn == ilast.MathImul {
		product := &targetast.Binary{Op: "*", Left: args[0], Right: args[1]}
		return t.applyMask(product, ilast.W32)
	}
	if !t.isBasic() {
		if py, ok := mathFnPython[x.Fn]; ok {
			return &targetast.Call{Callee: &targetast.Identifier{Name: py}, Args: args}
		}
	}
	t.sess.NeedImport("_math_" + string(x.Fn))
	return &targetast.Call{Callee: &targetast.Identifier{Name: "_math_" + string(x.Fn)}, Args: args}
}

var mathFnPython = map[ilast.MathFn]string{
	ilast.MathSin: "math.sin", ilast.MathCos: "math.cos", ilast.MathTan: "math.tan",
	ilast.MathLog: "math.log", ilast.MathLog2: "math.log2", ilast.MathPow: "math.pow",
	ilast.MathFloor: "math.floor", ilast.MathCeil: "math.ceil", ilast.MathAbs: "abs",
	ilast.MathSqrt: "math.sqrt", ilast.MathMin: "min", ilast.MathMax: "max",
	ilast.MathTrunc: "math.trunc", ilast.MathRandom: "random.random",
}

func (t *Transformer) lowerMathConstant(x *ilast.MathConstant) targetast.Expression {
	if !t.isBasic() {
		name := map[string]string{"PI": "math.pi", "E": "math.e"}[x.Name]
		if name == "" {
			name = "math." + x.Name
		}
		return &targetast.Identifier{Name: name}
	}
	t.sess.NeedImport("_math_const_" + x.Name)
	return &targetast.Identifier{Name: "_math_const_" + x.Name}
}

func (t *Transformer) lowerNumberConstant(x *ilast.NumberConstant) targetast.Expression {
	t.sess.NeedImport("_number_const_" + x.Name)
	return &targetast.Identifier{Name: "_number_const_" + x.Name}
}

func (t *Transformer) lowerArrayCreation(x *ilast.ArrayCreation, col *session.Collector) targetast.Expression {
	if x.Size == nil {
		return &targetast.ListLit{}
	}
	size := t.lowerExpr(x.Size, col)
	if t.isBasic() {
		t.sess.NeedImport("_array_create")
		return &targetast.Call{Callee: &targetast.Identifier{Name: "_array_create"}, Args: []targetast.Expression{size}}
	}
	return &targetast.Binary{Op: "*", Left: &targetast.ListLit{Elements: []targetast.Expression{&targetast.Literal{LitKind: targetast.LNull}}}, Right: size}
}

func (t *Transformer) lowerTypedArrayCreation(x *ilast.TypedArrayCreation, col *session.Collector) targetast.Expression {
	helper := "_typed_array_" + string(x.Elem)
	t.sess.NeedImport(helper)
	if x.SizeArg != nil {
		return &targetast.Call{Callee: &targetast.Identifier{Name: helper}, Args: []targetast.Expression{t.lowerExpr(x.SizeArg, col)}}
	}
	return &targetast.Call{Callee: &targetast.Identifier{Name: helper}, Args: []targetast.Expression{t.lowerExpr(x.SourceArg, col)}}
}

func (t *Transformer) lowerMapCreation(x *ilast.MapCreation, col *session.Collector) targetast.Expression {
	entries := make([]targetast.DictEntry, 0, len(x.Entries))
	for _, en := range x.Entries {
		entries = append(entries, targetast.DictEntry{Key: t.lowerExpr(en.Key, col), Value: t.lowerExpr(en.Value, col)})
	}
	return &targetast.DictLit{Entries: entries}
}

func (t *Transformer) lowerSetCreation(x *ilast.SetCreation, col *session.Collector) targetast.Expression {
	t.sess.NeedImport("_set_create")
	return &targetast.Call{Callee: &targetast.Identifier{Name: "_set_create"}, Args: []targetast.Expression{&targetast.ListLit{Elements: t.lowerExprList(x.Values, col)}}}
}

func (t *Transformer) lowerInstanceOfCheck(x *ilast.InstanceOfCheck, col *session.Collector) targetast.Expression {
	value := t.lowerExpr(x.Value, col)
	if t.isBasic() {
		return &targetast.TypeOf{Value: value, TypeName: t.className(x.TypeName)}
	}
	return &targetast.Call{Callee: &targetast.Identifier{Name: "isinstance"}, Args: []targetast.Expression{value, &targetast.Identifier{Name: t.className(x.TypeName)}}}
}

func (t *Transformer) lowerObjectCall(x *ilast.ObjectCall, col *session.Collector) targetast.Expression {
	value := t.lowerExpr(x.Value, col)
	switch x.Op {
	case ilast.ObjectFreeze:
		return value // Object.freeze is a documented no-op of this transpiler (see DESIGN.md)
	case ilast.ObjectKeys:
		return t.dictMethodOrHelper(value, "keys", "_object_keys")
	case ilast.ObjectValues:
		return t.dictMethodOrHelper(value, "values", "_object_values")
	case ilast.ObjectEntries:
		return t.dictMethodOrHelper(value, "items", "_object_entries")
	default: // ObjectCreate
		t.sess.NeedImport("_object_create")
		return &targetast.Call{Callee: &targetast.Identifier{Name: "_object_create"}, Args: []targetast.Expression{value}}
	}
}

func (t *Transformer) dictMethodOrHelper(value targetast.Expression, pyMethod, helper string) targetast.Expression {
	if !t.isBasic() {
		return &targetast.Call{Callee: &targetast.MemberAccess{Object: value, Property: pyMethod}}
	}
	t.sess.NeedImport(helper)
	return &targetast.Call{Callee: &targetast.Identifier{Name: helper}, Args: []targetast.Expression{value}}
}

func (t *Transformer) lowerArrayFrom(x *ilast.ArrayFrom, col *session.Collector) targetast.Expression {
	iterable := t.lowerExpr(x.Iterable, col)
	if x.MapFn == nil {
		if !t.isBasic() {
			return &targetast.Call{Callee: &targetast.Identifier{Name: "list"}, Args: []targetast.Expression{iterable}}
		}
		t.sess.NeedImport("_array_from")
		return &targetast.Call{Callee: &targetast.Identifier{Name: "_array_from"}, Args: []targetast.Expression{iterable}}
	}
	mapFn := t.lowerExpr(x.MapFn, col)
	t.sess.NeedImport("_array_from_mapped")
	return &targetast.Call{Callee: &targetast.Identifier{Name: "_array_from_mapped"}, Args: []targetast.Expression{iterable, mapFn}}
}
