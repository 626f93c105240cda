// This file implements spec §4.2.2's numeric/bitwise width discipline:
// translating IL comparison/arithmetic operators to each dialect's own
// spelling, and rendering the width-tagged bitwise primitives
// (Rotate/PackBytes/UnpackBytes/Cast/Bitwise) the normalizer produces.
package transform

import (
	"fmt"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

func (t *Transformer) lowerLiteral(l *ilast.Literal) *targetast.Literal {
	switch l.LitKind {
	case ilast.LInt:
		return &targetast.Literal{LitKind: targetast.LInt, Int: l.Int}
	case ilast.LFloat:
		return &targetast.Literal{LitKind: targetast.LFloat, Float: l.Float}
	case ilast.LBool:
		return &targetast.Literal{LitKind: targetast.LBool, Bool: l.Bool}
	case ilast.LString:
		return &targetast.Literal{LitKind: targetast.LString, Str: l.Str}
	case ilast.LBytes:
		return &targetast.Literal{LitKind: targetast.LBytes, Bytes: l.Bytes}
	case ilast.LNull:
		return &targetast.Literal{LitKind: targetast.LNull}
	case ilast.LRegex:
		return &targetast.Literal{LitKind: targetast.LRegex, Str: l.Regex}
	case ilast.LBigInt:
		return &targetast.Literal{LitKind: targetast.LBigInt, Str: l.BigInt}
	default:
		return &targetast.Literal{LitKind: targetast.LNull}
	}
}

func intLit(v int64) *targetast.Literal { return &targetast.Literal{LitKind: targetast.LInt, Int: v} }

// pythonBinaryOp and basicBinaryOp translate a comparison/logical/
// arithmetic operator spelling between dialects; bitwise operators never
// reach here since the normalizer already lowered them to Bitwise nodes.
func pythonBinaryOp(op string) string {
	switch op {
	case "&&":
		return "and"
	case "||":
		return "or"
	case "===":
		return "=="
	case "!==":
		return "!="
	default:
		return op
	}
}

func basicBinaryOp(op string) string {
	switch op {
	case "&&":
		return "And"
	case "||":
		return "Or"
	case "==", "===":
		return "="
	case "!=", "!==":
		return "<>"
	case "%":
		return "Mod"
	default:
		return op
	}
}

func (t *Transformer) lowerBinary(x *ilast.Binary, col *session.Collector) targetast.Expression {
	left := t.lowerExpr(x.Left, col)
	right := t.lowerExpr(x.Right, col)
	op := x.Op
	if t.isBasic() {
		op = basicBinaryOp(op)
	} else {
		op = pythonBinaryOp(op)
	}
	return &targetast.Binary{Op: op, Left: left, Right: right}
}

// widthMaskValue is the bitmask literal for a fixed-width unsigned wrap
// (spec §4.2.2's masking rule). W0/W64 need no mask: W0 means the IL
// never pinned a width (left as a native-width op) and Go's own int64
// arithmetic already matches a 64-bit wrap.
func widthMaskValue(w ilast.Width) (int64, bool) {
	switch w {
	case ilast.W8:
		return 0xFF, true
	case ilast.W16:
		return 0xFFFF, true
	case ilast.W32:
		return 0xFFFFFFFF, true
	default:
		return 0, false
	}
}

func (t *Transformer) applyMask(e targetast.Expression, w ilast.Width) targetast.Expression {
	mask, ok := widthMaskValue(w)
	if !ok {
		return e
	}
	if t.isBasic() {
		return &targetast.AugmentedBinaryExpr{Op: targetast.AugAnd, Left: e, Right: &targetast.Literal{LitKind: targetast.LInt, Raw: fmt.Sprintf("&H%X", mask)}}
	}
	return &targetast.Binary{Op: "&", Left: e, Right: intLit(mask)}
}

// basicHasNativeShift reports whether the dialect is one of the BASIC
// family members spec §4.2.2 says keep the Source's own `<<`/`>>`
// spelling (VB.NET, FreeBASIC); the rest receive the
// keyword-spelled Shl/Shr binary forms.
func (t *Transformer) basicHasNativeShift() bool {
	switch t.opts.Dialect {
	case session.VBNet, session.FreeBasic:
		return true
	default:
		return false
	}
}

func (t *Transformer) lowerShift(left, right targetast.Expression, isRight bool) targetast.Expression {
	if !t.isBasic() {
		op := "<<"
		if isRight {
			op = ">>"
		}
		return &targetast.Binary{Op: op, Left: left, Right: right}
	}
	if t.basicHasNativeShift() {
		op := "<<"
		if isRight {
			op = ">>"
		}
		return &targetast.Binary{Op: op, Left: left, Right: right}
	}
	op := targetast.AugShl
	if isRight {
		op = targetast.AugShr
	}
	return &targetast.AugmentedBinaryExpr{Op: op, Left: left, Right: right}
}

// lowerBitwise renders an ilast.Bitwise primitive (spec §3.2/§4.2.2). The
// unsigned-right-shift elision golden scenario (`x >>> 0` with no further
// use) collapses to a bare reference to the operand, with no mask and no
// shift-by-zero.
func (t *Transformer) lowerBitwise(x *ilast.Bitwise, col *session.Collector) targetast.Expression {
	left := t.lowerExpr(x.Left, col)
	switch x.Op {
	case ilast.BitNot:
		inner := t.bitwiseUnaryNot(left)
		return t.applyMask(inner, x.Bits)
	case ilast.BitAnd:
		right := t.lowerExpr(x.Right, col)
		return t.symmetricBitwise("&", targetast.AugAnd, left, right)
	case ilast.BitOr:
		right := t.lowerExpr(x.Right, col)
		return t.symmetricBitwise("|", targetast.AugOr, left, right)
	case ilast.BitXor:
		right := t.lowerExpr(x.Right, col)
		return t.symmetricBitwise("^", targetast.AugXor, left, right)
	case ilast.BitLeftShift:
		right := t.lowerExpr(x.Right, col)
		return t.applyMask(t.lowerShift(left, right, false), x.Bits)
	case ilast.BitRightShift:
		right := t.lowerExpr(x.Right, col)
		return t.lowerShift(left, right, true)
	case ilast.BitUnsignedRightShift:
		if isZeroIntLiteral(x.Right) {
			// `x >>> 0` is the Source's own "coerce to uint32 but I already
			// know it fits" idiom; spec §4.2.2/§8.2 S5 calls for it to
			// collapse to a bare reference, not a redundant mask.
			return left
		}
		right := t.lowerExpr(x.Right, col)
		masked := t.applyMask(left, x.Bits)
		return t.lowerShift(masked, right, true)
	default:
		return left
	}
}

// bitwiseUnaryNot implements §4.2.2's `~x` rule: Python's `~` is not
// width-bounded, so the operand is coerced with `int(...)` before
// negating, leaving applyMask to add the trailing width mask and
// produce the full `((~int(x)) & 0xFFFFFFFF)` form.
func (t *Transformer) bitwiseUnaryNot(operand targetast.Expression) targetast.Expression {
	if t.isBasic() {
		return &targetast.Unary{Op: "Not", Operand: operand}
	}
	coerced := &targetast.Call{Callee: &targetast.Identifier{Name: "int"}, Args: []targetast.Expression{operand}}
	return &targetast.Unary{Op: "~", Operand: coerced}
}

func (t *Transformer) symmetricBitwise(pySym string, basicOp targetast.AugOp, left, right targetast.Expression) targetast.Expression {
	if t.isBasic() {
		return &targetast.AugmentedBinaryExpr{Op: basicOp, Left: left, Right: right}
	}
	return &targetast.Binary{Op: pySym, Left: left, Right: right}
}

func isZeroIntLiteral(e ilast.Expression) bool {
	lit, ok := e.(*ilast.Literal)
	return ok && lit.LitKind == ilast.LInt && lit.Int == 0
}

// lowerRotate renders RotateLeft/RotateRight as a prelude helper call
// (`_rotl32(value, amount)`), the approach spec §4.2.5 prefers over
// inlining the shift-and-mask expansion at every call site.
func (t *Transformer) lowerRotate(x *ilast.Rotate, col *session.Collector) targetast.Expression {
	name := "_rotl"
	if x.Dir == ilast.RotRight {
		name = "_rotr"
	}
	name = fmt.Sprintf("%s%d", name, int(x.Bits))
	t.sess.NeedImport(name)
	value := t.lowerExpr(x.Value, col)
	amount := t.lowerExpr(x.Amount, col)
	return &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: []targetast.Expression{value, amount}}
}

func (t *Transformer) lowerPackBytes(x *ilast.PackBytes, col *session.Collector) targetast.Expression {
	name := fmt.Sprintf("_pack_bytes_%d_%s", int(x.Bits), endianSuffix(x.Endian))
	t.sess.NeedImport(name)
	return &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: []targetast.Expression{&targetast.ListLit{Elements: t.lowerExprList(x.Values, col)}}}
}

func (t *Transformer) lowerUnpackBytes(x *ilast.UnpackBytes, col *session.Collector) targetast.Expression {
	name := fmt.Sprintf("_unpack_bytes_%d_%s", int(x.Bits), endianSuffix(x.Endian))
	t.sess.NeedImport(name)
	masked := t.applyMask(t.lowerExpr(x.Value, col), x.Bits)
	return &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: []targetast.Expression{masked}}
}

func endianSuffix(e ilast.Endianness) string {
	if e == ilast.LittleEndian {
		return "le"
	}
	return "be"
}

func (t *Transformer) lowerCast(x *ilast.Cast, col *session.Collector) targetast.Expression {
	value := t.lowerExpr(x.Value, col)
	if t.isBasic() {
		return &targetast.Cast{Fn: basicCastFn(x.Target), Value: value}
	}
	name := pythonCastFn(x.Target)
	if name == "" {
		return value
	}
	return &targetast.Call{Callee: &targetast.Identifier{Name: name}, Args: []targetast.Expression{value}}
}

func pythonCastFn(ty ilast.Type) string {
	switch ty.Kind {
	case ilast.IntType, ilast.BigIntType:
		return "int"
	case ilast.FloatType:
		return "float"
	case ilast.StringType:
		return "str"
	case ilast.BoolType:
		return "bool"
	default:
		return ""
	}
}

func basicCastFn(ty ilast.Type) targetast.CastFn {
	switch ty.Kind {
	case ilast.IntType:
		if ty.Width == ilast.W64 {
			return targetast.CLng
		}
		return targetast.CInt
	case ilast.FloatType:
		return targetast.CDbl
	case ilast.StringType:
		return targetast.CStr
	case ilast.BoolType:
		return targetast.CBool
	case ilast.BigIntType:
		return targetast.CLng
	default:
		return targetast.CLng
	}
}
