package normalizer

import (
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// normalizeBinary lowers a Source binary expression, recognizing the
// rotate idiom of §4.1 rewrite 2 ((x<<n)|(x>>>(W-n)) and its mirror for
// RotateRight) before falling back to a plain ilast.Binary/Bitwise node
// with inferred numeric width (§4.1 rewrite 3).
func (n *Normalizer) normalizeBinary(e *sourceast.BinaryExpr) ilast.Expression {
	if rot := n.recognizeRotate(e); rot != nil {
		return rot
	}

	left := n.NormalizeExpression(e.Left)
	right := n.NormalizeExpression(e.Right)

	switch e.Op {
	case sourceast.OpBitAnd, sourceast.OpBitOr, sourceast.OpBitXor, sourceast.OpShl, sourceast.OpShr, sourceast.OpUShr:
		return n.normalizeBitwiseBinary(e.Op, left, right)
	}

	t := inferBinaryType(string(e.Op), left.ResultType(), right.ResultType())
	return &ilast.Binary{TypedExpr: ilast.TypedExpr{Type: t}, Op: string(e.Op), Left: left, Right: right}
}

func (n *Normalizer) normalizeBitwiseBinary(op sourceast.BinaryOp, left, right ilast.Expression) ilast.Expression {
	bits := ilast.W32
	if w := widerWidth(left.ResultType(), right.ResultType()); w != ilast.W0 {
		bits = w
	}
	var bop ilast.BitwiseOp
	switch op {
	case sourceast.OpBitAnd:
		bop = ilast.BitAnd
	case sourceast.OpBitOr:
		bop = ilast.BitOr
	case sourceast.OpBitXor:
		bop = ilast.BitXor
	case sourceast.OpShl:
		bop = ilast.BitLeftShift
	case sourceast.OpShr:
		bop = ilast.BitRightShift
	case sourceast.OpUShr:
		bop = ilast.BitUnsignedRightShift
	}
	return &ilast.Bitwise{TypedExpr: ilast.TypedExpr{Type: ilast.TInt(bits)}, Op: bop, Left: left, Right: right, Bits: bits}
}

func widerWidth(a, b ilast.Type) ilast.Width {
	w := a.Width
	if b.Width > w {
		w = b.Width
	}
	return w
}

// recognizeRotate matches `(x << n) | (x >>> (W - n))` (RotateLeft) and
// its `(x >>> n) | (x << (W - n))` mirror (RotateRight), the rotate idiom
// named in spec §4.1 rewrite 2. Both shift amounts must reference the
// same rotated value and sum to a literal matching the inferred bit
// width; anything else falls through to a plain Binary/Bitwise lowering.
func (n *Normalizer) recognizeRotate(e *sourceast.BinaryExpr) ilast.Expression {
	if e.Op != sourceast.OpBitOr {
		return nil
	}
	lShift, lOK := e.Left.(*sourceast.BinaryExpr)
	rShift, rOK := e.Right.(*sourceast.BinaryExpr)
	if !lOK || !rOK {
		return nil
	}
	if lShift.Op == sourceast.OpShl && rShift.Op == sourceast.OpUShr {
		if amt, value, bits, ok := matchRotatePair(lShift, rShift); ok {
			return &ilast.Rotate{TypedExpr: ilast.TypedExpr{Type: ilast.TInt(bits)}, Dir: ilast.RotLeft, Value: n.NormalizeExpression(value), Amount: n.NormalizeExpression(amt), Bits: bits}
		}
	}
	if lShift.Op == sourceast.OpUShr && rShift.Op == sourceast.OpShl {
		if amt, value, bits, ok := matchRotatePair(lShift, rShift); ok {
			return &ilast.Rotate{TypedExpr: ilast.TypedExpr{Type: ilast.TInt(bits)}, Dir: ilast.RotRight, Value: n.NormalizeExpression(value), Amount: n.NormalizeExpression(amt), Bits: bits}
		}
	}
	return nil
}

// matchRotatePair checks that left and right shift the same value and
// that their shift-amount literals sum to a fixed bit width, returning
// the primary (left-side) shift amount expression, the rotated value
// expression, and the detected width.
func matchRotatePair(left, right *sourceast.BinaryExpr) (amt sourceast.Expression, value sourceast.Expression, bits ilast.Width, ok bool) {
	leftVal, leftOK := sameIdentifier(left.Left, right.Left)
	if !leftOK {
		return nil, nil, 0, false
	}
	n1, ok1 := literalInt(left.Right)
	n2, ok2 := literalInt(right.Right)
	if !ok1 || !ok2 {
		return nil, nil, 0, false
	}
	sum := n1 + n2
	switch sum {
	case 8:
		bits = ilast.W8
	case 16:
		bits = ilast.W16
	case 32:
		bits = ilast.W32
	case 64:
		bits = ilast.W64
	default:
		return nil, nil, 0, false
	}
	return left.Right, leftVal, bits, true
}

func sameIdentifier(a, b sourceast.Expression) (sourceast.Expression, bool) {
	ai, aok := a.(*sourceast.Identifier)
	bi, bok := b.(*sourceast.Identifier)
	if aok && bok && ai.Name == bi.Name {
		return a, true
	}
	return nil, false
}

func literalInt(e sourceast.Expression) (int64, bool) {
	if lit, ok := e.(*sourceast.Literal); ok && lit.LitKind == sourceast.LitInt {
		return lit.Int, true
	}
	return 0, false
}
