package precedence

import "testing"

func TestNeedsParensLeftAssocRightChild(t *testing.T) {
	// a - (b - c): right child of `-` is itself `-`; must parenthesize to
	// preserve left-to-right evaluation.
	if !NeedsParens(PythonTable, "-", "-", RightSide) {
		t.Error("expected right child of left-assoc `-` at equal precedence to need parens")
	}
}

func TestNeedsParensLeftAssocLeftChild(t *testing.T) {
	// (a - b) - c: left child of `-` is `-`; no parens needed, it is the
	// natural left-to-right grouping.
	if NeedsParens(PythonTable, "-", "-", LeftSide) {
		t.Error("expected left child of left-assoc `-` at equal precedence to not need parens")
	}
}

func TestNeedsParensRightAssoc(t *testing.T) {
	// a ** (b ** c): right child of right-assoc `**` at equal precedence
	// is the natural grouping, no parens needed.
	if NeedsParens(PythonTable, "**", "**", RightSide) {
		t.Error("expected right child of right-assoc `**` at equal precedence to not need parens")
	}
}

func TestNeedsParensLowerPrecedenceChild(t *testing.T) {
	// (a + b) * c: `+` inside `*` always needs parens regardless of side.
	if !NeedsParens(PythonTable, "*", "+", LeftSide) {
		t.Error("expected lower-precedence left child to need parens")
	}
	if !NeedsParens(PythonTable, "*", "+", RightSide) {
		t.Error("expected lower-precedence right child to need parens")
	}
}

func TestNeedsParensHigherPrecedenceChild(t *testing.T) {
	// a + b * c: `*` inside `+` never needs parens.
	if NeedsParens(PythonTable, "+", "*", LeftSide) {
		t.Error("expected higher-precedence child to not need parens")
	}
}

func TestNeedsParensNonBinaryChild(t *testing.T) {
	if NeedsParens(PythonTable, "+", "", LeftSide) {
		t.Error("expected non-binary child (empty childOp) to never need parens")
	}
}
