// Package precedence implements the single operator-precedence table and
// needs-parens predicate spec §4.3.1 and §9 insist on keeping
// centralized rather than scattered through the emitter.
package precedence

// Assoc is an operator's associativity.
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// Side identifies which operand of a binary expression is being asked
// about.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

// Op is one entry of a dialect's precedence table.
type Op struct {
	Symbol string
	Level  int
	Assoc  Assoc
}

// PythonTable is the precedence table of spec §4.3.1, highest level
// binding tightest.
var PythonTable = map[string]Op{
	"**":  {"**", 14, RightAssoc},
	"u~":  {"u~", 13, LeftAssoc},
	"u-":  {"u-", 13, LeftAssoc},
	"u+":  {"u+", 13, LeftAssoc},
	"*":   {"*", 12, LeftAssoc},
	"/":   {"/", 12, LeftAssoc},
	"//":  {"//", 12, LeftAssoc},
	"%":   {"%", 12, LeftAssoc},
	"@":   {"@", 12, LeftAssoc},
	"+":   {"+", 11, LeftAssoc},
	"-":   {"-", 11, LeftAssoc},
	"<<":  {"<<", 10, LeftAssoc},
	">>":  {">>", 10, LeftAssoc},
	"&":   {"&", 9, LeftAssoc},
	"^":   {"^", 8, LeftAssoc},
	"|":   {"|", 7, LeftAssoc},
	"==":  {"==", 6, LeftAssoc},
	"!=":  {"!=", 6, LeftAssoc},
	"<":   {"<", 6, LeftAssoc},
	"<=":  {"<=", 6, LeftAssoc},
	">":   {">", 6, LeftAssoc},
	">=":  {">=", 6, LeftAssoc},
	"in":  {"in", 6, LeftAssoc},
	"is":  {"is", 6, LeftAssoc},
	"not": {"not", 5, LeftAssoc},
	"and": {"and", 4, LeftAssoc},
	"or":  {"or", 3, LeftAssoc},
	"ifelse": {"ifelse", 2, RightAssoc},
	"lambda": {"lambda", 1, LeftAssoc},
}

// BasicTable is the analogous BASIC precedence table; it shares the
// broad shape (arithmetic binds tighter than comparison, which binds
// tighter than boolean logic) but uses BASIC's keyword operator
// spellings for bitwise/logical operators and string concatenation.
var BasicTable = map[string]Op{
	"^":    {"^", 12, RightAssoc},
	"u-":   {"u-", 11, LeftAssoc},
	"*":    {"*", 10, LeftAssoc},
	"/":    {"/", 10, LeftAssoc},
	"\\":   {"\\", 10, LeftAssoc}, // integer division
	"Mod":  {"Mod", 10, LeftAssoc},
	"+":    {"+", 9, LeftAssoc},
	"-":    {"-", 9, LeftAssoc},
	"&":    {"&", 8, LeftAssoc}, // string concat
	"Shl":  {"Shl", 7, LeftAssoc},
	"Shr":  {"Shr", 7, LeftAssoc},
	"=":    {"=", 6, LeftAssoc},
	"<>":   {"<>", 6, LeftAssoc},
	"<":    {"<", 6, LeftAssoc},
	"<=":   {"<=", 6, LeftAssoc},
	">":    {">", 6, LeftAssoc},
	">=":   {">=", 6, LeftAssoc},
	"Not":  {"Not", 5, LeftAssoc},
	"And":  {"And", 4, LeftAssoc},
	"Or":   {"Or", 3, LeftAssoc},
	"Xor":  {"Xor", 3, LeftAssoc},
}

// Lookup resolves a table entry, returning ok=false for an operator the
// table does not know (treated as maximal precedence — never
// parenthesized — since this can only happen for a non-binary construct
// like a call or member access mistakenly passed in).
func Lookup(table map[string]Op, symbol string) (Op, bool) {
	op, ok := table[symbol]
	return op, ok
}

// NeedsParens implements spec §4.3.1's parenthesization rule: for a
// binary `A op B` with parent precedence P_op, decide whether the child
// (whose own top-level operator is childOp, or "" if the child is not a
// binary/unary expression at all) needs parentheses on the given side.
func NeedsParens(table map[string]Op, parentOp, childOp string, side Side) bool {
	if childOp == "" {
		// Non-binary children (literals, identifiers, calls, member
		// access, subscript) never need added parens (§4.3.1).
		return false
	}
	parent, pok := Lookup(table, parentOp)
	child, cok := Lookup(table, childOp)
	if !pok || !cok {
		return false
	}

	if side == LeftSide {
		if child.Level < parent.Level {
			return true
		}
		// Equal precedence with a different operator is ambiguous to a
		// reader even when mathematically safe (e.g. `a - b + c` parses
		// fine without parens, but `(a - b) + c` vs `a - (b + c)` at the
		// same level with different symbols should stay explicit).
		return child.Level == parent.Level && child.Symbol != parent.Symbol
	}

	// RightSide: right-associative operators only need parens when the
	// child genuinely binds looser; left-associative operators also need
	// parens at equal precedence to preserve left-to-right evaluation
	// order (`a - (b - c)` must not print as `a - b - c`).
	if parent.Assoc == RightAssoc {
		return child.Level < parent.Level
	}
	return child.Level <= parent.Level
}
