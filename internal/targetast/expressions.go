package targetast

// LiteralKind mirrors ilast.LiteralKind after transformation.
type LiteralKind int

const (
	LInt LiteralKind = iota
	LFloat
	LBool
	LString
	LBytes
	LNull
	LRegex
	LBigInt
)

// Literal is a rendered constant; Raw carries a dialect-ready source
// spelling for the BASIC path's numeric suffixes (`&H`, `L`, `#`) when
// the emitter's default rendering is not literal-kind-sensitive enough —
// empty unless the transformer chose to pre-render it.
type Literal struct {
	LitKind LiteralKind
	Int     int64
	Float   float64
	Bool    bool
	Str     string
	Bytes   []byte
	Raw     string
}

func (l *Literal) Kind() string    { return "Literal" }
func (l *Literal) expressionNode() {}

// Identifier is a name reference, already cased and escaped by
// internal/naming (§4.2.1).
type Identifier struct {
	Name string
}

func (i *Identifier) Kind() string    { return "Identifier" }
func (i *Identifier) expressionNode() {}

// Binary is a two-operand expression using the target's own operator
// spelling (already lowered from any IL bitwise/rotate primitive that
// the dialect cannot spell directly).
type Binary struct {
	Op          string
	Left, Right Expression
}

func (b *Binary) Kind() string    { return "Binary" }
func (b *Binary) expressionNode() {}

// Unary is a single-operand expression.
type Unary struct {
	Op      string
	Operand Expression
}

func (u *Unary) Kind() string    { return "Unary" }
func (u *Unary) expressionNode() {}

// Conditional is `a if test else b` (Python) or `IIf(test, a, b)` (BASIC).
type Conditional struct {
	Test, Then, Else Expression
}

func (c *Conditional) Kind() string    { return "Conditional" }
func (c *Conditional) expressionNode() {}

// Call is a function/method invocation, already resolved to whatever
// name the library mapping table (§4.2.5) chose.
type Call struct {
	Callee Expression
	Args   []Expression
}

func (c *Call) Kind() string    { return "Call" }
func (c *Call) expressionNode() {}

// New is a constructor invocation (`ClassName(args)` in Python, `New
// ClassName(args)` in BASIC).
type New struct {
	ClassName string
	Args      []Expression
}

func (n *New) Kind() string    { return "New" }
func (n *New) expressionNode() {}

// MemberAccess is dotted property access.
type MemberAccess struct {
	Object   Expression
	Property string
}

func (m *MemberAccess) Kind() string    { return "MemberAccess" }
func (m *MemberAccess) expressionNode() {}

// Subscript is indexed access.
type Subscript struct {
	Object Expression
	Index  Expression
}

func (s *Subscript) Kind() string    { return "Subscript" }
func (s *Subscript) expressionNode() {}

// Slice is `a[start:end]` (Python) or a dialect library call (BASIC).
type Slice struct {
	Object     Expression
	Start, End Expression
}

func (s *Slice) Kind() string    { return "Slice" }
func (s *Slice) expressionNode() {}

// Lambda is an anonymous function value (Python `lambda`; BASIC dialects
// have no analog and the transformer replaces a Lambda there with an
// UnknownExpr placeholder, so Lambda survives only on the Python path).
type Lambda struct {
	Params   []Parameter
	ExprBody Expression
	Body     []Statement
}

func (l *Lambda) Kind() string    { return "Lambda" }
func (l *Lambda) expressionNode() {}

// ListLit is an array/list literal.
type ListLit struct {
	Elements []Expression
}

func (l *ListLit) Kind() string    { return "ListLit" }
func (l *ListLit) expressionNode() {}

// DictEntry is one key/value pair.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// DictLit is a mapping literal (Python `dict`; BASIC dialects lower it
// through the framework stub registry's dictionary stub, §6.3).
type DictLit struct {
	Entries []DictEntry
}

func (d *DictLit) Kind() string    { return "DictLit" }
func (d *DictLit) expressionNode() {}
