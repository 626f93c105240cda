package targetast

import "github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"

// Dim is BASIC's local/field declaration statement, the lowering target
// for an IL VarDecl on every BASIC dialect (§3.3).
type Dim struct {
	Names []string
	Type  *ilast.Type
	Init  Expression
}

func (d *Dim) Kind() string   { return "Dim" }
func (d *Dim) statementNode() {}

// SelectCaseArm is one `Case <tests>` arm of a Select/Case block.
type SelectCaseArm struct {
	Tests []Expression // empty for the `Case Else` arm
	Body  []Statement
}

// SelectCase is BASIC's native switch, the lowering target for an IL
// Switch on the BASIC path (§4.2.4 — Python instead chains If/ElseIf).
type SelectCase struct {
	Discriminant Expression
	Arms         []SelectCaseArm
}

func (s *SelectCase) Kind() string   { return "SelectCase" }
func (s *SelectCase) statementNode() {}

// TypeField is one member of a TypeDeclaration.
type TypeField struct {
	Name string
	Type *ilast.Type
}

// TypeDeclaration is BASIC's `Type ... End Type` record, the lowering
// target for a Class when `useClasses` is false (§4.2.6): fields become
// a Type and methods become standalone functions taking `self As
// <TypeName>` as their first parameter.
type TypeDeclaration struct {
	Name   string
	Fields []TypeField
}

func (t *TypeDeclaration) Kind() string   { return "TypeDeclaration" }
func (t *TypeDeclaration) statementNode() {}

// DoLoop is BASIC's `Do [While|Until] ... Loop` / `Do ... Loop [While|
// Until]`, parameterized by TestAtTop so the same node covers both a
// top-tested While-lowering and a bottom-tested DoWhile-lowering without
// a synthetic `while True` + guarded break the way Python needs (§4.2.4).
type DoLoop struct {
	TestAtTop bool
	Negate    bool // true when Test is spelled with Until instead of While
	Test      Expression
	Body      []Statement
}

func (d *DoLoop) Kind() string   { return "DoLoop" }
func (d *DoLoop) statementNode() {}

// OnError is the BASIC `On Error Goto ...` / `On Error Resume Next`
// fallback control-flow form used instead of Try/Catch when
// `useExceptions` is false (§4.2's TargetOptions table, §4.2.4).
type OnError struct {
	ResumeNext bool
	Label      string // non-empty for `On Error Goto <Label>`
}

func (o *OnError) Kind() string   { return "OnError" }
func (o *OnError) statementNode() {}

// Label is a GoTo target line, paired with OnError.
type Label struct {
	Name string
}

func (l *Label) Kind() string   { return "Label" }
func (l *Label) statementNode() {}

// AddressOf is `AddressOf procName`, used where a dialect needs a
// function pointer in place of Python's first-class lambda value
// (§4.2.5's note that most BASIC dialects hoist a Lambda to a named
// helper).
type AddressOf struct {
	Name string
}

func (a *AddressOf) Kind() string    { return "AddressOf" }
func (a *AddressOf) expressionNode() {}

// TypeOf is `TypeOf value Is TypeName`, the BASIC lowering of an IL
// InstanceOfCheck (§4.2.5's library table).
type TypeOf struct {
	Value    Expression
	TypeName string
}

func (t *TypeOf) Kind() string    { return "TypeOf" }
func (t *TypeOf) expressionNode() {}

// CastFn enumerates BASIC's narrowing conversion intrinsics.
type CastFn string

const (
	CInt  CastFn = "CInt"
	CLng  CastFn = "CLng"
	CDbl  CastFn = "CDbl"
	CSng  CastFn = "CSng"
	CStr  CastFn = "CStr"
	CBool CastFn = "CBool"
	CByte CastFn = "CByte"
)

// Cast is BASIC's `CInt(x)`/`CLng(x)`/`CDbl(x)`/etc., the lowering
// target for an IL Cast primitive on the BASIC path (§3.3, §4.2.5).
type Cast struct {
	Fn    CastFn
	Value Expression
}

func (c *Cast) Kind() string    { return "Cast" }
func (c *Cast) expressionNode() {}

// AugOp enumerates the BASIC keyword-spelled binary operators that have
// no symbolic Python equivalent and so need their own Binary-like node
// rather than reusing targetast.Binary's bare-Op-string shape loosely
// (kept distinct purely for emitter clarity: the emitter's BASIC
// precedence table is keyed by these same symbols, so Binary with
// Op="Mod" would work identically — AugmentedBinaryExpr exists as the
// spec-named node so a reader of the tree sees the keyword-operator
// shape without cross-checking the precedence table).
type AugOp string

const (
	AugShl AugOp = "Shl"
	AugShr AugOp = "Shr"
	AugAnd AugOp = "And"
	AugOr  AugOp = "Or"
	AugXor AugOp = "Xor"
	AugMod AugOp = "Mod"
)

// AugmentedBinaryExpr is `a Shl b`, `a And b`, ... (§3.3).
type AugmentedBinaryExpr struct {
	Op          AugOp
	Left, Right Expression
}

func (a *AugmentedBinaryExpr) Kind() string    { return "AugmentedBinaryExpr" }
func (a *AugmentedBinaryExpr) expressionNode() {}
