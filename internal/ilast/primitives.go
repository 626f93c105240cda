package ilast

// This file declares the "lowered IL primitives" the normalizer
// introduces so every target transformer can share one semantic
// understanding of a host-library idiom instead of re-deriving it from a
// generic Call node (spec §3.2, §4.1 rewrite 2). Each primitive is a
// distinct Expression (or, for the array/string mutators that only make
// sense as statements against a variable, also usable wrapped in an
// ExpressionStmt/Assign by the normalizer — the primitive node itself is
// always an Expression, consistent with the Source's own expression-
// positioned method-call syntax).

// Endianness selects byte order for Pack/UnpackBytes.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
)

// RotateDir selects left or right for the rotate primitives.
type RotateDir int

const (
	RotLeft RotateDir = iota
	RotRight
)

// Rotate covers RotateLeft/RotateRight(value, amount, bits).
type Rotate struct {
	TypedExpr
	Dir            RotateDir
	Value, Amount  Expression
	Bits           Width
}

func (r *Rotate) Kind() string    { return map[RotateDir]string{RotLeft: "RotateLeft", RotRight: "RotateRight"}[r.Dir] }
func (r *Rotate) expressionNode() {}

// PackBytes covers PackBytes(values, bits, endianness): combine a byte
// array into a single integer.
type PackBytes struct {
	TypedExpr
	Values []Expression
	Bits   Width
	Endian Endianness
}

func (p *PackBytes) Kind() string    { return "PackBytes" }
func (p *PackBytes) expressionNode() {}

// UnpackBytes covers UnpackBytes(value, bits, endianness): split an
// integer into a byte array, masking to the declared width first.
type UnpackBytes struct {
	TypedExpr
	Value  Expression
	Bits   Width
	Endian Endianness
}

func (u *UnpackBytes) Kind() string    { return "UnpackBytes" }
func (u *UnpackBytes) expressionNode() {}

// Cast covers Cast(value, targetType).
type Cast struct {
	TypedExpr
	Value  Expression
	Target Type
}

func (c *Cast) Kind() string    { return "Cast" }
func (c *Cast) expressionNode() {}

// ArrayOp enumerates the closed set of array-mutator/query primitives
// named in spec §3.2. Each is represented by the single ArrayCall node
// below rather than one Go type per operation, because every member
// shares the same (Array, optional-callback, optional-args) shape and a
// shared representation keeps the Target Transformer's library table
// (§4.2.5) a flat switch instead of forty near-identical struct types.
type ArrayOp string

const (
	OpArrayLength   ArrayOp = "Length"
	OpArrayAppend   ArrayOp = "Append"
	OpArrayPop      ArrayOp = "Pop"
	OpArrayShift    ArrayOp = "Shift"
	OpArrayUnshift  ArrayOp = "Unshift"
	OpArraySlice    ArrayOp = "Slice"
	OpArrayFill     ArrayOp = "Fill"
	OpArrayConcat   ArrayOp = "Concat"
	OpArrayJoin     ArrayOp = "Join"
	OpArrayReverse  ArrayOp = "Reverse"
	OpArrayIndexOf  ArrayOp = "IndexOf"
	OpArrayIncludes ArrayOp = "Includes"
	OpArraySort     ArrayOp = "Sort"
	OpArraySplice   ArrayOp = "Splice"
	OpArrayClear    ArrayOp = "Clear"
	OpArrayMap      ArrayOp = "Map"
	OpArrayFilter   ArrayOp = "Filter"
	OpArrayReduce   ArrayOp = "Reduce"
	OpArrayForEach  ArrayOp = "ForEach"
	OpArraySome     ArrayOp = "Some"
	OpArrayEvery    ArrayOp = "Every"
	OpArrayFind     ArrayOp = "Find"
	OpArrayFindIndex ArrayOp = "FindIndex"
)

// ArrayCall is `ArrayLength`, `ArrayMap`, ... from spec §3.2, named
// uniformly as "Array"+Op by Kind().
type ArrayCall struct {
	TypedExpr
	Op       ArrayOp
	Receiver Expression
	Args     []Expression   // plain arguments (e.g. Fill's value, Concat's other arrays)
	Callback Expression     // non-nil for Map/Filter/Reduce/ForEach/Some/Every/Find/FindIndex (a Lambda)
	Initial  Expression     // non-nil only for Reduce's initial accumulator
}

func (a *ArrayCall) Kind() string    { return "Array" + string(a.Op) }
func (a *ArrayCall) expressionNode() {}

// StringOp enumerates the closed set of string primitives named in spec
// §3.2, represented uniformly for the same reason as ArrayOp above.
type StringOp string

const (
	OpStringReplace    StringOp = "Replace"
	OpStringRepeat     StringOp = "Repeat"
	OpStringIndexOf    StringOp = "IndexOf"
	OpStringSplit      StringOp = "Split"
	OpStringSubstring  StringOp = "Substring"
	OpStringCharAt     StringOp = "CharAt"
	OpStringCharCodeAt StringOp = "CharCodeAt"
	OpStringToUpper    StringOp = "ToUpper"
	OpStringToLower    StringOp = "ToLower"
	OpStringTrim       StringOp = "Trim"
	OpStringStartsWith StringOp = "StartsWith"
	OpStringEndsWith   StringOp = "EndsWith"
	OpStringIncludes   StringOp = "Includes"
	OpStringConcat     StringOp = "Concat"
)

// StringCall is `StringReplace`, `StringSplit`, ... from spec §3.2.
type StringCall struct {
	TypedExpr
	Op       StringOp
	Receiver Expression
	Args     []Expression
}

func (s *StringCall) Kind() string    { return "String" + string(s.Op) }
func (s *StringCall) expressionNode() {}

// MathFn enumerates the closed Math.* function set of spec §3.2.
type MathFn string

const (
	MathSin   MathFn = "Sin"
	MathCos   MathFn = "Cos"
	MathTan   MathFn = "Tan"
	MathLog   MathFn = "Log"
	MathLog2  MathFn = "Log2"
	MathPow   MathFn = "Pow"
	MathFloor MathFn = "Floor"
	MathCeil  MathFn = "Ceil"
	MathAbs   MathFn = "Abs"
	MathSqrt  MathFn = "Sqrt"
	MathMin   MathFn = "Min"
	MathMax   MathFn = "Max"
	MathSign  MathFn = "Sign"
	MathTrunc MathFn = "Trunc"
	MathRandom MathFn = "Random"
	MathImul  MathFn = "Imul"
	MathClz32 MathFn = "Clz32"
)

// MathCall is `Math{Sin,Cos,...}` from spec §3.2.
type MathCall struct {
	TypedExpr
	Fn   MathFn
	Args []Expression
}

func (m *MathCall) Kind() string    { return "Math" + string(m.Fn) }
func (m *MathCall) expressionNode() {}

// MathConstant is a named constant from the Math library (PI, E, ...).
type MathConstant struct {
	TypedExpr
	Name string
}

func (m *MathConstant) Kind() string    { return "MathConstant" }
func (m *MathConstant) expressionNode() {}

// NumberConstant is a named constant from the Number library
// (MAX_SAFE_INTEGER, EPSILON, ...).
type NumberConstant struct {
	TypedExpr
	Name string
}

func (n *NumberConstant) Kind() string    { return "NumberConstant" }
func (n *NumberConstant) expressionNode() {}

// HexDecode / HexEncode convert between a hex string and a byte array.
type HexDecode struct {
	TypedExpr
	Value Expression
}

func (h *HexDecode) Kind() string    { return "HexDecode" }
func (h *HexDecode) expressionNode() {}

type HexEncode struct {
	TypedExpr
	Value Expression
}

func (h *HexEncode) Kind() string    { return "HexEncode" }
func (h *HexEncode) expressionNode() {}

// StringToBytes / BytesToString convert between a string and a byte
// array using the Source's implicit UTF-8/Latin-1 assumption.
type StringToBytes struct {
	TypedExpr
	Value Expression
}

func (s *StringToBytes) Kind() string    { return "StringToBytes" }
func (s *StringToBytes) expressionNode() {}

type BytesToString struct {
	TypedExpr
	Value Expression
}

func (b *BytesToString) Kind() string    { return "BytesToString" }
func (b *BytesToString) expressionNode() {}

// BitwiseOp enumerates the closed bitwise-operator primitive set. Plain
// Binary nodes already cover `&`, `|`, `^`, `<<`, `>>` when both operands
// are already known-numeric; these dedicated nodes exist for the cases
// spec §3.2 calls out that need explicit width handling beyond a plain
// Binary (namely `~`, and unsigned right shift which the Source spells
// `>>>` and has no direct analog, §4.2.2).
type BitwiseOp string

const (
	BitAnd        BitwiseOp = "And"
	BitOr         BitwiseOp = "Or"
	BitXor        BitwiseOp = "Xor"
	BitNot        BitwiseOp = "Not"
	BitLeftShift  BitwiseOp = "LeftShift"
	BitRightShift BitwiseOp = "RightShift"
	BitUnsignedRightShift BitwiseOp = "UnsignedRightShift"
)

// Bitwise is `BitwiseAnd`, ..., `UnsignedRightShift` from spec §3.2.
type Bitwise struct {
	TypedExpr
	Op          BitwiseOp
	Left, Right Expression // Right is nil for the unary `Not`
	Bits        Width
}

func (b *Bitwise) Kind() string    { return "Bitwise" + string(b.Op) }
func (b *Bitwise) expressionNode() {}

// ParentConstructorCall / ParentMethodCall / ThisMethodCall /
// ThisPropertyAccess are OOP idioms the normalizer distinguishes from
// generic Call/MemberAccess so the transformer never has to re-derive
// "this is a super call" from a plain MemberAccess chain.
type ParentConstructorCall struct {
	Args []Expression
}

func (p *ParentConstructorCall) Kind() string   { return "ParentConstructorCall" }
func (p *ParentConstructorCall) statementNode() {}

type ParentMethodCall struct {
	TypedExpr
	Method string
	Args   []Expression
}

func (p *ParentMethodCall) Kind() string    { return "ParentMethodCall" }
func (p *ParentMethodCall) expressionNode() {}

type ThisMethodCall struct {
	TypedExpr
	Method string
	Args   []Expression
}

func (t *ThisMethodCall) Kind() string    { return "ThisMethodCall" }
func (t *ThisMethodCall) expressionNode() {}

type ThisPropertyAccess struct {
	TypedExpr
	Property string
}

func (t *ThisPropertyAccess) Kind() string    { return "ThisPropertyAccess" }
func (t *ThisPropertyAccess) expressionNode() {}

// ArrayCreation is `new Array(size?)`.
type ArrayCreation struct {
	TypedExpr
	Size Expression // nil for an empty array literal equivalent
}

func (a *ArrayCreation) Kind() string    { return "ArrayCreation" }
func (a *ArrayCreation) expressionNode() {}

// TypedArrayElem enumerates the Source's TypedExpr-array element kinds.
type TypedArrayElem string

const (
	ElemUint8  TypedArrayElem = "Uint8"
	ElemUint16 TypedArrayElem = "Uint16"
	ElemUint32 TypedArrayElem = "Uint32"
	ElemInt8   TypedArrayElem = "Int8"
	ElemInt16  TypedArrayElem = "Int16"
	ElemInt32  TypedArrayElem = "Int32"
	ElemFloat32 TypedArrayElem = "Float32"
	ElemFloat64 TypedArrayElem = "Float64"
)

// TypedArrayCreation is `new Uint32Array(sizeOrSource)`; the normalizer
// resolves the array-vs-size ambiguity using the heuristic of §4.2.5 and
// records its own decision so the transformer does not repeat the
// analysis (SizeArg is set XOR SourceArg is set).
type TypedArrayCreation struct {
	TypedExpr
	Elem      TypedArrayElem
	SizeArg   Expression
	SourceArg Expression
}

func (t *TypedArrayCreation) Kind() string    { return "TypedArrayCreation" }
func (t *TypedArrayCreation) expressionNode() {}

// BufferCreation is `Buffer.alloc(size)` / `new ArrayBuffer(size)`.
type BufferCreation struct {
	TypedExpr
	Size Expression
}

func (b *BufferCreation) Kind() string    { return "BufferCreation" }
func (b *BufferCreation) expressionNode() {}

// DataViewCreation is `new DataView(buffer)`.
type DataViewCreation struct {
	TypedExpr
	Buffer Expression
}

func (d *DataViewCreation) Kind() string    { return "DataViewCreation" }
func (d *DataViewCreation) expressionNode() {}

// MapEntry / MapCreation / SetCreation model `new Map(entries?)` and
// `new Set(values?)`.
type MapEntry struct {
	Key, Value Expression
}

type MapCreation struct {
	TypedExpr
	Entries []MapEntry // nil for an empty map
}

func (m *MapCreation) Kind() string    { return "MapCreation" }
func (m *MapCreation) expressionNode() {}

type SetCreation struct {
	TypedExpr
	Values []Expression // nil for an empty set
}

func (s *SetCreation) Kind() string    { return "SetCreation" }
func (s *SetCreation) expressionNode() {}

// InstanceOfCheck is `value instanceof Type`.
type InstanceOfCheck struct {
	TypedExpr
	Value    Expression
	TypeName string
}

func (i *InstanceOfCheck) Kind() string    { return "InstanceOfCheck" }
func (i *InstanceOfCheck) expressionNode() {}

// IsArrayCheck is `Array.isArray(value)`.
type IsArrayCheck struct {
	TypedExpr
	Value Expression
}

func (i *IsArrayCheck) Kind() string    { return "IsArrayCheck" }
func (i *IsArrayCheck) expressionNode() {}

// IsIntegerCheck is `Number.isInteger(value)`.
type IsIntegerCheck struct {
	TypedExpr
	Value Expression
}

func (i *IsIntegerCheck) Kind() string    { return "IsIntegerCheck" }
func (i *IsIntegerCheck) expressionNode() {}

// TypeOfExpression is `typeof value`.
type TypeOfExpression struct {
	TypedExpr
	Value Expression
}

func (t *TypeOfExpression) Kind() string    { return "TypeOfExpression" }
func (t *TypeOfExpression) expressionNode() {}

// ErrorCreation is `new Error(message)` / `new TypeError(message)` / etc.
type ErrorCreation struct {
	TypedExpr
	ErrorKind string // "Error", "TypeError", "RangeError", ...
	Message   Expression
}

func (e *ErrorCreation) Kind() string    { return "ErrorCreation" }
func (e *ErrorCreation) expressionNode() {}

// DebugOutput is `console.log(...)`.
type DebugOutput struct {
	Args []Expression
}

func (d *DebugOutput) Kind() string   { return "DebugOutput" }
func (d *DebugOutput) statementNode() {}

// ObjectOp enumerates the closed Object.* primitive set.
type ObjectOp string

const (
	ObjectFreeze  ObjectOp = "Freeze"
	ObjectKeys    ObjectOp = "Keys"
	ObjectValues  ObjectOp = "Values"
	ObjectEntries ObjectOp = "Entries"
	ObjectCreate  ObjectOp = "Create"
)

// ObjectCall is `ObjectFreeze`, `ObjectKeys`, ... from spec §3.2.
type ObjectCall struct {
	TypedExpr
	Op    ObjectOp
	Value Expression
}

func (o *ObjectCall) Kind() string    { return "Object" + string(o.Op) }
func (o *ObjectCall) expressionNode() {}

// ArrayFrom is `Array.from(iterable, mapFn?)`.
type ArrayFrom struct {
	TypedExpr
	Iterable Expression
	MapFn    Expression // nil when no map function is given
}

func (a *ArrayFrom) Kind() string    { return "ArrayFrom" }
func (a *ArrayFrom) expressionNode() {}
