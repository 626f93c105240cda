// Package targetast defines the Target AST of spec §3.3: a tree
// structurally parallel to internal/ilast but specialized per dialect.
// Python and BASIC share the node set declared in this file and in
// expressions.go/statements.go; python.go and basic.go add the node
// kinds unique to each family. internal/transform builds these trees,
// internal/emit renders them to text.
package targetast

import "github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"

// Node is the base interface every Target-AST node implements.
type Node interface {
	Kind() string
}

// Expression is any Target node producing a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any Target node performing an action.
type Statement interface {
	Node
	statementNode()
}

// Module is the Target AST root.
type Module struct {
	Name string
	Body []Statement
}

func (m *Module) Kind() string { return "Module" }

// Block is a nested statement sequence with its own scope.
type Block struct {
	Body []Statement
}

func (b *Block) Kind() string   { return "Block" }
func (b *Block) statementNode() {}

// Parameter is one formal parameter; the transformer always sets Type,
// and the emitter prints it only under addTypeHints (an Any type only
// under strictTypes as well) (§4.2's TargetOptions).
type Parameter struct {
	Name    string
	Type    *ilast.Type
	Default Expression
	Rest    bool
}

// Field is one class/record instance field.
type Field struct {
	Name    string
	Type    *ilast.Type
	Default Expression
}

// PropertyKind distinguishes a getter from a setter.
type PropertyKind int

const (
	Getter PropertyKind = iota
	Setter
)

// Property is one accessor (Python `@property`/`@x.setter`, BASIC
// `Property Get/Set` when useProperties is set).
type Property struct {
	Name  string
	Kind  PropertyKind
	Param string
	Body  []Statement
}

// Function is a standalone module-level function.
type Function struct {
	Name       string
	Params     []Parameter
	Body       []Statement
	ReturnType *ilast.Type
	Docstring  string
	Decorators []*Decorator // Python only; always nil for BASIC
}

func (f *Function) Kind() string   { return "Function" }
func (f *Function) statementNode() {}

// MethodKind mirrors ilast.MethodKind after transformation.
type MethodKind int

const (
	MPlain MethodKind = iota
	MConstructor
	MStatic
)

// Method is one method of a Class.
type Method struct {
	Name       string
	MKind      MethodKind
	Params     []Parameter
	Body       []Statement
	ReturnType *ilast.Type
	Docstring  string
	Decorators []*Decorator
}

// Class is a class declaration (`useClasses` true on the BASIC path;
// always used on the Python path).
type Class struct {
	Name          string
	Extends       string
	Fields        []Field
	Properties    []Property
	Methods       []Method
	Docstring     string
	FrameworkRefs []string
}

func (c *Class) Kind() string   { return "Class" }
func (c *Class) statementNode() {}

// UnknownStmt is the Target rendering of an ilast.Unknown placeholder:
// the Emitter turns it into a dialect-appropriate comment (§4.3.4).
type UnknownStmt struct {
	NodeKind string
	Snapshot string
}

func (u *UnknownStmt) Kind() string   { return "Unknown" }
func (u *UnknownStmt) statementNode() {}

// UnknownExpr is the expression-position counterpart of UnknownStmt.
type UnknownExpr struct {
	NodeKind string
	Snapshot string
}

func (u *UnknownExpr) Kind() string    { return "Unknown" }
func (u *UnknownExpr) expressionNode() {}
