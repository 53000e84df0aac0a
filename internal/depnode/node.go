// Package depnode models a single element of the program's dependency
// graph (spec.md §3) and the entry point a slice is rooted at.
package depnode

import "fmt"

// Kind discriminates the shape of a Node.
type Kind int

const (
	// Class is a whole class/interface/trait/enum declaration.
	Class Kind = iota
	// Fun is a global function, referenced by fully qualified name.
	Fun
	// FunName is the "name only" form the collector's edge callback
	// reports for a function reference before it is resolved to Fun.
	FunName
	// GConst is a global constant.
	GConst
	// GConstName is the unresolved-name form of GConst.
	GConstName
	// RecordDef is a record definition. Never emitted by the
	// synthesizer; reaching one via closure is unsupported (spec.md §9).
	RecordDef
	// Method is an instance method, owned by a class.
	Method
	// SMethod is a static method, owned by a class.
	SMethod
	// Prop is an instance property, owned by a class.
	Prop
	// SProp is a static property, owned by a class.
	SProp
	// Const is a class constant (or type-constant), owned by a class.
	Const
	// Cstr is a class's constructor.
	Cstr
	// AllMembers drives closure over every member of a class; dropped
	// before synthesis.
	AllMembers
	// Extends drives closure over a class's ancestor list; dropped
	// before synthesis.
	Extends
)

// Node identifies a single dependency graph element.
type Node struct {
	Kind Kind

	// Class is populated for every class-bound kind: Method, SMethod,
	// Prop, SProp, Const, Cstr, AllMembers, Extends, and also for Class
	// itself (the class being named).
	Class string

	// Name is populated for global kinds (Fun, FunName, GConst,
	// GConstName, RecordDef) as the fully qualified name, and for
	// class-bound member kinds (Method, SMethod, Prop, SProp, Const) as
	// the member name.
	Name string
}

// NewClass builds a Class(name) node.
func NewClass(name string) Node { return Node{Kind: Class, Class: name} }

// NewFun builds a Fun(name) node.
func NewFun(name string) Node { return Node{Kind: Fun, Name: name} }

// NewFunName builds a FunName(name) node.
func NewFunName(name string) Node { return Node{Kind: FunName, Name: name} }

// NewGConst builds a GConst(name) node.
func NewGConst(name string) Node { return Node{Kind: GConst, Name: name} }

// NewGConstName builds a GConstName(name) node.
func NewGConstName(name string) Node { return Node{Kind: GConstName, Name: name} }

// NewRecordDef builds a RecordDef(name) node.
func NewRecordDef(name string) Node { return Node{Kind: RecordDef, Name: name} }

// NewMethod builds a Method(cls, name) node.
func NewMethod(cls, name string) Node { return Node{Kind: Method, Class: cls, Name: name} }

// NewSMethod builds an SMethod(cls, name) node.
func NewSMethod(cls, name string) Node { return Node{Kind: SMethod, Class: cls, Name: name} }

// NewProp builds a Prop(cls, name) node.
func NewProp(cls, name string) Node { return Node{Kind: Prop, Class: cls, Name: name} }

// NewSProp builds an SProp(cls, name) node.
func NewSProp(cls, name string) Node { return Node{Kind: SProp, Class: cls, Name: name} }

// NewConst builds a Const(cls, name) node.
func NewConst(cls, name string) Node { return Node{Kind: Const, Class: cls, Name: name} }

// NewCstr builds a Cstr(cls) node.
func NewCstr(cls string) Node { return Node{Kind: Cstr, Class: cls} }

// NewAllMembers builds an AllMembers(cls) node.
func NewAllMembers(cls string) Node { return Node{Kind: AllMembers, Class: cls} }

// NewExtends builds an Extends(cls) node.
func NewExtends(cls string) Node { return Node{Kind: Extends, Class: cls} }

// String renders a debug form, e.g. "Method(Foo::bar)" or "Fun(\ns\baz)".
func (n Node) String() string {
	switch n.Kind {
	case Class:
		return fmt.Sprintf("Class(%s)", n.Class)
	case Fun:
		return fmt.Sprintf("Fun(%s)", n.Name)
	case FunName:
		return fmt.Sprintf("FunName(%s)", n.Name)
	case GConst:
		return fmt.Sprintf("GConst(%s)", n.Name)
	case GConstName:
		return fmt.Sprintf("GConstName(%s)", n.Name)
	case RecordDef:
		return fmt.Sprintf("RecordDef(%s)", n.Name)
	case Method:
		return fmt.Sprintf("Method(%s::%s)", n.Class, n.Name)
	case SMethod:
		return fmt.Sprintf("SMethod(%s::%s)", n.Class, n.Name)
	case Prop:
		return fmt.Sprintf("Prop(%s::%s)", n.Class, n.Name)
	case SProp:
		return fmt.Sprintf("SProp(%s::%s)", n.Class, n.Name)
	case Const:
		return fmt.Sprintf("Const(%s::%s)", n.Class, n.Name)
	case Cstr:
		return fmt.Sprintf("Cstr(%s)", n.Class)
	case AllMembers:
		return fmt.Sprintf("AllMembers(%s)", n.Class)
	case Extends:
		return fmt.Sprintf("Extends(%s)", n.Class)
	default:
		return "Unknown"
	}
}
