// Package provider formalizes spec.md §6's "consumed from collaborators"
// list as Go interfaces: the external type-checker, type-decl provider,
// type printer, source reader, and formatter. hackslice never implements
// these for a real host language — that backend is explicitly out of
// scope (spec.md §1) — it only defines the boundary and, in tests, fakes
// behind it.
package provider

import "github.com/anthropics/hackslice/internal/decltype"

// ClassKind discriminates what kind of type declaration a ClassDecl
// describes.
type ClassKind int

const (
	// NormalClass is a concrete, non-abstract class.
	NormalClass ClassKind = iota
	// AbstractClass is an abstract class.
	AbstractClass
	// InterfaceKind is an interface.
	InterfaceKind
	// TraitKind is a trait.
	TraitKind
	// EnumKind is an enum.
	EnumKind
)

// Param is a single function/method parameter as reflected from the
// type-decl provider.
type Param struct {
	Name  string
	Type  decltype.Type
	InOut bool
}

// Signature is the shared shape of a function's or method's declared
// type: type parameters, positional parameters, an optional trailing
// variadic parameter, the minimum arity (parameters at or beyond this
// index get a synthesized default, per spec.md §4.3), and the return
// type.
type Signature struct {
	TypeParams []string
	Params     []Param
	Variadic   *Param
	MinArity   int
	Return     decltype.Type
}

// AncestorRef is one entry of a class's ancestor or requirement list: the
// ancestor's fully qualified name, its own kind (needed to partition
// extends/implements/uses per spec.md §4.4), and its resolved applied
// type (needed to walk it during closure, spec.md §4.5).
type AncestorRef struct {
	Name string
	Kind ClassKind
	Type decltype.Type
}

// PropDecl reflects a single instance or static property.
type PropDecl struct {
	Name       string
	Origin     string // the class that first declared this property
	Type       decltype.Type
	Static     bool
	Visibility string // "public" | "protected" | "private"
	Abstract   bool
}

// ConstDecl reflects a single class constant's value-type side.
type ConstDecl struct {
	Name     string
	Origin   string
	Type     decltype.Type
	Abstract bool
}

// TypeConstDecl reflects a single class type-constant.
type TypeConstDecl struct {
	Name       string
	Origin     string
	Constraint *decltype.Type // the "as C" bound, if any
	Assigned   *decltype.Type // the "= T" assignment, if any
	Abstract   bool
}

// MethodDecl reflects a single instance or static method.
type MethodDecl struct {
	Name       string
	Origin     string
	Static     bool
	Abstract   bool
	Visibility string
	Signature  Signature
	// Span locates the method's literal source text, used to splice an
	// entry point's real body into its synthesized class (spec.md §5's
	// "the entry point's literal body appears exactly once in the
	// output").
	Span Span
}

// CstrDecl reflects a class's constructor, if it declares one.
type CstrDecl struct {
	Origin    string
	Signature Signature
}

// ClassDecl reflects a class, interface, trait, or enum declaration.
type ClassDecl struct {
	Name       string
	Kind       ClassKind
	File       string
	TypeParams []string

	// Ancestors is the full transitive ancestor set (extends/implements/
	// uses), not yet reduced to direct ancestors — internal/synth's
	// ancestor-partitioning does the transitive reduction (spec.md
	// §4.4).
	Ancestors []AncestorRef
	// Requirements is the full requirement-clause ancestor set
	// (require extends / require implements).
	Requirements []AncestorRef

	Properties       map[string]PropDecl
	StaticProperties map[string]PropDecl
	Consts           map[string]ConstDecl
	// ConstOrder is the declaration order of Consts' keys, used to pick a
	// deterministic representative constant when a class is treated as
	// an enum by the initializer generator (spec.md §4.2). Optional: if
	// empty, callers fall back to sorted keys.
	ConstOrder       []string
	TypeConsts       map[string]TypeConstDecl
	Methods          map[string]MethodDecl
	StaticMethods    map[string]MethodDecl
	Constructor      *CstrDecl

	// EnumBase and EnumConstraint are populated when Kind == EnumKind:
	// "enum Name: EnumBase as EnumConstraint { ... }".
	EnumBase       *decltype.Type
	EnumConstraint *decltype.Type
}

// TypedefDecl reflects a typedef or newtype declaration.
type TypedefDecl struct {
	Name        string
	File        string
	TypeParams  []string
	Target      decltype.Type
	Transparent bool // true for "type", false for "newtype"
}

// FunDecl reflects a global function declaration.
type FunDecl struct {
	Name      string
	File      string
	Signature Signature
	// Span locates the function's literal source text (see MethodDecl.Span).
	Span Span
}

// GConstDecl reflects a global constant declaration.
type GConstDecl struct {
	Name string
	File string
	Type decltype.Type
}
