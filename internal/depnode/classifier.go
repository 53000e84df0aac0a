package depnode

import (
	"strings"

	"github.com/anthropics/hackslice/internal/errs"
)

// EntryKind discriminates the two supported entry-point shapes
// (spec.md §3).
type EntryKind int

const (
	// EntryFunction is Function(name).
	EntryFunction EntryKind = iota
	// EntryMethod is Member(class_name, Method(method_name)).
	EntryMethod
)

// Entry is an accepted entry point: a top-level function or a named
// method of a class. Any other shape is rejected at the boundary with
// errs.InvalidInput before an Entry is ever constructed.
type Entry struct {
	Kind   EntryKind
	Name   string // fully qualified function name, for EntryFunction
	Class  string // owning class, for EntryMethod
	Method string // method name, for EntryMethod
}

// NewFunctionEntry builds a Function(name) entry point.
func NewFunctionEntry(name string) Entry { return Entry{Kind: EntryFunction, Name: name} }

// NewMethodEntry builds a Member(class, Method(method)) entry point.
func NewMethodEntry(class, method string) Entry {
	return Entry{Kind: EntryMethod, Class: class, Method: method}
}

// ParseEntry accepts raw request text at the boundary and classifies it as
// one of spec.md §3's two entry-point shapes: a fully qualified function
// name, or "[class]::[method]". Anything else is rejected with
// errs.InvalidInput (spec.md §6's "Unrecognized input" diagnostic) before
// an Entry is ever constructed.
func ParseEntry(raw string) (Entry, error) {
	if raw == "" {
		return Entry{}, &errs.InvalidInput{Got: "empty input"}
	}
	if strings.Contains(raw, "::") {
		parts := strings.Split(raw, "::")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return Entry{}, &errs.InvalidInput{Got: raw}
		}
		return NewMethodEntry(parts[0], parts[1]), nil
	}
	return NewFunctionEntry(raw), nil
}

// IsClassDependency reports whether n carries an owning class: every
// class-bound variant plus Class itself.
func IsClassDependency(n Node) bool {
	switch n.Kind {
	case Class, Method, SMethod, Prop, SProp, Const, Cstr, AllMembers, Extends:
		return true
	default:
		return false
	}
}

// OwnerClass returns the class name embedded in a class-bound node. It
// fails with errs.UnexpectedDependency on any other variant — calling it
// on a global node is an invariant violation in the caller, not a
// reportable user error.
func OwnerClass(n Node) (string, error) {
	if !IsClassDependency(n) {
		return "", errs.NewUnexpectedDependency("OwnerClass called on non-class-bound node " + n.String())
	}
	return n.Class, nil
}

// GlobalName returns the fully qualified name for a global node. It fails
// with errs.UnexpectedDependency on a class-bound variant.
func GlobalName(n Node) (string, error) {
	if IsClassDependency(n) {
		return "", errs.NewUnexpectedDependency("GlobalName called on class-bound node " + n.String())
	}
	return n.Name, nil
}

// IsRelevant filters a reported type-checker edge entry -> d down to the
// dependencies spec.md §4.1 says should be accepted for that entry kind.
// Edges are recorded at class granularity for methods, not per-method, so
// a method entry accepts any class-bound node owned by its class.
func IsRelevant(entry Entry, d Node) bool {
	switch entry.Kind {
	case EntryFunction:
		return (d.Kind == Fun || d.Kind == FunName) && d.Name == entry.Name
	case EntryMethod:
		return IsClassDependency(d) && d.Class == entry.Class
	default:
		return false
	}
}

// EntryPointNodes returns the node(s) representing the entry point itself,
// which the collector removes from the accumulated set before synthesis
// (spec.md §4.5's "remove the entry point itself"). A function entry
// removes both its Fun and FunName forms; a method entry removes both its
// Method and SMethod forms since the collector cannot know in advance
// which one the type-checker reported.
func EntryPointNodes(entry Entry) []Node {
	switch entry.Kind {
	case EntryFunction:
		return []Node{NewFun(entry.Name), NewFunName(entry.Name)}
	case EntryMethod:
		return []Node{NewMethod(entry.Class, entry.Method), NewSMethod(entry.Class, entry.Method)}
	default:
		return nil
	}
}
