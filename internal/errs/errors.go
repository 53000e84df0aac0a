// Package errs implements the error taxonomy of spec.md §7 and the
// translation to the user-visible strings of spec.md §6. Like the
// teacher's own error handling, there is no stacktrace library in play —
// internal errors carry a captured stack via stdlib runtime/debug.
package errs

import (
	"fmt"
	"runtime/debug"
)

// NotFound means the requested entry point does not exist.
type NotFound struct {
	// Entry describes the entry point that was looked up.
	Entry string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("not found: %s", e.Entry)
}

// InvalidInput means the entry-point request is malformed: neither a
// fully qualified function name nor a [class]::[method] pair.
type InvalidInput struct {
	// Got describes what was supplied, for diagnostics only.
	Got string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Got)
}

// DependencyNotFound means a lookup needed during synthesis yielded no
// declaration.
type DependencyNotFound struct {
	// Description names the missing dependency (e.g. "class \Foo").
	Description string
}

func (e *DependencyNotFound) Error() string {
	return fmt.Sprintf("dependency not found: %s", e.Description)
}

// Unsupported means the synthesizer or initializer encountered a type or
// construct it does not know how to emit (spec.md §4.2's "void / resource
// / no-return / atom / unrecognized" row, an enum with only the reserved
// `class` constant, a RecordDef reached via closure, ...).
type Unsupported struct {
	// Reason describes what is unsupported.
	Reason string
	// Stack is captured at construction time via NewUnsupported.
	Stack string
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s", e.Reason)
}

// NewUnsupported builds an Unsupported error with a captured stack trace.
func NewUnsupported(reason string) *Unsupported {
	return &Unsupported{Reason: reason, Stack: string(debug.Stack())}
}

// UnexpectedDependency means a closure-time invariant was violated — a
// bug in hackslice itself, not a malformed input (e.g. GlobalName called
// on a class-bound node).
type UnexpectedDependency struct {
	// Reason describes the violated invariant.
	Reason string
	// Stack is captured at construction time via NewUnexpectedDependency.
	Stack string
}

func (e *UnexpectedDependency) Error() string {
	return fmt.Sprintf("unexpected dependency: %s", e.Reason)
}

// NewUnexpectedDependency builds an UnexpectedDependency error with a
// captured stack trace.
func NewUnexpectedDependency(reason string) *UnexpectedDependency {
	return &UnexpectedDependency{Reason: reason, Stack: string(debug.Stack())}
}
