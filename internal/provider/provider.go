package provider

import (
	"github.com/anthropics/hackslice/internal/decltype"
	"github.com/anthropics/hackslice/internal/depnode"
)

// DeclProvider resolves fully qualified names to reflected declarations.
// A production implementation backs this with the host language's real
// symbol table; hackslice only consumes it.
type DeclProvider interface {
	GetClass(name string) (*ClassDecl, bool)
	GetTypedef(name string) (*TypedefDecl, bool)
	GetFun(name string) (*FunDecl, bool)
	GetGConst(name string) (*GConstDecl, bool)
}

// EdgeCallback is invoked by a TypeChecker for every dependency edge it
// discovers while type-checking: source is the entity whose check
// produced the edge and target is the dependency it references. The
// collector keeps only edges whose source depnode.IsRelevant accepts for
// the entry point (spec.md §4.5).
type EdgeCallback func(source, target depnode.Node)

// TypeChecker drives the host language's real type-checking algorithm,
// reporting every dependency edge it walks through a single registered
// callback. Registration is not re-entrant (spec.md §5): AddDependencyCallback
// fails if a callback is already registered, and the returned unregister
// function must be called on every exit path.
type TypeChecker interface {
	AddDependencyCallback(name string, cb EdgeCallback) (unregister func(), err error)
	TypeFun(file, name string) error
	TypeClass(file, name string) error
}

// Span is a byte-offset range into a source file, produced by the
// type-checker's position info and consumed by SourceReader.TextAt to
// recover the entry point's literal body.
type Span struct {
	StartByte int
	EndByte   int
}

// SourceReader reads source text. ReadFile returns the whole file;
// TextAt extracts exactly the literal text at a given span, used to
// splice the entry point's real body into the emitted slice.
type SourceReader interface {
	ReadFile(path string) (string, error)
	TextAt(path string, span Span) (string, error)
}

// TypePrinter is a thin surface over the external type-printing service:
// formatting a decltype.Type as the host language's own type syntax, for
// embedding in synthesized declarations (spec.md "Type-Printer Adapter").
type TypePrinter interface {
	FullDecl(t decltype.Type) (string, error)
}

// Formatter formats emitted source text. It is best-effort: a failure
// means the caller must fall back to the unformatted text (spec.md §4.6),
// not abort the extraction.
type Formatter interface {
	Format(text string) (string, error)
}
