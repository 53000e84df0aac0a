// Package decltype models the declared-type shapes the initializer
// generator, the declaration synthesizer, and the dependency collector's
// signature walker all need to traverse. The host language's real type
// representation lives in the external type-checker; this package is the
// subset of it hackslice needs to carry across its own package boundaries.
package decltype

import "strings"

// Kind discriminates the shape of a Type.
type Kind int

const (
	// KindInt is the integer primitive.
	KindInt Kind = iota
	// KindFloat is the floating point primitive.
	KindFloat
	// KindBool is the boolean primitive.
	KindBool
	// KindString is the string primitive.
	KindString
	// KindArraykey is the int|string primitive used for array keys.
	KindArraykey
	// KindMixedOrAny is the unknown/any/dynamic kind; synthesized
	// functions omit a return-type annotation for it.
	KindMixedOrAny
	// KindNullable wraps an Inner type as nullable ("?T").
	KindNullable
	// KindBuiltinContainer is a built-in vector/set/dict/keyset literal
	// type, named by Name ("vec", "dict", "keyset", "varray", "darray",
	// "array") with type arguments in Args.
	KindBuiltinContainer
	// KindCollectionClass is a mutable/immutable collection class type
	// (Vector, Map, Set, ImmVector, ...), named by Name with Args.
	KindCollectionClass
	// KindPair is Pair<T1,T2>; Args holds exactly two entries.
	KindPair
	// KindTuple is tuple(T1, ..., Tn); Args holds the element types.
	KindTuple
	// KindClassname is classname<C>; Args holds exactly one entry, the
	// class type C.
	KindClassname
	// KindShape is shape('f1' => T1, ...); Fields holds the field list,
	// Open marks an open shape ("shape(..., ...)").
	KindShape
	// KindNamed is any other applied type resolving to a class or
	// typedef by Name, with Args as its type arguments.
	KindNamed
	// KindTypeAccess is a type-constant access chain T::C1::C2::...;
	// Root is T and Path is the dot-less sequence of constant names.
	KindTypeAccess
	// KindUnsupported covers void/resource/noreturn/atom/abstract
	// primitive kinds and anything else the synthesizer refuses.
	KindUnsupported
)

// ShapeField is one field of a shape type.
type ShapeField struct {
	Name     string
	Type     Type
	Optional bool
}

// Type is a declared type as seen by the initializer, synthesizer, and
// collector. It is a plain tagged struct rather than an interface
// hierarchy: every package that consumes it switches on Kind, so there is
// no behavior to dispatch polymorphically beyond String.
type Type struct {
	Kind Kind

	// Name is populated for KindBuiltinContainer, KindCollectionClass,
	// KindNamed, and carries the diagnostic description for
	// KindUnsupported (e.g. "resource", "noreturn").
	Name string

	// Inner is populated for KindNullable.
	Inner *Type

	// Args are type arguments, populated for KindBuiltinContainer,
	// KindCollectionClass, KindPair, KindTuple, KindClassname, KindNamed.
	Args []Type

	// Fields are populated for KindShape.
	Fields []ShapeField
	// Open marks an open shape (trailing "...").
	Open bool

	// Root and Path are populated for KindTypeAccess.
	Root *Type
	Path []string
}

// String renders a debug/diagnostic form of the type. It is not the
// type-printer used for emitted source text (that is
// provider.TypePrinter.FullDecl, backed by the external pretty-printer);
// String exists for error messages and test failure output.
func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArraykey:
		return "arraykey"
	case KindMixedOrAny:
		return "mixed"
	case KindNullable:
		if t.Inner == nil {
			return "?"
		}
		return "?" + t.Inner.String()
	case KindBuiltinContainer, KindCollectionClass, KindNamed:
		return t.Name + formatArgs(t.Args)
	case KindPair:
		return "Pair" + formatArgs(t.Args)
	case KindTuple:
		return "(" + joinTypes(t.Args) + ")"
	case KindClassname:
		return "classname" + formatArgs(t.Args)
	case KindShape:
		var sb strings.Builder
		sb.WriteString("shape(")
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			if f.Optional {
				sb.WriteByte('?')
			}
			sb.WriteByte('\'')
			sb.WriteString(f.Name)
			sb.WriteString("' => ")
			sb.WriteString(f.Type.String())
		}
		if t.Open {
			if len(t.Fields) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
		}
		sb.WriteByte(')')
		return sb.String()
	case KindTypeAccess:
		var sb strings.Builder
		if t.Root != nil {
			sb.WriteString(t.Root.String())
		}
		for _, p := range t.Path {
			sb.WriteString("::")
			sb.WriteString(p)
		}
		return sb.String()
	case KindUnsupported:
		if t.Name != "" {
			return t.Name
		}
		return "<unsupported>"
	default:
		return "<unknown>"
	}
}

func formatArgs(args []Type) string {
	if len(args) == 0 {
		return ""
	}
	return "<" + joinTypes(args) + ">"
}

func joinTypes(args []Type) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// Nullable wraps t as ?t.
func Nullable(t Type) Type { return Type{Kind: KindNullable, Inner: &t} }

// Named builds a KindNamed type (a resolved class or typedef name with
// type arguments).
func Named(name string, args ...Type) Type {
	return Type{Kind: KindNamed, Name: name, Args: args}
}

// Prim builds a primitive type of the given kind.
func Prim(k Kind) Type { return Type{Kind: k} }

// Unsupported builds the sentinel type for constructs the synthesizer
// refuses to emit a default for (void, resource, noreturn, atom, ...).
func Unsupported(desc string) Type { return Type{Kind: KindUnsupported, Name: desc} }
