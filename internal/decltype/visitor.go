package decltype

// Visit walks t and every type reachable from it (nullable inner, applied
// type arguments, shape field types, tuple/pair elements, type-access
// roots), calling onApplied for every KindNamed, KindBuiltinContainer,
// KindCollectionClass, or KindClassname node encountered — the "applied
// type N<...>" case the dependency collector's signature walk (spec.md
// §4.5) adds Class(N) for. onAccess is called once per hop of a
// KindTypeAccess chain, innermost root first, with the type reached so
// far (the chain's root for the first hop, then each hop's resolved
// type) and the constant name being accessed.
//
// Visit never calls the external type-checker or decl provider itself;
// resolving a KindTypeAccess root to the type-constant's target type is
// the caller's job, supplied via onAccess.
func Visit(t Type, onApplied func(Type), onAccess func(root Type, constName string) (Type, bool)) {
	visit(t, onApplied, onAccess, make(map[*Type]bool))
}

func visit(t Type, onApplied func(Type), onAccess func(Type, string) (Type, bool), seen map[*Type]bool) {
	switch t.Kind {
	case KindNullable:
		if t.Inner != nil {
			visit(*t.Inner, onApplied, onAccess, seen)
		}
	case KindBuiltinContainer, KindCollectionClass, KindClassname, KindNamed:
		if onApplied != nil {
			onApplied(t)
		}
		for _, a := range t.Args {
			visit(a, onApplied, onAccess, seen)
		}
	case KindPair, KindTuple:
		for _, a := range t.Args {
			visit(a, onApplied, onAccess, seen)
		}
	case KindShape:
		for _, f := range t.Fields {
			visit(f.Type, onApplied, onAccess, seen)
		}
	case KindTypeAccess:
		if t.Root == nil {
			return
		}
		current := *t.Root
		visit(current, onApplied, onAccess, seen)
		for _, hop := range t.Path {
			if onAccess == nil {
				return
			}
			next, ok := onAccess(current, hop)
			if !ok {
				return
			}
			current = next
			visit(current, onApplied, onAccess, seen)
		}
	case KindInt, KindFloat, KindBool, KindString, KindArraykey, KindMixedOrAny, KindUnsupported:
		// Leaf kinds: nothing further to walk.
	}
}
