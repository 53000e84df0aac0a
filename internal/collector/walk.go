package collector

import (
	"sort"

	"github.com/anthropics/hackslice/internal/decltype"
	"github.com/anthropics/hackslice/internal/depnode"
	"github.com/anthropics/hackslice/internal/provider"
)

// discover walks every type reachable from t and returns the dependency
// nodes it implies: Class(N) for every applied type, plus Const(owner,
// hop) for every resolved step of a type-access chain (spec.md §4.5
// point 3). It does not consult builtin-ness or set membership; the
// caller filters those.
func discover(t decltype.Type, p provider.DeclProvider) []depnode.Node {
	var found []depnode.Node

	onApplied := func(applied decltype.Type) {
		switch applied.Kind {
		case decltype.KindNamed, decltype.KindBuiltinContainer, decltype.KindCollectionClass:
			found = append(found, depnode.NewClass(applied.Name))
		case decltype.KindClassname:
			if len(applied.Args) == 1 {
				found = append(found, depnode.NewClass(applied.Args[0].Name))
			}
		}
	}

	onAccess := func(root decltype.Type, constName string) (decltype.Type, bool) {
		if root.Kind != decltype.KindNamed {
			return decltype.Type{}, false
		}
		cls, ok := p.GetClass(root.Name)
		if !ok {
			return decltype.Type{}, false
		}
		found = append(found, depnode.NewConst(root.Name, constName))
		tc, ok := cls.TypeConsts[constName]
		if !ok {
			return decltype.Type{}, false
		}
		if tc.Assigned != nil {
			return *tc.Assigned, true
		}
		if tc.Constraint != nil {
			return *tc.Constraint, true
		}
		return decltype.Type{}, false
	}

	decltype.Visit(t, onApplied, onAccess)
	return found
}

// discoverSignature walks every type in sig: parameter types, the
// variadic parameter's type, and the return type.
func discoverSignature(sig provider.Signature, p provider.DeclProvider) []depnode.Node {
	var found []depnode.Node
	for _, param := range sig.Params {
		found = append(found, discover(param.Type, p)...)
	}
	if sig.Variadic != nil {
		found = append(found, discover(sig.Variadic.Type, p)...)
	}
	found = append(found, discover(sig.Return, p)...)
	return found
}

// discoverConstValue applies spec.md §4.5 point 2: when collecting for a
// value-const (not a type-const), if the const's own top-level type (not
// its generic arguments) resolves to a class rather than a typedef, add a
// representative enum-value Const edge so the constant's initializer can
// reference a concrete value.
func discoverConstValue(t decltype.Type, p provider.DeclProvider) (depnode.Node, bool) {
	base := t
	if base.Kind == decltype.KindNullable && base.Inner != nil {
		base = *base.Inner
	}
	if base.Kind != decltype.KindNamed {
		return depnode.Node{}, false
	}
	if _, isTypedef := p.GetTypedef(base.Name); isTypedef {
		return depnode.Node{}, false
	}
	cls, ok := p.GetClass(base.Name)
	if !ok {
		return depnode.Node{}, false
	}
	name, ok := representativeConst(cls)
	if !ok {
		return depnode.Node{}, false
	}
	return depnode.NewConst(base.Name, name), true
}

// representativeConst picks a deterministic non-reserved constant from
// cls, the same rule internal/initializer.Default uses for enum
// defaults (spec.md §9 leaves the exact choice unspecified).
func representativeConst(cls *provider.ClassDecl) (string, bool) {
	const reserved = "class"
	order := cls.ConstOrder
	if len(order) == 0 {
		for name := range cls.Consts {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	for _, name := range order {
		if name == reserved {
			continue
		}
		if _, ok := cls.Consts[name]; ok {
			return name, true
		}
	}
	return "", false
}
