package synth

import (
	"sort"

	"github.com/anthropics/hackslice/internal/provider"
)

// AncestorSets groups a class's direct ancestors and requirement clauses
// by their role in the synthesized declaration (spec.md §4.4).
type AncestorSets struct {
	Extends       []string
	Implements    []string
	Uses          []string
	ReqExtends    []string
	ReqImplements []string
}

// PartitionAncestors computes a class's direct ancestors and requirement
// clauses (transitive reduction of cls.Ancestors / cls.Requirements) and
// sorts each bucket by name into extends/implements/uses/req_extends/
// req_implements, per spec.md §4.4.
func PartitionAncestors(cls *provider.ClassDecl, p provider.DeclProvider) AncestorSets {
	direct := directAncestors(cls.Ancestors, p)
	reqDirect := directAncestors(cls.Requirements, p)

	var sets AncestorSets
	for _, a := range direct {
		switch {
		case (cls.Kind == provider.InterfaceKind && a.Kind == provider.InterfaceKind),
			a.Kind == provider.AbstractClass,
			a.Kind == provider.NormalClass:
			sets.Extends = append(sets.Extends, a.Name)
		case cls.Kind != provider.InterfaceKind && a.Kind == provider.InterfaceKind:
			sets.Implements = append(sets.Implements, a.Name)
		case a.Kind == provider.TraitKind:
			sets.Uses = append(sets.Uses, a.Name)
		}
	}

	for _, a := range reqDirect {
		switch a.Kind {
		case provider.AbstractClass, provider.NormalClass:
			sets.ReqExtends = append(sets.ReqExtends, a.Name)
		case provider.InterfaceKind:
			sets.ReqImplements = append(sets.ReqImplements, a.Name)
		}
	}

	sort.Strings(sets.Extends)
	sort.Strings(sets.Implements)
	sort.Strings(sets.Uses)
	sort.Strings(sets.ReqExtends)
	sort.Strings(sets.ReqImplements)
	return sets
}

// directAncestors returns the subset of all that is not reachable as an
// ancestor-of-an-ancestor: all_ancestor_names(C) minus all
// ancestors-of-ancestors (spec.md §4.4).
func directAncestors(all []provider.AncestorRef, p provider.DeclProvider) []provider.AncestorRef {
	indirect := make(map[string]bool)
	for _, a := range all {
		ancestorCls, ok := p.GetClass(a.Name)
		if !ok {
			continue
		}
		for _, aa := range ancestorCls.Ancestors {
			indirect[aa.Name] = true
		}
	}

	var direct []provider.AncestorRef
	for _, a := range all {
		if !indirect[a.Name] {
			direct = append(direct, a)
		}
	}
	return direct
}
