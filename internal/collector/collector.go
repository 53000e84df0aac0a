// Package collector implements the Dependency Collector of spec.md §4.5:
// it drives the external type-checker from an entry point, captures the
// dependency edges it reports, and closes that set under signature
// walks until it stabilizes.
package collector

import (
	"sort"

	"github.com/anthropics/hackslice/internal/config"
	"github.com/anthropics/hackslice/internal/depgraph"
	"github.com/anthropics/hackslice/internal/depnode"
	"github.com/anthropics/hackslice/internal/errs"
	"github.com/anthropics/hackslice/internal/provider"
)

// Result is the grouped output of a closed dependency set (spec.md
// §4.5's Grouping phase).
type Result struct {
	// Types maps a class name to the class-bound nodes it must
	// synthesize members for (origin-filtered: inherited, non-overridden
	// members are excluded). A class with no collected members but that
	// must still be emitted (because it is referenced) has an empty
	// slice, never a missing key.
	Types map[string][]depnode.Node
	// Globals holds every collected Fun/FunName/GConst/GConstName/
	// RecordDef node. AllMembers and Extends are dropped entirely; they
	// only ever drove closure.
	Globals []depnode.Node
}

// Collector drives a provider.TypeChecker from a single entry point and
// closes the resulting dependency set.
type Collector struct {
	Provider provider.DeclProvider
	Checker  provider.TypeChecker
	Cfg      config.Config
	// Graph, if non-nil, records, for every node added to the set during
	// collection or closure, the edge that first added it, for later
	// explain-path queries (internal/depgraph). Edges to nodes already in
	// the set or classified as builtin are not recorded.
	Graph *depgraph.Graph
}

// New builds a Collector.
func New(p provider.DeclProvider, tc provider.TypeChecker, cfg config.Config) *Collector {
	return &Collector{Provider: p, Checker: tc, Cfg: cfg}
}

// Collect runs the full collection and closure algorithm for entry and
// returns the grouped result.
func (c *Collector) Collect(entry depnode.Entry) (*Result, error) {
	file, err := c.entryFile(entry)
	if err != nil {
		return nil, err
	}

	set := make(map[depnode.Node]bool)
	var worklist []depnode.Node

	var add func(from, to depnode.Node) bool
	add = func(from, to depnode.Node) bool {
		if depnode.IsClassDependency(to) && to.Kind != depnode.Class {
			add(to, depnode.NewClass(to.Class))
		}
		if to.Kind == depnode.SMethod {
			to = c.normalizeSMethod(to)
		}
		if provider.IsBuiltin(to, c.Provider, &c.Cfg.Builtin) {
			return false
		}
		if set[to] {
			return false
		}
		set[to] = true
		worklist = append(worklist, to)
		if c.Graph != nil {
			c.Graph.AddEdge(from, to)
		}
		return true
	}

	guarded := Guard(c.Checker)
	entrySource := depnode.EntryPointNodes(entry)[0]
	unregister, err := guarded.AddDependencyCallback("add_dependency", func(source, target depnode.Node) {
		if depnode.IsRelevant(entry, source) {
			add(entrySource, target)
		}
	})
	if err != nil {
		return nil, err
	}
	defer unregister()

	switch entry.Kind {
	case depnode.EntryFunction:
		if err := guarded.TypeFun(file, entry.Name); err != nil {
			return nil, err
		}
	case depnode.EntryMethod:
		if err := guarded.TypeClass(file, entry.Class); err != nil {
			return nil, err
		}
	default:
		return nil, &errs.InvalidInput{Got: "entry point is neither a function nor a method"}
	}

	for _, n := range depnode.EntryPointNodes(entry) {
		delete(set, n)
	}

	iterations := 0
	for len(worklist) > 0 {
		n := worklist[0]
		worklist = worklist[1:]
		if !set[n] {
			continue // removed as an entry-point node after collection
		}

		iterations++
		if c.Cfg.Collector.MaxClosureIterations > 0 && iterations > c.Cfg.Collector.MaxClosureIterations {
			return nil, errs.NewUnsupported("dependency closure exceeded configured iteration bound")
		}

		for _, d := range c.process(n) {
			add(n, d)
		}
	}

	return c.group(set), nil
}

func (c *Collector) entryFile(entry depnode.Entry) (string, error) {
	switch entry.Kind {
	case depnode.EntryFunction:
		fd, ok := c.Provider.GetFun(entry.Name)
		if !ok {
			return "", &errs.NotFound{Entry: entry.Name}
		}
		return fd.File, nil

	case depnode.EntryMethod:
		cls, ok := c.Provider.GetClass(entry.Class)
		if !ok {
			return "", &errs.NotFound{Entry: entry.Class}
		}
		if _, ok := cls.Methods[entry.Method]; ok {
			return cls.File, nil
		}
		if _, ok := cls.StaticMethods[entry.Method]; ok {
			return cls.File, nil
		}
		return "", &errs.NotFound{Entry: entry.Class + "::" + entry.Method}

	default:
		return "", &errs.InvalidInput{Got: "entry point is neither a function nor a method"}
	}
}

// normalizeSMethod applies spec.md §4.5's inheritance quirk: a static
// reference to a method a class only declares as instance is rewritten
// to Method in place.
func (c *Collector) normalizeSMethod(n depnode.Node) depnode.Node {
	cls, ok := c.Provider.GetClass(n.Class)
	if !ok {
		return n
	}
	if _, hasStatic := cls.StaticMethods[n.Name]; hasStatic {
		return n
	}
	if _, hasInstance := cls.Methods[n.Name]; hasInstance {
		return depnode.NewMethod(n.Class, n.Name)
	}
	return n
}

// process walks n's declared signature (or, for Class, its ancestors and
// interface obligations) and returns the dependency nodes it implies.
func (c *Collector) process(n depnode.Node) []depnode.Node {
	switch n.Kind {
	case depnode.Method:
		cls, ok := c.Provider.GetClass(n.Class)
		if !ok {
			return nil
		}
		md, ok := cls.Methods[n.Name]
		if !ok {
			return nil
		}
		return discoverSignature(md.Signature, c.Provider)

	case depnode.SMethod:
		cls, ok := c.Provider.GetClass(n.Class)
		if !ok {
			return nil
		}
		md, ok := cls.StaticMethods[n.Name]
		if !ok {
			return nil
		}
		return discoverSignature(md.Signature, c.Provider)

	case depnode.Prop:
		cls, ok := c.Provider.GetClass(n.Class)
		if !ok {
			return nil
		}
		pd, ok := cls.Properties[n.Name]
		if !ok {
			return nil
		}
		found := discover(pd.Type, c.Provider)
		return append(found, depnode.NewCstr(n.Class))

	case depnode.SProp:
		cls, ok := c.Provider.GetClass(n.Class)
		if !ok {
			return nil
		}
		pd, ok := cls.StaticProperties[n.Name]
		if !ok {
			return nil
		}
		found := discover(pd.Type, c.Provider)
		return append(found, depnode.NewCstr(n.Class))

	case depnode.Const:
		return c.processConst(n)

	case depnode.Cstr:
		cls, ok := c.Provider.GetClass(n.Class)
		if !ok || cls.Constructor == nil {
			return nil
		}
		return discoverSignature(cls.Constructor.Signature, c.Provider)

	case depnode.Class:
		return c.processClass(n.Class)

	default:
		return nil
	}
}

func (c *Collector) processConst(n depnode.Node) []depnode.Node {
	cls, ok := c.Provider.GetClass(n.Class)
	if !ok {
		return nil
	}
	if tc, ok := cls.TypeConsts[n.Name]; ok {
		var found []depnode.Node
		if tc.Constraint != nil {
			found = append(found, discover(*tc.Constraint, c.Provider)...)
		}
		if tc.Assigned != nil {
			found = append(found, discover(*tc.Assigned, c.Provider)...)
		}
		return found
	}
	cd, ok := cls.Consts[n.Name]
	if !ok {
		return nil
	}
	found := discover(cd.Type, c.Provider)
	if extra, ok := discoverConstValue(cd.Type, c.Provider); ok {
		found = append(found, extra)
	}
	return found
}

func (c *Collector) processClass(class string) []depnode.Node {
	cls, ok := c.Provider.GetClass(class)
	if !ok {
		return nil
	}

	var found []depnode.Node
	for _, a := range cls.Ancestors {
		found = append(found, discover(a.Type, c.Provider)...)
	}
	for _, r := range cls.Requirements {
		found = append(found, discover(r.Type, c.Provider)...)
	}

	// Interface-method forcing (spec.md §4.5): for every method an
	// ancestor interface declares that this class itself provides, force
	// the corresponding Method/SMethod node into the set.
	for _, a := range cls.Ancestors {
		if a.Kind != provider.InterfaceKind {
			continue
		}
		if provider.IsBuiltin(depnode.NewClass(a.Name), c.Provider, &c.Cfg.Builtin) {
			continue
		}
		iface, ok := c.Provider.GetClass(a.Name)
		if !ok {
			continue
		}
		for name := range iface.Methods {
			if own, ok := cls.Methods[name]; ok && own.Origin == class {
				found = append(found, depnode.NewMethod(class, name))
			}
		}
		for name := range iface.StaticMethods {
			if own, ok := cls.StaticMethods[name]; ok && own.Origin == class {
				found = append(found, depnode.NewSMethod(class, name))
			}
		}
	}
	return found
}

// origin returns the class that first declared the member n refers to,
// defaulting to n.Class itself when the provider leaves Origin unset or
// the member can't be resolved.
func (c *Collector) origin(n depnode.Node) string {
	cls, ok := c.Provider.GetClass(n.Class)
	if !ok {
		return n.Class
	}
	var origin string
	switch n.Kind {
	case depnode.Method:
		if md, ok := cls.Methods[n.Name]; ok {
			origin = md.Origin
		}
	case depnode.SMethod:
		if md, ok := cls.StaticMethods[n.Name]; ok {
			origin = md.Origin
		}
	case depnode.Prop:
		if pd, ok := cls.Properties[n.Name]; ok {
			origin = pd.Origin
		}
	case depnode.SProp:
		if pd, ok := cls.StaticProperties[n.Name]; ok {
			origin = pd.Origin
		}
	case depnode.Const:
		if tc, ok := cls.TypeConsts[n.Name]; ok {
			origin = tc.Origin
		} else if cd, ok := cls.Consts[n.Name]; ok {
			origin = cd.Origin
		}
	}
	if origin == "" {
		return n.Class
	}
	return origin
}

func (c *Collector) group(set map[depnode.Node]bool) *Result {
	types := make(map[string][]depnode.Node)
	var globals []depnode.Node

	ensure := func(name string) {
		if _, ok := types[name]; !ok {
			types[name] = []depnode.Node{}
		}
	}

	for n := range set {
		switch n.Kind {
		case depnode.Class:
			ensure(n.Class)
		case depnode.Method, depnode.SMethod, depnode.Prop, depnode.SProp, depnode.Const:
			if c.origin(n) == n.Class {
				ensure(n.Class)
				types[n.Class] = append(types[n.Class], n)
			}
		case depnode.Cstr:
			ensure(n.Class)
			types[n.Class] = append(types[n.Class], n)
		case depnode.Fun, depnode.FunName, depnode.GConst, depnode.GConstName, depnode.RecordDef:
			globals = append(globals, n)
		case depnode.AllMembers, depnode.Extends:
			// Only ever drove closure; dropped before synthesis.
		}
	}

	for name := range types {
		sort.Slice(types[name], func(i, j int) bool {
			return types[name][i].String() < types[name][j].String()
		})
	}
	sort.Slice(globals, func(i, j int) bool { return globals[i].String() < globals[j].String() })

	return &Result{Types: types, Globals: globals}
}
