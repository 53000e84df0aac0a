// Package layout implements the Namespace Layout & Emission stage of
// spec.md §4.6: it arranges a flat table of fully qualified declaration
// names into a namespace tree and serializes it into the host language's
// two-file (top-level / namespaced) source convention.
package layout

import "strings"

// NamespaceTree is the recursive structure spec.md §3 describes:
// "{ subnamespaces: name -> node, decls: set<name> }". Decls holds the
// full, original fully qualified name of each declaration placed at this
// level rather than just its bare leaf segment, so callers can look the
// text up in a DeclTable without reconstructing the path.
type NamespaceTree struct {
	Subnamespaces map[string]*NamespaceTree
	Decls         map[string]bool
}

// NewNamespaceTree returns an empty tree node.
func NewNamespaceTree() *NamespaceTree {
	return &NamespaceTree{
		Subnamespaces: make(map[string]*NamespaceTree),
		Decls:         make(map[string]bool),
	}
}

// segments splits a fully qualified name like `\N\foo` into ["N", "foo"].
// A name with no namespace separator (`\foo`) yields a single segment.
func segments(fqName string) []string {
	trimmed := strings.TrimPrefix(fqName, "\\")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\\")
}

// insert walks fqName's namespace segments, creating intermediate nodes
// as needed, and places fqName itself into the final segment's decl set.
func (t *NamespaceTree) insert(fqName string) {
	segs := segments(fqName)
	if len(segs) == 0 {
		return
	}
	node := t
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node.Subnamespaces[seg]
		if !ok {
			child = NewNamespaceTree()
			node.Subnamespaces[seg] = child
		}
		node = child
	}
	node.Decls[fqName] = true
}

// BuildTree places every name in names into a fresh NamespaceTree,
// dropping any name whose first namespace segment equals rootNamespace
// (spec.md §4.6: builtins have already been filtered, but the check is
// retained defensively).
func BuildTree(names []string, rootNamespace string) *NamespaceTree {
	tree := NewNamespaceTree()
	for _, name := range names {
		segs := segments(name)
		if len(segs) == 0 {
			continue
		}
		if rootNamespace != "" && segs[0] == rootNamespace {
			continue
		}
		tree.insert(name)
	}
	return tree
}
