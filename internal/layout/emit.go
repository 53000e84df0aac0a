package layout

import (
	"sort"
	"strings"

	"github.com/anthropics/hackslice/internal/config"
	"github.com/anthropics/hackslice/internal/provider"
)

// DeclTable maps a fully qualified declaration name to its already
// rendered source text (spec.md §3's decl table, after folding).
type DeclTable map[string]string

// Emit lays out names into a namespace tree and serializes the result
// per spec.md §4.6: a top-level file (header, helper, root decls) and a
// namespaced file (header, recursive namespace blocks), each run through
// fmtr best-effort, joined with multi-file markers when both carry real
// content.
func Emit(names []string, decls DeclTable, helperDecl string, rootNamespace string, cfg config.LayoutConfig, fmtr provider.Formatter) (string, error) {
	tree := BuildTree(names, rootNamespace)

	topDecls := sortedNames(tree.Decls)
	var topParts []string
	topParts = append(topParts, cfg.HeaderLine, helperDecl)
	for _, name := range topDecls {
		if text, ok := decls[name]; ok {
			topParts = append(topParts, text)
		}
	}
	topText := strings.Join(topParts, "\n\n")

	var nsBlocks []string
	for _, childName := range sortedKeys(tree.Subnamespaces) {
		nsBlocks = append(nsBlocks, renderNamespace(childName, tree.Subnamespaces[childName], decls))
	}

	if len(nsBlocks) == 0 {
		return format(fmtr, topText), nil
	}

	nsText := strings.Join(append([]string{cfg.HeaderLine}, nsBlocks...), "\n\n")

	formattedTop := format(fmtr, topText)
	formattedNs := format(fmtr, nsText)

	return strings.Join([]string{
		cfg.ToplevelMarker,
		formattedTop,
		cfg.NamespacesMarker,
		formattedNs,
	}, "\n"), nil
}

// renderNamespace emits `namespace name { ... }`, recursing into child
// subnamespaces before closing the block.
func renderNamespace(name string, node *NamespaceTree, decls DeclTable) string {
	var body []string
	for _, declName := range sortedNames(node.Decls) {
		if text, ok := decls[declName]; ok {
			body = append(body, text)
		}
	}
	for _, childName := range sortedKeys(node.Subnamespaces) {
		body = append(body, renderNamespace(childName, node.Subnamespaces[childName], decls))
	}
	return "namespace " + name + " {\n" + strings.Join(body, "\n\n") + "\n}"
}

// format runs text through fmtr, falling back to the raw text on any
// formatting failure (spec.md §4.6: "best-effort; fallible").
func format(fmtr provider.Formatter, text string) string {
	if fmtr == nil {
		return text
	}
	formatted, err := fmtr.Format(text)
	if err != nil {
		return text
	}
	return formatted
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]*NamespaceTree) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
