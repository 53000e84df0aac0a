package provider

import (
	"strings"

	"github.com/anthropics/hackslice/internal/config"
	"github.com/anthropics/hackslice/internal/depnode"
)

// IsBuiltin resolves n against p, answering whether it is part of the
// host language's standard library and therefore must never be added to
// the dependency set (spec.md §3's "builtin" classification). Functions
// and classes are builtin when their declaring file ends in
// cfg.HeaderExtension; constants are builtin iff their name matches
// cfg.PseudoConstants (spec.md §4.1: "constants are builtin iff they
// match the pseudo-constant registry" — the file-extension check is not
// consulted for them).
func IsBuiltin(n depnode.Node, p DeclProvider, cfg *config.BuiltinConfig) bool {
	switch n.Kind {
	case depnode.Fun, depnode.FunName:
		fn, ok := p.GetFun(n.Name)
		if !ok {
			return false
		}
		return hasHeaderExtension(fn.File, cfg.HeaderExtension)

	case depnode.GConst, depnode.GConstName:
		return isPseudoConstant(n.Name, cfg.PseudoConstants)

	case depnode.RecordDef:
		return false

	case depnode.Class:
		return isBuiltinClassOrTypedef(n.Class, p, cfg)

	default:
		if !depnode.IsClassDependency(n) {
			return false
		}
		return isBuiltinClassOrTypedef(n.Class, p, cfg)
	}
}

// isBuiltinClassOrTypedef resolves name against p, trying a class first
// and falling back to a typedef — Class(N) is ambiguous between the two
// (synth.SynthesizeClass resolves the same way), so builtin
// classification must consult both.
func isBuiltinClassOrTypedef(name string, p DeclProvider, cfg *config.BuiltinConfig) bool {
	if cls, ok := p.GetClass(name); ok {
		return hasHeaderExtension(cls.File, cfg.HeaderExtension)
	}
	if td, ok := p.GetTypedef(name); ok {
		return hasHeaderExtension(td.File, cfg.HeaderExtension)
	}
	return false
}

func hasHeaderExtension(file, ext string) bool {
	if ext == "" {
		return false
	}
	return strings.HasSuffix(file, ext)
}

func isPseudoConstant(name string, registry []string) bool {
	for _, p := range registry {
		if p == name {
			return true
		}
	}
	return false
}
