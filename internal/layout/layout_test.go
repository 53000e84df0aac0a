package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/anthropics/hackslice/internal/config"
)

type fakeFormatter struct {
	fail bool
}

func (f *fakeFormatter) Format(text string) (string, error) {
	if f.fail {
		return "", errors.New("format error")
	}
	return "FORMATTED:" + text, nil
}

func TestBuildTree_NestedAndRoot(t *testing.T) {
	tree := BuildTree([]string{`\N\foo`, `\N\M\C`, `\bare`}, "HH")

	if !tree.Decls[`\bare`] {
		t.Error("expected root decl \\bare")
	}
	n, ok := tree.Subnamespaces["N"]
	if !ok {
		t.Fatal("expected subnamespace N")
	}
	if !n.Decls[`\N\foo`] {
		t.Error("expected \\N\\foo under N")
	}
	m, ok := n.Subnamespaces["M"]
	if !ok {
		t.Fatal("expected subnamespace N\\M")
	}
	if !m.Decls[`\N\M\C`] {
		t.Error("expected \\N\\M\\C under N\\M")
	}
}

func TestBuildTree_DropsBuiltinRoot(t *testing.T) {
	tree := BuildTree([]string{`\HH\Vector`, `\N\foo`}, "HH")
	if _, ok := tree.Subnamespaces["HH"]; ok {
		t.Error("expected HH-rooted name to be dropped defensively")
	}
	if _, ok := tree.Subnamespaces["N"]; !ok {
		t.Error("expected N to survive")
	}
}

func TestEmit_RootOnlyReturnsSingleFile(t *testing.T) {
	decls := DeclTable{`\foo`: "function foo(): int { throw new Exception(); }"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\foo`}, decls, "function default_factory(): nothing { throw new Exception(); }", "HH", cfg, &fakeFormatter{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.Contains(out, cfg.ToplevelMarker) {
		t.Error("expected no multi-file marker when the namespaced file is empty")
	}
	if !strings.Contains(out, "foo(): int") {
		t.Error("expected foo's decl text in output")
	}
	if !strings.Contains(out, "default_factory") {
		t.Error("expected helper decl in output")
	}
}

func TestEmit_NamespacedContentUsesMarkers(t *testing.T) {
	decls := DeclTable{`\N\foo`: "function foo(): int { throw new Exception(); }"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\N\foo`}, decls, "function default_factory(): nothing { throw new Exception(); }", "HH", cfg, &fakeFormatter{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, cfg.ToplevelMarker) || !strings.Contains(out, cfg.NamespacesMarker) {
		t.Error("expected both multi-file markers")
	}
	if !strings.Contains(out, "namespace N {") {
		t.Error("expected a namespace N block")
	}
	if !strings.Contains(out, "foo(): int") {
		t.Error("expected foo's decl text nested under the namespace block")
	}
}

func TestEmit_NestedNamespaces(t *testing.T) {
	decls := DeclTable{`\N\M\C`: "class C {\n}"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\N\M\C`}, decls, "helper", "HH", cfg, &fakeFormatter{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "namespace N {") || !strings.Contains(out, "namespace M {") {
		t.Error("expected recursive namespace blocks for N and N\\M")
	}
}

func TestEmit_FormatterFailureFallsBackToRawText(t *testing.T) {
	decls := DeclTable{`\foo`: "function foo(): int { throw new Exception(); }"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\foo`}, decls, "helper", "HH", cfg, &fakeFormatter{fail: true})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.Contains(out, "FORMATTED:") {
		t.Error("expected raw text on formatter failure")
	}
	if !strings.Contains(out, "foo(): int") {
		t.Error("expected raw decl text still present")
	}
}

func TestEmit_NilFormatterUsesRawText(t *testing.T) {
	decls := DeclTable{`\foo`: "function foo(): int { throw new Exception(); }"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\foo`}, decls, "helper", "HH", cfg, nil)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "foo(): int") {
		t.Error("expected raw decl text with a nil formatter")
	}
}

func TestEmit_BuiltinRootNeverAppears(t *testing.T) {
	decls := DeclTable{`\HH\Vector`: "class Vector {}"}
	cfg := config.DefaultConfig().Layout
	out, err := Emit([]string{`\HH\Vector`}, decls, "helper", "HH", cfg, &fakeFormatter{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.Contains(out, "namespace HH") {
		t.Error("builtin-rooted namespace must never appear in output")
	}
}
