package errs

import (
	"fmt"
	"strings"
	"testing"
)

func TestTranslate_NotFound(t *testing.T) {
	got := Translate(&NotFound{Entry: "\\N\\foo"})
	if got != "Not found!" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_InvalidInput(t *testing.T) {
	got := Translate(&InvalidInput{Got: "a property"})
	want := "Unrecognized input. Expected: fully qualified function name or [fully qualified class name]::[method_name]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslate_DependencyNotFound(t *testing.T) {
	got := Translate(&DependencyNotFound{Description: "class \\Foo"})
	if got != "Dependency not found: class \\Foo" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_UnsupportedIncludesStack(t *testing.T) {
	got := Translate(NewUnsupported("resource type"))
	if !strings.Contains(got, "unsupported: resource type") {
		t.Errorf("expected message in output, got %q", got)
	}
	if !strings.Contains(got, "goroutine") {
		t.Errorf("expected a captured stack trace, got %q", got)
	}
}

func TestTranslate_UnexpectedDependencyIncludesStack(t *testing.T) {
	got := Translate(NewUnexpectedDependency("GlobalName called on class-bound node"))
	if !strings.Contains(got, "unexpected dependency:") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "goroutine") {
		t.Errorf("expected a captured stack trace, got %q", got)
	}
}

func TestTranslate_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("during synth: %w", &DependencyNotFound{Description: "fun \\bar"})
	got := Translate(wrapped)
	if got != "Dependency not found: fun \\bar" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_Unrecognized(t *testing.T) {
	got := Translate(fmt.Errorf("boom"))
	if got != "boom" {
		t.Errorf("got %q", got)
	}
}
