package depnode

import "testing"

func TestIsClassDependency(t *testing.T) {
	tests := []struct {
		name string
		n    Node
		want bool
	}{
		{"class", NewClass("Foo"), true},
		{"method", NewMethod("Foo", "bar"), true},
		{"smethod", NewSMethod("Foo", "bar"), true},
		{"prop", NewProp("Foo", "p"), true},
		{"sprop", NewSProp("Foo", "p"), true},
		{"const", NewConst("Foo", "K"), true},
		{"cstr", NewCstr("Foo"), true},
		{"allmembers", NewAllMembers("Foo"), true},
		{"extends", NewExtends("Foo"), true},
		{"fun", NewFun("\\foo"), false},
		{"funname", NewFunName("\\foo"), false},
		{"gconst", NewGConst("\\FOO"), false},
		{"gconstname", NewGConstName("\\FOO"), false},
		{"recorddef", NewRecordDef("\\R"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClassDependency(tt.n); got != tt.want {
				t.Errorf("IsClassDependency(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestOwnerClass(t *testing.T) {
	got, err := OwnerClass(NewMethod("Foo", "bar"))
	if err != nil {
		t.Fatalf("OwnerClass: %v", err)
	}
	if got != "Foo" {
		t.Errorf("got %q, want Foo", got)
	}

	if _, err := OwnerClass(NewFun("\\foo")); err == nil {
		t.Error("expected error for global node")
	}
}

func TestGlobalName(t *testing.T) {
	got, err := GlobalName(NewFun("\\foo"))
	if err != nil {
		t.Fatalf("GlobalName: %v", err)
	}
	if got != "\\foo" {
		t.Errorf("got %q, want \\foo", got)
	}

	if _, err := GlobalName(NewMethod("Foo", "bar")); err == nil {
		t.Error("expected error for class-bound node")
	}
}

func TestIsRelevant_FunctionEntry(t *testing.T) {
	entry := NewFunctionEntry("\\foo")

	if !IsRelevant(entry, NewFun("\\foo")) {
		t.Error("expected Fun(foo) to be relevant")
	}
	if !IsRelevant(entry, NewFunName("\\foo")) {
		t.Error("expected FunName(foo) to be relevant")
	}
	if IsRelevant(entry, NewFun("\\bar")) {
		t.Error("expected Fun(bar) to be irrelevant")
	}
	if IsRelevant(entry, NewClass("Foo")) {
		t.Error("expected Class(Foo) to be irrelevant for a function entry")
	}
}

func TestIsRelevant_MethodEntry(t *testing.T) {
	entry := NewMethodEntry("C", "m")

	if !IsRelevant(entry, NewMethod("C", "other")) {
		t.Error("expected any class-bound node owned by C to be relevant")
	}
	if !IsRelevant(entry, NewProp("C", "p")) {
		t.Error("expected Prop(C::p) to be relevant")
	}
	if IsRelevant(entry, NewMethod("D", "m")) {
		t.Error("expected nodes owned by a different class to be irrelevant")
	}
	if IsRelevant(entry, NewFun("\\foo")) {
		t.Error("expected a global node to be irrelevant for a method entry")
	}
}

func TestEntryPointNodes(t *testing.T) {
	fnNodes := EntryPointNodes(NewFunctionEntry("\\foo"))
	if len(fnNodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(fnNodes))
	}

	methodNodes := EntryPointNodes(NewMethodEntry("C", "m"))
	if len(methodNodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(methodNodes))
	}
}
