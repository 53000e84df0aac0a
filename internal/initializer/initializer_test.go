package initializer

import (
	"strings"
	"testing"

	"github.com/anthropics/hackslice/internal/decltype"
	"github.com/anthropics/hackslice/internal/provider"
)

type fakeProvider struct {
	classes  map[string]*provider.ClassDecl
	typedefs map[string]*provider.TypedefDecl
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		classes:  make(map[string]*provider.ClassDecl),
		typedefs: make(map[string]*provider.TypedefDecl),
	}
}

func (f *fakeProvider) GetClass(name string) (*provider.ClassDecl, bool) {
	c, ok := f.classes[name]
	return c, ok
}
func (f *fakeProvider) GetTypedef(name string) (*provider.TypedefDecl, bool) {
	d, ok := f.typedefs[name]
	return d, ok
}
func (f *fakeProvider) GetFun(name string) (*provider.FunDecl, bool)       { return nil, false }
func (f *fakeProvider) GetGConst(name string) (*provider.GConstDecl, bool) { return nil, false }

func TestDefault_Primitives(t *testing.T) {
	p := newFakeProvider()
	tests := []struct {
		name string
		typ  decltype.Type
		want string
	}{
		{"nullable", decltype.Nullable(decltype.Prim(decltype.KindInt)), "null"},
		{"int", decltype.Prim(decltype.KindInt), "0"},
		{"float", decltype.Prim(decltype.KindFloat), "0.0"},
		{"bool", decltype.Prim(decltype.KindBool), "false"},
		{"string", decltype.Prim(decltype.KindString), "\"\""},
		{"arraykey", decltype.Prim(decltype.KindArraykey), "\"\""},
		{"mixed", decltype.Prim(decltype.KindMixedOrAny), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default(tt.typ, p)
			if err != nil {
				t.Fatalf("Default: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefault_BuiltinContainer(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindBuiltinContainer, Name: "vec", Args: []decltype.Type{decltype.Prim(decltype.KindInt)}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "vec[]" {
		t.Errorf("got %q, want vec[]", got)
	}
}

func TestDefault_CollectionClass(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindCollectionClass, Name: "Vector", Args: []decltype.Type{decltype.Prim(decltype.KindInt)}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "Vector {}" {
		t.Errorf("got %q, want Vector {}", got)
	}
}

func TestDefault_Pair(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindPair, Args: []decltype.Type{decltype.Prim(decltype.KindInt), decltype.Prim(decltype.KindString)}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "Pair {0, \"\"}" {
		t.Errorf("got %q", got)
	}
}

func TestDefault_Classname(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindClassname, Args: []decltype.Type{decltype.Named("C")}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "C::class" {
		t.Errorf("got %q, want C::class", got)
	}
}

func TestDefault_Tuple(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindTuple, Args: []decltype.Type{decltype.Prim(decltype.KindInt), decltype.Prim(decltype.KindBool)}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "tuple(0, false)" {
		t.Errorf("got %q", got)
	}
}

func TestDefault_ShapeOmitsOptionalFields(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindShape, Fields: []decltype.ShapeField{
		{Name: "x", Type: decltype.Prim(decltype.KindInt)},
		{Name: "y", Type: decltype.Prim(decltype.KindString), Optional: true},
	}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "shape('x' => 0)" {
		t.Errorf("got %q", got)
	}
}

func TestDefault_ShapeOnlyOptionalFieldsClosed(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindShape, Fields: []decltype.ShapeField{
		{Name: "y", Type: decltype.Prim(decltype.KindString), Optional: true},
	}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "shape()" {
		t.Errorf("got %q, want shape()", got)
	}
}

func TestDefault_ShapeOnlyOptionalFieldsOpen(t *testing.T) {
	p := newFakeProvider()
	typ := decltype.Type{Kind: decltype.KindShape, Open: true, Fields: []decltype.ShapeField{
		{Name: "y", Type: decltype.Prim(decltype.KindString), Optional: true},
	}}
	got, err := Default(typ, p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "shape(...)" {
		t.Errorf("got %q, want shape(...)", got)
	}
}

func TestDefault_NamedClassPicksNonReservedConstant(t *testing.T) {
	p := newFakeProvider()
	p.classes["E"] = &provider.ClassDecl{
		Name:       "E",
		ConstOrder: []string{"class", "A", "B"},
		Consts: map[string]provider.ConstDecl{
			"class": {Name: "class"},
			"A":     {Name: "A"},
			"B":     {Name: "B"},
		},
	}
	got, err := Default(decltype.Named("E"), p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "E::A" {
		t.Errorf("got %q, want E::A", got)
	}
}

func TestDefault_NamedClassOnlyReservedConstantUnsupported(t *testing.T) {
	p := newFakeProvider()
	p.classes["E"] = &provider.ClassDecl{
		Name:       "E",
		ConstOrder: []string{"class"},
		Consts:     map[string]provider.ConstDecl{"class": {Name: "class"}},
	}
	_, err := Default(decltype.Named("E"), p)
	if err == nil {
		t.Fatal("expected unsupported error")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected unsupported error, got %v", err)
	}
}

func TestDefault_NamedTypedefRecurses(t *testing.T) {
	p := newFakeProvider()
	p.typedefs["TInt"] = &provider.TypedefDecl{Name: "TInt", Target: decltype.Prim(decltype.KindInt)}
	got, err := Default(decltype.Named("TInt"), p)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got != "0" {
		t.Errorf("got %q, want 0", got)
	}
}

func TestDefault_NamedUnresolvedIsDependencyNotFound(t *testing.T) {
	p := newFakeProvider()
	_, err := Default(decltype.Named("\\Unknown"), p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "dependency not found") {
		t.Errorf("expected dependency not found error, got %v", err)
	}
}

func TestDefault_Unsupported(t *testing.T) {
	p := newFakeProvider()
	_, err := Default(decltype.Unsupported("resource"), p)
	if err == nil {
		t.Fatal("expected error")
	}
}
