package depgraph

import (
	"testing"

	"github.com/anthropics/hackslice/internal/depnode"
)

func TestAddEdgeAndSuccessorsPredecessors(t *testing.T) {
	g := New()
	a := depnode.NewFun("\\a")
	b := depnode.NewFun("\\b")
	g.AddEdge(a, b)

	if got := g.Successors(a); len(got) != 1 || got[0] != b {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}
	if got := g.Predecessors(b); len(got) != 1 || got[0] != a {
		t.Errorf("Predecessors(b) = %v, want [a]", got)
	}
}

func TestExplain_ReverseBFS(t *testing.T) {
	g := New()
	entry := depnode.NewFun("\\entry")
	mid := depnode.NewClass("Mid")
	leaf := depnode.NewClass("Leaf")
	g.AddEdge(entry, mid)
	g.AddEdge(mid, leaf)

	got := g.Explain(leaf)
	want := []depnode.Node{leaf, mid, entry}
	if len(got) != len(want) {
		t.Fatalf("Explain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Explain[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExplain_NoPredecessorsReturnsJustNode(t *testing.T) {
	g := New()
	n := depnode.NewFun("\\isolated")
	got := g.Explain(n)
	if len(got) != 1 || got[0] != n {
		t.Errorf("Explain(isolated) = %v, want [isolated]", got)
	}
}
