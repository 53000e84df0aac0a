// Package depgraph records the edges the dependency collector walks
// while closing a slice, so a caller can later ask "why is this
// declaration in the slice" without needing a CLI (spec.md is silent on
// this; it is a supplemental feature grounded in the teacher's own
// internal/graph, adapted from code-dependency analysis to dependency
// collection).
package depgraph

import "github.com/anthropics/hackslice/internal/depnode"

// Graph is an adjacency-list graph over depnode.Node, built incrementally
// as the collector discovers edges.
type Graph struct {
	Edges        map[depnode.Node][]depnode.Node
	ReverseEdges map[depnode.Node][]depnode.Node
}

// New builds an empty Graph.
func New() *Graph {
	return &Graph{
		Edges:        make(map[depnode.Node][]depnode.Node),
		ReverseEdges: make(map[depnode.Node][]depnode.Node),
	}
}

// AddEdge records that from caused to to be added to the dependency set.
func (g *Graph) AddEdge(from, to depnode.Node) {
	g.Edges[from] = append(g.Edges[from], to)
	g.ReverseEdges[to] = append(g.ReverseEdges[to], from)
}

// Predecessors returns every node with a recorded edge into n.
func (g *Graph) Predecessors(n depnode.Node) []depnode.Node {
	return g.ReverseEdges[n]
}

// Successors returns every node n has a recorded edge into.
func (g *Graph) Successors(n depnode.Node) []depnode.Node {
	return g.Edges[n]
}

// Explain performs a reverse breadth-first search from n back toward
// whatever roots caused it to be collected, returning the visited nodes
// in BFS order (n included, first).
func (g *Graph) Explain(n depnode.Node) []depnode.Node {
	visited := map[depnode.Node]bool{n: true}
	queue := []depnode.Node{n}
	var result []depnode.Node

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, pred := range g.ReverseEdges[current] {
			if !visited[pred] {
				visited[pred] = true
				queue = append(queue, pred)
			}
		}
	}
	return result
}
