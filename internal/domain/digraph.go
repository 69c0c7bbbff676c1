package domain

import (
	"fmt"
	"math"
	"slices"
)

// MaxVertices bounds the vertex count NewDigraph accepts
const MaxVertices = math.MaxInt32

// Edge is a directed hyponym -> hypernym link
type Edge struct {
	From int // more specific concept
	To   int // more general concept
}

// Digraph is an immutable directed graph over vertices [0, V).
// The adjacency lists are owned by the graph and never handed out,
// so a Digraph can be shared between goroutines without locking.
type Digraph struct {
	adj [][]int
	e   int
}

// NewDigraph builds a graph with v vertices from an edge list.
// The edges are copied; later changes to the slice do not affect the graph.
// Self-loops and parallel edges are kept as given.
func NewDigraph(v int, edges []Edge) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidArgument, v)
	}
	if v > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrInvalidArgument, v, MaxVertices)
	}

	outdegree := make([]int, v)
	for _, edge := range edges {
		if err := checkVertex(edge.From, v); err != nil {
			return nil, err
		}
		if err := checkVertex(edge.To, v); err != nil {
			return nil, err
		}
		outdegree[edge.From]++
	}

	adj := make([][]int, v)
	for i, n := range outdegree {
		if n > 0 {
			adj[i] = make([]int, 0, n)
		}
	}
	for _, edge := range edges {
		adj[edge.From] = append(adj[edge.From], edge.To)
	}

	return &Digraph{adj: adj, e: len(edges)}, nil
}

// V returns the number of vertices
func (g *Digraph) V() int {
	return len(g.adj)
}

// E returns the number of edges
func (g *Digraph) E() int {
	return g.e
}

// Adj returns a copy of the out-neighbors of v
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}
	return slices.Clone(g.adj[v]), nil
}

// Outdegree returns the number of edges leaving v
func (g *Digraph) Outdegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, err
	}
	return len(g.adj[v]), nil
}

// Roots returns the vertices with no outgoing edge, in ascending order
func (g *Digraph) Roots() []int {
	var roots []int
	for v, out := range g.adj {
		if len(out) == 0 {
			roots = append(roots, v)
		}
	}
	return roots
}

// Edges returns every edge of the graph, grouped by origin vertex
func (g *Digraph) Edges() []Edge {
	edges := make([]Edge, 0, g.e)
	for v, out := range g.adj {
		for _, w := range out {
			edges = append(edges, Edge{From: v, To: w})
		}
	}
	return edges
}

// Clone returns an independent copy of the graph
func (g *Digraph) Clone() *Digraph {
	adj := make([][]int, len(g.adj))
	for v, out := range g.adj {
		adj[v] = slices.Clone(out)
	}
	return &Digraph{adj: adj, e: g.e}
}

func (g *Digraph) validate(v int) error {
	return checkVertex(v, len(g.adj))
}

func checkVertex(v, n int) error {
	if v < 0 || v >= n {
		return &VertexError{Vertex: v, V: n}
	}
	return nil
}
