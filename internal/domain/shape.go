package domain

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// CheckRootedDAG reports whether g is acyclic with exactly one root.
// The engine never calls it; queries work on any finite graph.
func CheckRootedDAG(g *Digraph) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrNullInput)
	}

	dg := simple.NewDirectedGraph()
	for v := range g.adj {
		dg.AddNode(simple.Node(v))
	}
	for v, out := range g.adj {
		for _, w := range out {
			if v == w {
				return fmt.Errorf("%w: self-loop at vertex %d", ErrCycle, v)
			}
			dg.SetEdge(dg.NewEdge(simple.Node(v), simple.Node(w)))
		}
	}

	if _, err := topo.Sort(dg); err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return fmt.Errorf("%w: %d strongly connected component(s) with cycles", ErrCycle, len(cycles))
		}
		return fmt.Errorf("%w: %v", ErrCycle, err)
	}

	if roots := g.Roots(); len(roots) != 1 {
		return &RootsError{Roots: roots}
	}
	return nil
}
