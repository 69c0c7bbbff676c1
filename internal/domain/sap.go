package domain

import "fmt"

// Path describes one shortest ancestral path between two vertex sets
type Path struct {
	Ancestor int // shortest common ancestor
	Length   int // hops from From to Ancestor plus hops from To to Ancestor
	From     int // endpoint in the first set
	To       int // endpoint in the second set
}

// SAP resolves shortest common ancestors over a private snapshot of a graph.
// It keeps no state between calls.
type SAP struct {
	g *Digraph
}

// NewSAP creates a resolver over a copy of g
func NewSAP(g *Digraph) (*SAP, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrNullInput)
	}
	return &SAP{g: g.Clone()}, nil
}

// V returns the number of vertices in the resolver's graph
func (s *SAP) V() int {
	return s.g.V()
}

// Length returns the length of the shortest ancestral path between v and w
func (s *SAP) Length(v, w int) (int, error) {
	p, err := s.Query([]int{v}, []int{w})
	if err != nil {
		return 0, err
	}
	return p.Length, nil
}

// Ancestor returns a shortest common ancestor of v and w.
// When several ancestors tie, any one of them may be returned.
func (s *SAP) Ancestor(v, w int) (int, error) {
	p, err := s.Query([]int{v}, []int{w})
	if err != nil {
		return 0, err
	}
	return p.Ancestor, nil
}

// LengthSet returns the length of the shortest ancestral path between any
// vertex of a and any vertex of b
func (s *SAP) LengthSet(a, b []int) (int, error) {
	p, err := s.Query(a, b)
	if err != nil {
		return 0, err
	}
	return p.Length, nil
}

// AncestorSet returns a shortest common ancestor of the vertex sets a and b
func (s *SAP) AncestorSet(a, b []int) (int, error) {
	p, err := s.Query(a, b)
	if err != nil {
		return 0, err
	}
	return p.Ancestor, nil
}

// Query runs one breadth-first search per side and picks the vertex
// reachable from both that minimizes the summed distance.
func (s *SAP) Query(a, b []int) (Path, error) {
	if err := s.checkSet("first", a); err != nil {
		return Path{}, err
	}
	if err := s.checkSet("second", b); err != nil {
		return Path{}, err
	}

	da, err := s.g.DistancesFrom(a...)
	if err != nil {
		return Path{}, err
	}
	db, err := s.g.DistancesFrom(b...)
	if err != nil {
		return Path{}, err
	}

	// Walk the smaller side; the other is an O(1) lookup
	walk, other := da, db
	if db.Len() < da.Len() {
		walk, other = db, da
	}

	best := Path{Ancestor: unreached, Length: unreached}
	for _, x := range walk.reached {
		dOther, ok := other.Distance(x)
		if !ok {
			continue
		}
		if total := walk.dist[x] + dOther; best.Length == unreached || total < best.Length {
			best.Ancestor = x
			best.Length = total
		}
	}

	if best.Ancestor == unreached {
		return Path{}, ErrNoCommonAncestor
	}

	best.From, _ = da.Source(best.Ancestor)
	best.To, _ = db.Source(best.Ancestor)
	return best, nil
}

func (s *SAP) checkSet(name string, set []int) error {
	if set == nil {
		return fmt.Errorf("%w: %s vertex set is nil", ErrNullInput, name)
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: %s vertex set is empty", ErrInvalidArgument, name)
	}
	for _, v := range set {
		if err := s.g.validate(v); err != nil {
			return err
		}
	}
	return nil
}
