package domain

import "fmt"

const unreached = -1

// DistanceMap holds hop counts from a source set to every vertex it reaches.
// It is built per query and never shared between queries.
type DistanceMap struct {
	dist    []int
	source  []int
	reached []int
}

// DistancesFrom runs a breadth-first search seeded with every source at
// distance 0. All sources are enqueued before the first dequeue, so the cost
// is O(V+E) however many sources are given.
func (g *Digraph) DistancesFrom(sources ...int) (*DistanceMap, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: empty source set", ErrInvalidArgument)
	}
	for _, s := range sources {
		if err := g.validate(s); err != nil {
			return nil, err
		}
	}

	m := &DistanceMap{
		dist:    make([]int, len(g.adj)),
		source:  make([]int, len(g.adj)),
		reached: make([]int, 0, len(sources)),
	}
	for i := range m.dist {
		m.dist[i] = unreached
	}

	// reached doubles as the FIFO queue: head walks it while the tail grows
	for _, s := range sources {
		if m.dist[s] != unreached {
			continue
		}
		m.dist[s] = 0
		m.source[s] = s
		m.reached = append(m.reached, s)
	}

	for head := 0; head < len(m.reached); head++ {
		v := m.reached[head]
		for _, w := range g.adj[v] {
			if m.dist[w] != unreached {
				continue
			}
			m.dist[w] = m.dist[v] + 1
			m.source[w] = m.source[v]
			m.reached = append(m.reached, w)
		}
	}

	return m, nil
}

// Distance returns the hop count to v; false means v is unreachable
func (m *DistanceMap) Distance(v int) (int, bool) {
	if v < 0 || v >= len(m.dist) || m.dist[v] == unreached {
		return 0, false
	}
	return m.dist[v], true
}

// Source returns the source vertex whose search reached v first
func (m *DistanceMap) Source(v int) (int, bool) {
	if _, ok := m.Distance(v); !ok {
		return 0, false
	}
	return m.source[v], true
}

// Reached returns every reachable vertex once, in non-decreasing distance order
func (m *DistanceMap) Reached() []int {
	out := make([]int, len(m.reached))
	copy(out, m.reached)
	return out
}

// Len returns the number of reachable vertices
func (m *DistanceMap) Len() int {
	return len(m.reached)
}
