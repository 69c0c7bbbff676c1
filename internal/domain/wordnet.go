package domain

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/tidwall/btree"
)

// NoAncestor is the label SCA returns when two nouns share no ancestor
const NoAncestor = "No Shortest Common Ancestor"

// Synset is one set of synonymous nouns sharing a vertex
type Synset struct {
	ID    int
	Nouns []string
	Gloss string
}

// Label returns the display label of the synset
func (s Synset) Label() string {
	return strings.Join(s.Nouns, " ")
}

// Hypernym lists the more general synsets of one synset
type Hypernym struct {
	Synset    int
	Hypernyms []int
}

// NounPath is a shortest ancestral path between two nouns
type NounPath struct {
	Ancestor      int
	AncestorLabel string
	Length        int
	From          int // synset of the first noun on the path
	To            int // synset of the second noun on the path
}

// WordNet maps nouns to synsets and answers distance queries through SAP.
// It is immutable after NewWordNet returns.
type WordNet struct {
	nouns   btree.Map[string, []int]
	synsets []Synset
	sap     *SAP
}

// NewWordNet builds the noun index and the hypernym graph.
// Synset IDs must cover [0, len(synsets)) exactly once.
func NewWordNet(synsets []Synset, hypernyms []Hypernym) (*WordNet, error) {
	wn := &WordNet{synsets: make([]Synset, len(synsets))}
	seen := make([]bool, len(synsets))

	for _, s := range synsets {
		if s.ID < 0 || s.ID >= len(synsets) {
			return nil, fmt.Errorf("%w: synset id %d outside [0, %d)", ErrInvalidArgument, s.ID, len(synsets))
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: duplicate synset id %d", ErrInvalidArgument, s.ID)
		}
		seen[s.ID] = true
		wn.synsets[s.ID] = Synset{ID: s.ID, Nouns: slices.Clone(s.Nouns), Gloss: s.Gloss}

		for _, noun := range s.Nouns {
			wn.addNoun(noun, s.ID)
		}
	}

	var edges []Edge
	for _, h := range hypernyms {
		for _, parent := range h.Hypernyms {
			edges = append(edges, Edge{From: h.Synset, To: parent})
		}
	}
	g, err := NewDigraph(len(synsets), edges)
	if err != nil {
		return nil, fmt.Errorf("building hypernym graph: %w", err)
	}

	wn.sap, err = NewSAP(g)
	if err != nil {
		return nil, err
	}
	return wn, nil
}

// addNoun unions id into the noun's sorted synset set
func (wn *WordNet) addNoun(noun string, id int) {
	if noun == "" {
		return
	}
	ids, _ := wn.nouns.Get(noun)
	pos, found := slices.BinarySearch(ids, id)
	if found {
		return
	}
	wn.nouns.Set(noun, slices.Insert(ids, pos, id))
}

// IsNoun reports whether word is a WordNet noun
func (wn *WordNet) IsNoun(word string) bool {
	_, ok := wn.nouns.Get(word)
	return ok
}

// Nouns returns a restartable iterator over all nouns in sorted order
func (wn *WordNet) Nouns() iter.Seq[string] {
	return func(yield func(string) bool) {
		wn.nouns.Scan(func(noun string, _ []int) bool {
			return yield(noun)
		})
	}
}

// NounCount returns the number of distinct nouns
func (wn *WordNet) NounCount() int {
	return wn.nouns.Len()
}

// SynsetCount returns the number of synsets
func (wn *WordNet) SynsetCount() int {
	return len(wn.synsets)
}

// Graph returns a copy of the hypernym graph
func (wn *WordNet) Graph() *Digraph {
	return wn.sap.g.Clone()
}

// Synsets returns the synset IDs a noun belongs to
func (wn *WordNet) Synsets(noun string) ([]int, error) {
	ids, err := wn.lookup(noun)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ids), nil
}

// Label returns the display label of a synset
func (wn *WordNet) Label(id int) (string, error) {
	s, err := wn.synset(id)
	if err != nil {
		return "", err
	}
	return s.Label(), nil
}

// Gloss returns the definition of a synset
func (wn *WordNet) Gloss(id int) (string, error) {
	s, err := wn.synset(id)
	if err != nil {
		return "", err
	}
	return s.Gloss, nil
}

// SCA returns the label of a shortest common ancestor of noun1 and noun2,
// or NoAncestor when the nouns share none.
func (wn *WordNet) SCA(noun1, noun2 string) (string, error) {
	p, err := wn.Path(noun1, noun2)
	if errors.Is(err, ErrNoCommonAncestor) {
		return NoAncestor, nil
	}
	if err != nil {
		return "", err
	}
	return p.AncestorLabel, nil
}

// Distance returns the shortest ancestral path length between noun1 and noun2
func (wn *WordNet) Distance(noun1, noun2 string) (int, error) {
	p, err := wn.Path(noun1, noun2)
	if err != nil {
		return 0, err
	}
	return p.Length, nil
}

// Path resolves the shortest ancestral path between the synsets of two nouns
func (wn *WordNet) Path(noun1, noun2 string) (*NounPath, error) {
	if noun1 == "" || noun2 == "" {
		return nil, fmt.Errorf("%w: both nouns are required", ErrNullInput)
	}
	a, err := wn.lookup(noun1)
	if err != nil {
		return nil, err
	}
	b, err := wn.lookup(noun2)
	if err != nil {
		return nil, err
	}

	p, err := wn.sap.Query(a, b)
	if err != nil {
		return nil, err
	}

	return &NounPath{
		Ancestor:      p.Ancestor,
		AncestorLabel: wn.synsets[p.Ancestor].Label(),
		Length:        p.Length,
		From:          p.From,
		To:            p.To,
	}, nil
}

func (wn *WordNet) lookup(noun string) ([]int, error) {
	if noun == "" {
		return nil, fmt.Errorf("%w: noun is empty", ErrNullInput)
	}
	ids, ok := wn.nouns.Get(noun)
	if !ok {
		return nil, &UnknownNounError{Noun: noun}
	}
	return ids, nil
}

func (wn *WordNet) synset(id int) (Synset, error) {
	if err := checkVertex(id, len(wn.synsets)); err != nil {
		return Synset{}, err
	}
	return wn.synsets[id], nil
}
