package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wordnet/internal/domain"
	"wordnet/internal/ports"

	"github.com/stretchr/testify/require"
)

//	0 entity
//	1 animal         -> 0
//	2 plant          -> 0
//	3 dog domestic_dog -> 1
//	4 cat            -> 1
//	5 oak            -> 2
//	6 puppy          -> 3
//	7 island         (second root)
var (
	testSynsets = []domain.Synset{
		{ID: 0, Nouns: []string{"entity"}, Gloss: "that which exists"},
		{ID: 1, Nouns: []string{"animal"}, Gloss: "a living organism"},
		{ID: 2, Nouns: []string{"plant"}, Gloss: "a living organism lacking locomotion"},
		{ID: 3, Nouns: []string{"dog", "domestic_dog"}, Gloss: "a member of the genus Canis"},
		{ID: 4, Nouns: []string{"cat"}, Gloss: "feline mammal"},
		{ID: 5, Nouns: []string{"oak"}, Gloss: "a deciduous tree"},
		{ID: 6, Nouns: []string{"puppy"}, Gloss: "a young dog"},
		{ID: 7, Nouns: []string{"island"}, Gloss: "a land mass surrounded by water"},
	}
	testHypernyms = []domain.Hypernym{
		{Synset: 1, Hypernyms: []int{0}},
		{Synset: 2, Hypernyms: []int{0}},
		{Synset: 3, Hypernyms: []int{1}},
		{Synset: 4, Hypernyms: []int{1}},
		{Synset: 5, Hypernyms: []int{2}},
		{Synset: 6, Hypernyms: []int{3}},
	}
)

func testWordNet(t *testing.T) *domain.WordNet {
	t.Helper()
	wn, err := domain.NewWordNet(testSynsets, testHypernyms)
	require.NoError(t, err)
	return wn
}

// fakeSource is an in-memory TaxonomySource that counts reads
type fakeSource struct {
	synsets     []domain.Synset
	hypernyms   []domain.Hypernym
	fingerprint string
	err         error
	reads       int
}

var _ ports.TaxonomySource = (*fakeSource)(nil)

func newFakeSource() *fakeSource {
	return &fakeSource{synsets: testSynsets, hypernyms: testHypernyms, fingerprint: "v1"}
}

func (s *fakeSource) Synsets(ctx context.Context) ([]domain.Synset, error) {
	s.reads++
	return s.synsets, s.err
}

func (s *fakeSource) Hypernyms(ctx context.Context) ([]domain.Hypernym, error) {
	return s.hypernyms, s.err
}

func (s *fakeSource) Fingerprint() (string, error) {
	return s.fingerprint, nil
}

// fakeCache is an in-memory TaxonomyCache
type fakeCache struct {
	fakeSource
	stored   bool
	stores   int
	storeErr error
}

var _ ports.TaxonomyCache = (*fakeCache)(nil)

func (c *fakeCache) Open(name string) error { return nil }
func (c *fakeCache) Close() error          { return nil }

func (c *fakeCache) NeedsRebuild(fingerprint string) bool {
	return !c.stored || c.fingerprint != fingerprint
}

func (c *fakeCache) Store(ctx context.Context, synsets []domain.Synset, hypernyms []domain.Hypernym, fingerprint string) (*domain.SyncStats, error) {
	c.stores++
	if c.storeErr != nil {
		return nil, c.storeErr
	}
	c.synsets, c.hypernyms, c.fingerprint, c.stored = synsets, hypernyms, fingerprint, true
	return &domain.SyncStats{SynsetsStored: len(synsets), Rebuilt: true}, nil
}

func (c *fakeCache) SearchNouns(ctx context.Context, query string, limit int) ([]ports.NounMatch, error) {
	if c.err != nil {
		return nil, c.err
	}
	var out []ports.NounMatch
	for _, s := range c.synsets {
		for _, n := range s.Nouns {
			if strings.Contains(n, query) && len(out) < limit {
				out = append(out, ports.NounMatch{Noun: n, Synsets: []int{s.ID}})
			}
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
