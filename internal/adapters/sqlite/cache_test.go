package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordnet/internal/domain"
)

func openTestCache(t testing.TB) *Cache {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	c := NewCache("")
	if err := c.Open("synsets.txt|hypernyms.txt"); err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("failed to close cache: %v", err)
		}
	})
	return c
}

var testSynsets = []domain.Synset{
	{ID: 0, Nouns: []string{"entity"}, Gloss: "that which exists"},
	{ID: 1, Nouns: []string{"animal", "beast"}, Gloss: "a living organism"},
	{ID: 2, Nouns: []string{"dog", "domestic_dog"}, Gloss: "a member of the genus Canis, probably"},
	{ID: 3, Nouns: []string{"bark", "dog"}, Gloss: "the noise"},
}

var testHypernyms = []domain.Hypernym{
	{Synset: 1, Hypernyms: []int{0}},
	{Synset: 2, Hypernyms: []int{1}},
	{Synset: 3, Hypernyms: []int{0, 2}},
}

func TestCache_OpenUsesDataHome(t *testing.T) {
	c := openTestCache(t)

	want := filepath.Join(os.Getenv("XDG_DATA_HOME"), "wordnet", hashName("synsets.txt|hypernyms.txt")+".db")
	if c.Path() != want {
		t.Errorf("expected database at %s, got %s", want, c.Path())
	}
	if _, err := os.Stat(c.Path()); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestCache_OpenInDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := NewCache(dir)
	if err := c.Open("x"); err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	defer c.Close()

	if filepath.Dir(c.Path()) != dir {
		t.Errorf("expected database in %s, got %s", dir, c.Path())
	}
}

func TestCache_EmptyNeedsRebuild(t *testing.T) {
	c := openTestCache(t)

	if !c.NeedsRebuild("abc") {
		t.Error("empty cache should need a rebuild")
	}
	if _, err := c.Fingerprint(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := c.Synsets(context.Background()); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestCache_StoreAndReadBack(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	stats, err := c.Store(ctx, testSynsets, testHypernyms, "fp-1")
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if stats.SynsetsStored != 4 || stats.NounsStored != 7 || stats.HypernymsStored != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if !stats.Rebuilt {
		t.Error("expected Rebuilt to be set")
	}

	if c.NeedsRebuild("fp-1") {
		t.Error("cache should be fresh for the stored fingerprint")
	}
	if !c.NeedsRebuild("fp-2") {
		t.Error("cache should be stale for another fingerprint")
	}

	fp, err := c.Fingerprint()
	if err != nil || fp != "fp-1" {
		t.Errorf("expected fingerprint fp-1, got %q (%v)", fp, err)
	}

	synsets, err := c.Synsets(ctx)
	if err != nil {
		t.Fatalf("Synsets failed: %v", err)
	}
	if len(synsets) != len(testSynsets) {
		t.Fatalf("expected %d synsets, got %d", len(testSynsets), len(synsets))
	}
	for i, want := range testSynsets {
		got := synsets[i]
		if got.ID != want.ID || got.Gloss != want.Gloss || strings.Join(got.Nouns, " ") != strings.Join(want.Nouns, " ") {
			t.Errorf("synset %d: expected %+v, got %+v", i, want, got)
		}
	}

	hypernyms, err := c.Hypernyms(ctx)
	if err != nil {
		t.Fatalf("Hypernyms failed: %v", err)
	}
	if fmt.Sprint(hypernyms) != fmt.Sprint(testHypernyms) {
		t.Errorf("expected %v, got %v", testHypernyms, hypernyms)
	}

	// The cached records build the same taxonomy
	wn, err := domain.NewWordNet(synsets, hypernyms)
	if err != nil {
		t.Fatalf("NewWordNet failed: %v", err)
	}
	if sca, err := wn.SCA("domestic_dog", "beast"); err != nil || sca != "animal beast" {
		t.Errorf("expected sca 'animal beast', got %q (%v)", sca, err)
	}
}

func TestCache_StoreReplacesContents(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if _, err := c.Store(ctx, testSynsets, testHypernyms, "fp-1"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	small := []domain.Synset{{ID: 0, Nouns: []string{"only"}}}
	if _, err := c.Store(ctx, small, nil, "fp-2"); err != nil {
		t.Fatalf("second Store failed: %v", err)
	}

	synsets, err := c.Synsets(ctx)
	if err != nil {
		t.Fatalf("Synsets failed: %v", err)
	}
	if len(synsets) != 1 || synsets[0].Nouns[0] != "only" {
		t.Errorf("expected only the new synset, got %+v", synsets)
	}

	hypernyms, err := c.Hypernyms(ctx)
	if err != nil {
		t.Fatalf("Hypernyms failed: %v", err)
	}
	if len(hypernyms) != 0 {
		t.Errorf("expected no hypernyms, got %v", hypernyms)
	}
}

func TestCache_FailedStoreKeepsPreviousContents(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if _, err := c.Store(ctx, testSynsets, testHypernyms, "fp-1"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	duplicate := []domain.Synset{
		{ID: 0, Nouns: []string{"a"}},
		{ID: 0, Nouns: []string{"b"}},
	}
	if _, err := c.Store(ctx, duplicate, nil, "fp-2"); err == nil {
		t.Fatal("expected duplicate synset ids to fail")
	}

	if c.NeedsRebuild("fp-1") {
		t.Error("failed store must not change the fingerprint")
	}
	synsets, err := c.Synsets(ctx)
	if err != nil {
		t.Fatalf("Synsets failed: %v", err)
	}
	if len(synsets) != len(testSynsets) {
		t.Errorf("expected previous %d synsets, got %d", len(testSynsets), len(synsets))
	}
}

func TestCache_SearchNouns(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if _, err := c.Store(ctx, testSynsets, testHypernyms, "fp-1"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	tests := []struct {
		query string
		limit int
		want  string
	}{
		{query: "dog", limit: 10, want: "[{dog [2 3]} {domestic_dog [2]}]"},
		{query: "DOG", limit: 1, want: "[{dog [2 3]}]"},
		{query: "_", limit: 10, want: "[{domestic_dog [2]}]"},
		{query: "unicorn", limit: 10, want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches, err := c.SearchNouns(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("SearchNouns failed: %v", err)
			}
			if got := fmt.Sprint(matches); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func BenchmarkCache_Store(b *testing.B) {
	c := openTestCache(b)
	ctx := context.Background()

	const n = 5000
	synsets := make([]domain.Synset, n)
	hypernyms := make([]domain.Hypernym, 0, n)
	for i := range n {
		synsets[i] = domain.Synset{ID: i, Nouns: []string{fmt.Sprintf("noun_%d", i)}}
		if i > 0 {
			hypernyms = append(hypernyms, domain.Hypernym{Synset: i, Hypernyms: []int{i / 2}})
		}
	}

	for b.Loop() {
		if _, err := c.Store(ctx, synsets, hypernyms, "bench"); err != nil {
			b.Fatalf("Store failed: %v", err)
		}
	}
}
