package ports

import (
	"context"

	"wordnet/internal/domain"
)

// NounMatch is a noun found by a cache search
type NounMatch struct {
	Noun    string
	Synsets []int
}

// TaxonomyCache stores parsed taxonomy records so later runs skip parsing.
// Once filled it is itself a TaxonomySource.
type TaxonomyCache interface {
	TaxonomySource

	// Lifecycle
	Open(name string) error
	Close() error

	// NeedsRebuild reports whether the cache was filled from a different source state
	NeedsRebuild(fingerprint string) bool

	// Store replaces the cache contents in a single transaction
	Store(ctx context.Context, synsets []domain.Synset, hypernyms []domain.Hypernym, fingerprint string) (*domain.SyncStats, error)

	// SearchNouns returns nouns containing query, at most limit of them
	SearchNouns(ctx context.Context, query string, limit int) ([]NounMatch, error)
}
