package ports

import (
	"context"

	"wordnet/internal/domain"
)

// TaxonomySource supplies the raw synset and hypernym records of a taxonomy
type TaxonomySource interface {
	// Synsets returns every synset record, in any order
	Synsets(ctx context.Context) ([]domain.Synset, error)

	// Hypernyms returns the hypernym lists, in any order
	Hypernyms(ctx context.Context) ([]domain.Hypernym, error)

	// Fingerprint identifies the current contents of the source.
	// Two calls return the same value while the underlying data is unchanged.
	Fingerprint() (string, error)
}
