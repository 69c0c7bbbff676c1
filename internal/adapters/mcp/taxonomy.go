package mcp

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"wordnet/internal/application/commands"
	"wordnet/internal/domain"
)

// Reloader produces a freshly loaded taxonomy
type Reloader func(ctx context.Context) (*commands.LoadResult, error)

// Taxonomy holds the WordNet served by the tools. Queries read the current
// value without locking; a reload swaps it in whole.
type Taxonomy struct {
	current atomic.Pointer[domain.WordNet]
	reload  Reloader
	mu      sync.Mutex // serializes reloads
}

// NewTaxonomy serves wn; reload may be nil to disable the sync tool
func NewTaxonomy(wn *domain.WordNet, reload Reloader) *Taxonomy {
	t := &Taxonomy{reload: reload}
	t.current.Store(wn)
	return t
}

// WordNet returns the taxonomy currently served
func (t *Taxonomy) WordNet() *domain.WordNet {
	return t.current.Load()
}

// Reload loads the taxonomy again and swaps it in
func (t *Taxonomy) Reload(ctx context.Context) (*commands.LoadResult, error) {
	if t.reload == nil {
		return nil, errors.New("reloading is disabled")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	result, err := t.reload(ctx)
	if err != nil {
		return nil, err
	}
	t.current.Store(result.WordNet)
	return result, nil
}
