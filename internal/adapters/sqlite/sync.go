package sqlite

import (
	"context"
	"fmt"
	"time"

	"wordnet/internal/domain"
)

// Store replaces the cache contents with the given records. The whole
// rebuild runs in one transaction, so a failed store leaves the previous
// contents intact.
func (c *Cache) Store(ctx context.Context, synsets []domain.Synset, hypernyms []domain.Hypernym, fingerprint string) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{Rebuilt: true}

	tx, err := c.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.clear(); err != nil {
		return nil, err
	}

	for i, s := range synsets {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := tx.insertSynset(s); err != nil {
			return nil, fmt.Errorf("failed to store synset %d: %w", s.ID, err)
		}
		stats.SynsetsStored++
		stats.NounsStored += len(s.Nouns)
	}

	for _, h := range hypernyms {
		if err := tx.insertHypernyms(h); err != nil {
			return nil, fmt.Errorf("failed to store hypernyms of %d: %w", h.Synset, err)
		}
		stats.HypernymsStored += len(h.Hypernyms)
	}

	if err := tx.setMeta(map[string]string{
		"schema_version": schemaVersion,
		"fingerprint":    fingerprint,
		"name_hash":      hashName(c.name),
		"last_sync_time": fmt.Sprint(time.Now().Unix()),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
