package commands

import (
	"context"
	"fmt"
	"time"

	"wordnet/internal/domain"
	"wordnet/internal/logging"
	"wordnet/internal/metrics"
	"wordnet/internal/ports"
)

// LoadResult contains a loaded taxonomy and how it was obtained
type LoadResult struct {
	WordNet   *domain.WordNet
	FromCache bool
	Stats     *domain.SyncStats // set when the cache was (re)built
	Duration  time.Duration
}

// LoadCommand builds a WordNet from a source, going through the cache when
// one is given
type LoadCommand struct {
	source ports.TaxonomySource
	cache  ports.TaxonomyCache
	Force  bool
}

// NewLoadCommand creates a new LoadCommand. cache may be nil.
func NewLoadCommand(source ports.TaxonomySource, cache ports.TaxonomyCache, force bool) *LoadCommand {
	return &LoadCommand{
		source: source,
		cache:  cache,
		Force:  force,
	}
}

// Execute loads the taxonomy. Cache failures are logged and fall back to
// parsing the source; source failures are returned.
func (c *LoadCommand) Execute(ctx context.Context) (*LoadResult, error) {
	if c.source == nil {
		return nil, fmt.Errorf("%w: no taxonomy source", domain.ErrNullInput)
	}

	log := logging.FromContext(ctx)
	start := time.Now()

	fingerprint := ""
	if c.cache != nil {
		fp, err := c.source.Fingerprint()
		if err != nil {
			return nil, fmt.Errorf("failed to inspect taxonomy files: %w", err)
		}
		fingerprint = fp

		if !c.Force && !c.cache.NeedsRebuild(fingerprint) {
			wn, err := build(ctx, c.cache)
			if err == nil {
				result := c.finish(start, wn, "cache")
				result.FromCache = true
				log.Debug("taxonomy loaded from cache",
					"synsets", wn.SynsetCount(), "nouns", wn.NounCount(), "duration", result.Duration)
				return result, nil
			}
			log.Warn("cache unreadable, rebuilding", "error", err)
		}
	}

	synsets, err := c.source.Synsets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read synsets: %w", err)
	}
	hypernyms, err := c.source.Hypernyms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read hypernyms: %w", err)
	}

	wn, err := domain.NewWordNet(synsets, hypernyms)
	if err != nil {
		return nil, err
	}

	result := c.finish(start, wn, "files")

	if c.cache != nil {
		stats, err := c.cache.Store(ctx, synsets, hypernyms, fingerprint)
		if err != nil {
			log.Warn("failed to update cache", "error", err)
		} else {
			result.Stats = stats
			log.Debug("cache rebuilt",
				"synsets", stats.SynsetsStored, "nouns", stats.NounsStored,
				"hypernyms", stats.HypernymsStored, "duration", stats.Duration)
		}
	}

	log.Debug("taxonomy loaded from files",
		"synsets", wn.SynsetCount(), "nouns", wn.NounCount(), "duration", result.Duration)
	return result, nil
}

func (c *LoadCommand) finish(start time.Time, wn *domain.WordNet, source string) *LoadResult {
	d := time.Since(start)
	metrics.LoadDuration.WithLabelValues(source).Observe(d.Seconds())
	metrics.SynsetsLoaded.Set(float64(wn.SynsetCount()))
	return &LoadResult{WordNet: wn, Duration: d}
}

func build(ctx context.Context, src ports.TaxonomySource) (*domain.WordNet, error) {
	synsets, err := src.Synsets(ctx)
	if err != nil {
		return nil, err
	}
	hypernyms, err := src.Hypernyms(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewWordNet(synsets, hypernyms)
}
