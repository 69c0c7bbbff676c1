package commands

import (
	"context"
	"slices"
	"strings"
	"time"

	"wordnet/internal/domain"
	"wordnet/internal/ports"
)

const defaultSearchLimit = 20

// SearchResult is a noun with its relevance score
type SearchResult struct {
	Noun    string
	Synsets []int
	Score   int
}

// SearchCommand searches nouns with fuzzy matching. With a cache it asks
// SQLite for substring matches and needs no loaded graph; otherwise it
// scans the in-memory noun index.
type SearchCommand struct {
	wn    *domain.WordNet
	cache ports.TaxonomyCache
	Query string
	Limit int
}

// NewSearchCommand creates a search over a loaded taxonomy
func NewSearchCommand(wn *domain.WordNet, query string, limit int) *SearchCommand {
	return &SearchCommand{wn: wn, Query: query, Limit: limit}
}

// NewCachedSearchCommand creates a search answered from a filled cache
func NewCachedSearchCommand(cache ports.TaxonomyCache, query string, limit int) *SearchCommand {
	return &SearchCommand{cache: cache, Query: query, Limit: limit}
}

// Execute runs the search and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) (results []SearchResult, err error) {
	defer observe(ctx, "search", time.Now(), &err)

	if len(c.Query) < 2 {
		return nil, nil
	}
	limit := c.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var candidates []SearchResult
	if c.cache != nil {
		matches, err := c.cache.SearchNouns(ctx, c.Query, limit*5)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			candidates = append(candidates, SearchResult{Noun: m.Noun, Synsets: m.Synsets})
		}
	} else {
		for noun := range c.wn.Nouns() {
			candidates = append(candidates, SearchResult{Noun: noun})
		}
	}

	results = FuzzySort(candidates, c.Query)
	if len(results) > limit {
		results = results[:limit]
	}

	if c.wn != nil {
		for i := range results {
			results[i].Synsets, _ = c.wn.Synsets(results[i].Noun)
		}
	}

	return results, nil
}

// Suggest returns up to n nouns resembling word
func Suggest(wn *domain.WordNet, word string, n int) []string {
	if wn == nil || len(word) < 2 {
		return nil
	}

	var candidates []SearchResult
	for noun := range wn.Nouns() {
		candidates = append(candidates, SearchResult{Noun: noun})
	}

	var out []string
	for _, r := range FuzzySort(candidates, word) {
		if len(out) == n {
			break
		}
		out = append(out, r.Noun)
	}
	return out
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if target == query {
			score += 100
		}
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == '_' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores candidates against query, drops non-matches and sorts by
// score descending, then shorter nouns, then alphabetically
func FuzzySort(candidates []SearchResult, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(candidates))

	for _, r := range candidates {
		if s := FuzzyScore(r.Noun, query); s > 0 {
			r.Score = s
			scored = append(scored, r)
		}
	}

	slices.SortStableFunc(scored, func(a, b SearchResult) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		if len(a.Noun) != len(b.Noun) {
			return len(a.Noun) - len(b.Noun)
		}
		return strings.Compare(a.Noun, b.Noun)
	})

	return scored
}
