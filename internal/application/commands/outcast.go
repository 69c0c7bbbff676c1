package commands

import (
	"context"
	"time"

	"wordnet/internal/application"
	"wordnet/internal/domain"
)

// OutcastResult names the least related noun of a group
type OutcastResult struct {
	Outcast string
	// Sums[i] is the total distance from Nouns[i] to every other noun
	Nouns []string
	Sums  []int
}

// OutcastCommand finds the noun with the largest summed distance to the rest
type OutcastCommand struct {
	wn    *domain.WordNet
	Nouns []string
}

// NewOutcastCommand creates a new OutcastCommand
func NewOutcastCommand(wn *domain.WordNet, nouns []string) *OutcastCommand {
	return &OutcastCommand{wn: wn, Nouns: nouns}
}

// Validate checks that at least two nouns are given
func (c *OutcastCommand) Validate() error {
	return application.ValidateNouns("nouns", c.Nouns, 2)
}

// Execute computes every pairwise distance once. The earliest noun wins ties.
func (c *OutcastCommand) Execute(ctx context.Context) (res *OutcastResult, err error) {
	defer observe(ctx, "outcast", time.Now(), &err)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := len(c.Nouns)
	sums := make([]int, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			d, err := c.wn.Distance(c.Nouns[i], c.Nouns[j])
			if err != nil {
				return nil, explain(c.wn, err)
			}
			sums[i] += d
			sums[j] += d
		}
	}

	best := 0
	for i := 1; i < n; i++ {
		if sums[i] > sums[best] {
			best = i
		}
	}

	return &OutcastResult{
		Outcast: c.Nouns[best],
		Nouns:   c.Nouns,
		Sums:    sums,
	}, nil
}
