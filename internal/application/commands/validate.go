package commands

import (
	"context"
	"errors"
	"fmt"

	"wordnet/internal/domain"
)

// ValidateResult describes the shape of a loaded taxonomy
type ValidateResult struct {
	Synsets   int
	Nouns     int
	Edges     int
	Roots     []int
	RootLabel string
	Acyclic   bool
	// Problem is nil for a rooted DAG
	Problem error
}

// Rooted reports whether the hypernym graph is a rooted DAG
func (r *ValidateResult) Rooted() bool {
	return r.Problem == nil
}

// ValidateCommand checks that a taxonomy's hypernym graph is a rooted DAG.
// Queries work on any graph; this is a data-quality report.
type ValidateCommand struct {
	wn *domain.WordNet
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(wn *domain.WordNet) *ValidateCommand {
	return &ValidateCommand{wn: wn}
}

// Execute inspects the graph. Shape problems are reported in the result,
// not as an error.
func (c *ValidateCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	if c.wn == nil {
		return nil, fmt.Errorf("%w: no taxonomy loaded", domain.ErrNullInput)
	}

	g := c.wn.Graph()
	result := &ValidateResult{
		Synsets: c.wn.SynsetCount(),
		Nouns:   c.wn.NounCount(),
		Edges:   g.E(),
		Roots:   g.Roots(),
	}

	result.Problem = domain.CheckRootedDAG(g)
	result.Acyclic = !errors.Is(result.Problem, domain.ErrCycle)

	if len(result.Roots) == 1 {
		result.RootLabel, _ = c.wn.Label(result.Roots[0])
	}

	return result, ctx.Err()
}
