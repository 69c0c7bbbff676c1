package commands

import (
	"context"
	"errors"
	"time"

	"wordnet/internal/application"
	"wordnet/internal/domain"
	"wordnet/internal/logging"
	"wordnet/internal/metrics"
)

// SCACommand finds the shortest common ancestor of two nouns
type SCACommand struct {
	wn    *domain.WordNet
	Noun1 string
	Noun2 string
}

// NewSCACommand creates a new SCACommand
func NewSCACommand(wn *domain.WordNet, noun1, noun2 string) *SCACommand {
	return &SCACommand{wn: wn, Noun1: noun1, Noun2: noun2}
}

// Validate checks that both nouns are given
func (c *SCACommand) Validate() error {
	return validatePair(c.Noun1, c.Noun2)
}

// Execute returns the ancestor's label, or application.NoAncestor
func (c *SCACommand) Execute(ctx context.Context) (sca string, err error) {
	defer observe(ctx, "sca", time.Now(), &err)

	if err := c.Validate(); err != nil {
		return "", err
	}
	sca, err = c.wn.SCA(c.Noun1, c.Noun2)
	return sca, explain(c.wn, err)
}

// DistanceCommand computes the shortest ancestral distance between two nouns
type DistanceCommand struct {
	wn    *domain.WordNet
	Noun1 string
	Noun2 string
}

// NewDistanceCommand creates a new DistanceCommand
func NewDistanceCommand(wn *domain.WordNet, noun1, noun2 string) *DistanceCommand {
	return &DistanceCommand{wn: wn, Noun1: noun1, Noun2: noun2}
}

// Validate checks that both nouns are given
func (c *DistanceCommand) Validate() error {
	return validatePair(c.Noun1, c.Noun2)
}

// Execute returns the distance. Unrelated nouns give ErrNoCommonAncestor.
func (c *DistanceCommand) Execute(ctx context.Context) (d int, err error) {
	defer observe(ctx, "distance", time.Now(), &err)

	if err := c.Validate(); err != nil {
		return 0, err
	}
	d, err = c.wn.Distance(c.Noun1, c.Noun2)
	return d, explain(c.wn, err)
}

// PathCommand returns the full shortest ancestral path between two nouns
type PathCommand struct {
	wn    *domain.WordNet
	Noun1 string
	Noun2 string
}

// NewPathCommand creates a new PathCommand
func NewPathCommand(wn *domain.WordNet, noun1, noun2 string) *PathCommand {
	return &PathCommand{wn: wn, Noun1: noun1, Noun2: noun2}
}

// Validate checks that both nouns are given
func (c *PathCommand) Validate() error {
	return validatePair(c.Noun1, c.Noun2)
}

// Execute returns the ancestor, distance and endpoint synsets
func (c *PathCommand) Execute(ctx context.Context) (p *domain.NounPath, err error) {
	defer observe(ctx, "path", time.Now(), &err)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err = c.wn.Path(c.Noun1, c.Noun2)
	return p, explain(c.wn, err)
}

func validatePair(noun1, noun2 string) error {
	if err := application.ValidateRequired("noun1", noun1); err != nil {
		return err
	}
	return application.ValidateRequired("noun2", noun2)
}

// explain replaces an unknown noun error with one carrying suggestions
func explain(wn *domain.WordNet, err error) error {
	var unknown *domain.UnknownNounError
	if !errors.As(err, &unknown) {
		return err
	}
	return &application.SuggestionError{
		Noun:        unknown.Noun,
		Suggestions: Suggest(wn, unknown.Noun, 5),
	}
}

func observe(ctx context.Context, op string, start time.Time, errp *error) {
	metrics.ObserveQuery(op, start, *errp)
	logging.FromContext(ctx).Debug("query", "op", op, "duration", time.Since(start), "error", *errp)
}
