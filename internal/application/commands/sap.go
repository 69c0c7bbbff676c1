package commands

import (
	"context"
	"time"

	"wordnet/internal/application"
	"wordnet/internal/domain"
)

// SAPCommand runs a vertex-level shortest ancestral path query on a raw digraph
type SAPCommand struct {
	sap *domain.SAP
	V   []int
	W   []int
}

// NewSAPCommand creates a new SAPCommand over g
func NewSAPCommand(g *domain.Digraph, v, w []int) (*SAPCommand, error) {
	sap, err := domain.NewSAP(g)
	if err != nil {
		return nil, err
	}
	return &SAPCommand{sap: sap, V: v, W: w}, nil
}

// Validate checks both vertex sets
func (c *SAPCommand) Validate() error {
	if err := application.ValidateVertices("vertices1", c.V); err != nil {
		return err
	}
	return application.ValidateVertices("vertices2", c.W)
}

// Execute returns the ancestor, length and the endpoints that realize it
func (c *SAPCommand) Execute(ctx context.Context) (p domain.Path, err error) {
	defer observe(ctx, "sap", time.Now(), &err)

	if err := c.Validate(); err != nil {
		return domain.Path{}, err
	}
	return c.sap.Query(c.V, c.W)
}
