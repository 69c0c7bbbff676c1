package commands

import (
	"context"
	"testing"

	"wordnet/internal/application"
	"wordnet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSAPCommand(t *testing.T) {
	g, err := domain.NewDigraph(4, []domain.Edge{{From: 1, To: 0}, {From: 2, To: 0}, {From: 3, To: 1}})
	require.NoError(t, err)

	cmd, err := NewSAPCommand(g, []int{2}, []int{3})
	require.NoError(t, err)

	p, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, p.Ancestor)
	assert.Equal(t, 3, p.Length)

	cmd.V, cmd.W = []int{1, 2}, []int{3}
	p, err = cmd.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, p.Ancestor)
	assert.Equal(t, 1, p.Length)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 3, p.To)
}

func TestSAPCommand_Errors(t *testing.T) {
	_, err := NewSAPCommand(nil, []int{0}, []int{0})
	assert.ErrorIs(t, err, application.ErrNullInput)

	g, err := domain.NewDigraph(2, nil)
	require.NoError(t, err)

	cmd, err := NewSAPCommand(g, nil, []int{1})
	require.NoError(t, err)
	_, err = cmd.Execute(context.Background())
	var valErr *application.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "vertices1", valErr.Field)
	assert.ErrorIs(t, err, application.ErrNullInput)

	cmd.V, cmd.W = []int{0}, []int{}
	_, err = cmd.Execute(context.Background())
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "vertices2", valErr.Field)
	assert.ErrorIs(t, err, application.ErrInvalidArgument)

	cmd.V, cmd.W = []int{-1}, []int{0}
	_, err = cmd.Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidArgument)

	cmd.V, cmd.W = []int{0}, []int{5}
	_, err = cmd.Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidArgument)

	cmd.W = []int{1}
	_, err = cmd.Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNoCommonAncestor)
}
