package commands

import (
	"context"
	"testing"

	"wordnet/internal/application"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcastCommand(t *testing.T) {
	wn := testWordNet(t)

	// dog-cat 2, dog-oak 4, cat-oak 4
	result, err := NewOutcastCommand(wn, []string{"dog", "cat", "oak"}).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "oak", result.Outcast)
	assert.Equal(t, []int{6, 6, 8}, result.Sums)
}

func TestOutcastCommand_FirstWinsTies(t *testing.T) {
	wn := testWordNet(t)

	result, err := NewOutcastCommand(wn, []string{"cat", "dog"}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cat", result.Outcast)
}

func TestOutcastCommand_Errors(t *testing.T) {
	wn := testWordNet(t)
	ctx := context.Background()

	_, err := NewOutcastCommand(wn, []string{"dog"}).Execute(ctx)
	var valErr *application.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.ErrorIs(t, err, application.ErrInvalidArgument)

	_, err = NewOutcastCommand(wn, []string{"dog", ""}).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrNullInput)

	_, err = NewOutcastCommand(wn, []string{"dog", "unicorn"}).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrUnknownNoun)

	_, err = NewOutcastCommand(wn, []string{"dog", "cat", "island"}).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrNoCommonAncestor)
}
