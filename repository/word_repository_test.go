package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/testhelpers"
)

func TestWordRepository_FetchWordOfToday(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	word, err := entities.NewWord("w1", 1700000000000, "CAT")
	require.NoError(t, err)

	client := new(testhelpers.MockWordClient)
	client.On("FetchWordOfToday", ctx).Return(word, nil).Once()

	repo := NewWordRepository(client)
	got, err := repo.FetchWordOfToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, word, got)
	client.AssertExpectations(t)
}

func TestWordRepository_FetchWordOfToday_PropagatesAdapterErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client := new(testhelpers.MockWordClient)
	client.On("FetchWordOfToday", ctx).
		Return(nil, fmt.Errorf("%w: connection refused", domain.ErrNetwork)).Once()

	repo := NewWordRepository(client)
	got, err := repo.FetchWordOfToday(ctx)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
