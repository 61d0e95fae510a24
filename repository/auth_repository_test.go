package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/testhelpers"
)

// stalledWordClient simulates a backend that never answers: Login only
// returns once the caller's context expires.
type stalledWordClient struct{}

func (c *stalledWordClient) Login(ctx context.Context) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func (c *stalledWordClient) FetchWordOfToday(ctx context.Context) (*entities.Word, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestAuthRepository_Login_SetsObservableState(t *testing.T) {
	t.Parallel()

	client := new(testhelpers.MockWordClient)
	// The repository derives a timeout context, so match any context.
	client.On("Login", mock.Anything).Return(true, nil).Twice()

	repo := NewAuthRepository(client, time.Second)
	assert.False(t, repo.IsLoggedIn().Get())

	ok, err := repo.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, repo.IsLoggedIn().Get())

	// Logging in again while already logged in reconfirms status.
	ok, err = repo.Login(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, repo.IsLoggedIn().Get())
}

func TestAuthRepository_Login_TimeoutReportsNetworkError(t *testing.T) {
	t.Parallel()

	repo := NewAuthRepository(&stalledWordClient{}, 20*time.Millisecond)

	start := time.Now()
	ok, err := repo.Login(context.Background())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.False(t, ok)
	assert.False(t, repo.IsLoggedIn().Get())
	// The waiting side is released by the timeout, not by the backend.
	assert.Less(t, time.Since(start), time.Second)
}
