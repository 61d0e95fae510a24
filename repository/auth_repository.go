package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/interfaces"
	"github.com/juliencampergue/Hangman/events"
)

// authRepository wraps the backend login call in a bounded timeout and
// publishes the observable login state. On timeout only the waiting side is
// released; the backend call may still complete in the background and is
// then ignored.
type authRepository struct {
	client       interfaces.WordClient
	loginTimeout time.Duration
	loggedIn     *events.Observable[bool]
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(client interfaces.WordClient, loginTimeout time.Duration) interfaces.AuthRepository {
	return &authRepository{
		client:       client,
		loginTimeout: loginTimeout,
		loggedIn:     events.NewObservable(false),
	}
}

// Login authenticates against the backend. Calling it while already logged
// in reconfirms status.
func (r *authRepository) Login(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.loginTimeout)
	defer cancel()

	ok, err := r.client.Login(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.WithField("timeout", r.loginTimeout).Warn("Login timed out")
			return false, fmt.Errorf("%w: login timed out after %s", domain.ErrNetwork, r.loginTimeout)
		}
		return false, fmt.Errorf("failed to login: %w", err)
	}

	r.loggedIn.Set(ok)
	return ok, nil
}

// IsLoggedIn is the observable login state
func (r *authRepository) IsLoggedIn() *events.Observable[bool] {
	return r.loggedIn
}
