// Package wordapi is the HTTP adapter for the remote word service. It
// bridges the backend's JSON API to the domain contracts; the wire format
// stays behind this boundary.
package wordapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
)

// Client talks to the word service. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a new word service client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

type wordResponse struct {
	ID   string `json:"id"`
	Date int64  `json:"date"`
	Word string `json:"word"`
}

// Login performs an anonymous login and stores the session token. Context
// cancellation releases the caller; an in-flight request the server already
// accepted simply completes unobserved.
func (c *Client) Login(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/auth/login", nil)
	if err != nil {
		return false, fmt.Errorf("failed to build login request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: login returned status %d", domain.ErrNetwork, resp.StatusCode)
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("%w: failed to decode login response: %v", domain.ErrNetwork, err)
	}

	c.mu.Lock()
	c.token = payload.Token
	c.mu.Unlock()

	log.Debug("Logged in to word service")
	return true, nil
}

// FetchWordOfToday fetches the word playable today
func (c *Client) FetchWordOfToday(ctx context.Context) (*entities.Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/words/today", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build word request: %w", err)
	}

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: word fetch returned status %d", domain.ErrNetwork, resp.StatusCode)
	}

	var payload wordResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode word response: %v", domain.ErrNetwork, err)
	}

	// NewWord reports malformed payloads as domain.ErrInvalidFetchedWord.
	word, err := entities.NewWord(payload.ID, payload.Date, payload.Word)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"word_id": word.ID,
		"date":    word.Date,
	}).Debug("Fetched word of today")

	return word, nil
}
