package repository

import (
	"context"
	"fmt"

	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/interfaces"
)

// wordRepository is a pass-through façade over the word service adapter. It
// carries no business rules; it decouples the orchestrator from the adapter
// implementation.
type wordRepository struct {
	client interfaces.WordClient
}

// NewWordRepository creates a new word repository
func NewWordRepository(client interfaces.WordClient) interfaces.WordRepository {
	return &wordRepository{client: client}
}

// FetchWordOfToday retrieves today's word from the backend
func (r *wordRepository) FetchWordOfToday(ctx context.Context) (*entities.Word, error) {
	word, err := r.client.FetchWordOfToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word of today: %w", err)
	}
	return word, nil
}
