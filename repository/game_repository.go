package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/juliencampergue/Hangman/database"
	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/interfaces"
)

// gameDB is a local struct for database mapping
type gameDB struct {
	ID             int64  `db:"id"`
	WordID         string `db:"word_id"`
	WordDate       int64  `db:"word_date"`
	Word           string `db:"word"`
	Result         bool   `db:"result"`
	Played         bool   `db:"played"`
	PlayDurationMs int64  `db:"play_duration_ms"`
}

// toDomain converts the database struct to the domain model
func (g *gameDB) toDomain(letters []entities.Letter) (*entities.GameDetail, error) {
	word, err := entities.NewWord(g.WordID, g.WordDate, g.Word)
	if err != nil {
		return nil, fmt.Errorf("invalid stored word data: %w", err)
	}

	return &entities.GameDetail{
		ID:            g.ID,
		Date:          g.WordDate,
		Word:          word,
		Result:        g.Result,
		Played:        g.Played,
		PlayedLetters: letters,
		PlayDuration:  time.Duration(g.PlayDurationMs) * time.Millisecond,
	}, nil
}

// gameRepository implements interfaces.GameRepository over postgres.
type gameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) interfaces.GameRepository {
	return &gameRepository{db: db}
}

// SaveGame persists a game snapshot together with its ordered letters, then
// verifies the save by re-fetching the assigned id. A read-back miss is
// reported as domain.ErrUnavailableGameDetail instead of silently returning
// an unsaved state.
func (r *gameRepository) SaveGame(ctx context.Context, detail *entities.GameDetail) (*entities.GameDetail, error) {
	if detail == nil || detail.Word == nil {
		return nil, fmt.Errorf("game detail must carry a word")
	}

	var id int64
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO games (word_id, word_date, word, result, played, play_duration_ms)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`

		err := tx.QueryRow(ctx, query,
			detail.Word.ID,
			detail.Word.Date,
			detail.Word.Word,
			detail.Result,
			detail.Played,
			detail.PlayDuration.Milliseconds(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert game: %w", err)
		}

		for position, letter := range detail.PlayedLetters {
			_, err := tx.Exec(ctx, `
				INSERT INTO game_letters (game_id, position, letter, good_letter)
				VALUES ($1, $2, $3, $4)`,
				id, position, string(letter.Letter), letter.GoodLetter,
			)
			if err != nil {
				return fmt.Errorf("failed to insert played letter at position %d: %w", position, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	saved, err := r.GetGameContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to verify saved game %d: %w", id, err)
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: saved game %d could not be re-fetched", domain.ErrUnavailableGameDetail, id)
	}

	return saved, nil
}

// GetGameContent retrieves a persisted game by id, or nil when absent
func (r *gameRepository) GetGameContent(ctx context.Context, id int64) (*entities.GameDetail, error) {
	return r.getGame(ctx, `
		SELECT id, word_id, word_date, word, result, played, play_duration_ms
		FROM games
		WHERE id = $1`, id)
}

// GetGameContentForWord retrieves the persisted game for a word id, or nil
// when the word has never been completed
func (r *gameRepository) GetGameContentForWord(ctx context.Context, wordID string) (*entities.GameDetail, error) {
	return r.getGame(ctx, `
		SELECT id, word_id, word_date, word, result, played, play_duration_ms
		FROM games
		WHERE word_id = $1`, wordID)
}

func (r *gameRepository) getGame(ctx context.Context, query string, arg any) (*entities.GameDetail, error) {
	var dbGame gameDB
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&dbGame.ID,
		&dbGame.WordID,
		&dbGame.WordDate,
		&dbGame.Word,
		&dbGame.Result,
		&dbGame.Played,
		&dbGame.PlayDurationMs,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	letters, err := r.getLetters(ctx, dbGame.ID)
	if err != nil {
		return nil, err
	}

	return dbGame.toDomain(letters)
}

func (r *gameRepository) getLetters(ctx context.Context, gameID int64) ([]entities.Letter, error) {
	rows, err := r.db.Query(ctx, `
		SELECT letter, good_letter
		FROM game_letters
		WHERE game_id = $1
		ORDER BY position`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query played letters: %w", err)
	}
	defer rows.Close()

	var letters []entities.Letter
	for rows.Next() {
		var letter string
		var good bool
		if err := rows.Scan(&letter, &good); err != nil {
			return nil, fmt.Errorf("failed to scan played letter: %w", err)
		}
		if letter == "" {
			return nil, fmt.Errorf("empty letter stored for game %d", gameID)
		}
		letters = append(letters, entities.Letter{Letter: []rune(letter)[0], GoodLetter: good})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating played letters: %w", err)
	}

	return letters, nil
}

// GetPlayedGames returns one page of played games, newest first. from <= 0
// means the most recent page; otherwise only games strictly older than from
// are returned. An empty page marks the list end.
func (r *gameRepository) GetPlayedGames(ctx context.Context, from int64, size int) (*entities.GameHistoryPage, error) {
	query := `
		SELECT id, word_id, word_date, word, result, played
		FROM games
		ORDER BY id DESC
		LIMIT $1`
	args := []any{size}

	if from > 0 {
		query = `
			SELECT id, word_id, word_date, word, result, played
			FROM games
			WHERE id < $1
			ORDER BY id DESC
			LIMIT $2`
		args = []any{from, size}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query played games: %w", err)
	}
	defer rows.Close()

	items := make([]*entities.GameHistoryItem, 0, size)
	for rows.Next() {
		var item entities.GameHistoryItem
		err := rows.Scan(
			&item.ID,
			&item.WordID,
			&item.Date,
			&item.Word,
			&item.Result,
			&item.Played,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan played game: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating played games: %w", err)
	}

	return &entities.GameHistoryPage{
		Items:      items,
		IsLastPage: len(items) < size,
	}, nil
}
