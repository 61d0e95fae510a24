package repository

import (
	"context"
	"fmt"

	"github.com/juliencampergue/Hangman/database"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/interfaces"
)

// settingsRepository implements interfaces.SettingsRepository over a
// single-row postgres table.
type settingsRepository struct {
	q Queryable
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) interfaces.SettingsRepository {
	return &settingsRepository{q: db.Pool}
}

// GetSettings reads the stored settings, creating the default row when none
// was saved yet.
func (r *settingsRepository) GetSettings(ctx context.Context) (*entities.Settings, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO settings (id, display_timer)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`,
		entities.DefaultSettings().DisplayTimer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	var settings entities.Settings
	err = r.q.QueryRow(ctx, `SELECT display_timer FROM settings WHERE id = 1`).
		Scan(&settings.DisplayTimer)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings writes the settings as a whole
func (r *settingsRepository) SaveSettings(ctx context.Context, settings *entities.Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	_, err := r.q.Exec(ctx, `
		INSERT INTO settings (id, display_timer)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE
		SET display_timer = EXCLUDED.display_timer, updated_at = NOW()`,
		settings.DisplayTimer,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
