package entities

// Settings holds the per-user preferences. Read and written as a whole; there
// are no partial updates.
type Settings struct {
	DisplayTimer bool `db:"display_timer"`
}

// DefaultSettings returns the settings used before the user saved any.
func DefaultSettings() *Settings {
	return &Settings{DisplayTimer: false}
}
