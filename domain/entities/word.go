package entities

import (
	"fmt"
	"unicode"

	"github.com/juliencampergue/Hangman/domain"
)

// Word is the secret word eligible for play on a single calendar day.
// Immutable once fetched.
type Word struct {
	ID   string `db:"word_id"`
	Date int64  `db:"word_date"` // milliseconds since epoch, unique per day
	Word string `db:"word"`
}

// NewWord creates a new Word with validation
func NewWord(id string, date int64, word string) (*Word, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrInvalidFetchedWord)
	}
	if date <= 0 {
		return nil, fmt.Errorf("%w: non-positive date %d", domain.ErrInvalidFetchedWord, date)
	}
	if word == "" {
		return nil, fmt.Errorf("%w: empty text", domain.ErrInvalidFetchedWord)
	}

	return &Word{
		ID:   id,
		Date: date,
		Word: word,
	}, nil
}

// Contains reports whether the uppercased secret text contains the given
// normalized letter.
func (w *Word) Contains(letter rune) bool {
	for _, r := range w.Word {
		if unicode.ToUpper(r) == letter {
			return true
		}
	}
	return false
}

// DistinctLetters returns the number of distinct playable letters in the
// secret text, case-insensitive. Characters no guess can ever match, like
// hyphens or apostrophes, are not counted.
func (w *Word) DistinctLetters() int {
	seen := make(map[rune]struct{})
	for _, r := range w.Word {
		if normalized, ok := NormalizeLetter(r); ok {
			seen[normalized] = struct{}{}
		}
	}
	return len(seen)
}
