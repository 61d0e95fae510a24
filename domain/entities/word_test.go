package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliencampergue/Hangman/domain"
)

func TestNewWord_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		date    int64
		word    string
		wantErr bool
	}{
		{name: "valid", id: "w1", date: 1700000000000, word: "CAT"},
		{name: "empty id", id: "", date: 1700000000000, word: "CAT", wantErr: true},
		{name: "zero date", id: "w1", date: 0, word: "CAT", wantErr: true},
		{name: "negative date", id: "w1", date: -1, word: "CAT", wantErr: true},
		{name: "empty text", id: "w1", date: 1700000000000, word: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			word, err := NewWord(tt.id, tt.date, tt.word)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFetchedWord)
				assert.Nil(t, word)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, word.ID)
				assert.Equal(t, tt.date, word.Date)
				assert.Equal(t, tt.word, word.Word)
			}
		})
	}
}

func TestWord_DistinctLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{word: "CAT", want: 3},
		{word: "LLAMA", want: 3},
		{word: "Cat", want: 3},
		{word: "AAAA", want: 1},
		// Non-playable characters are not guessable and must not count.
		{word: "GO-KART", want: 6},
		{word: "O'CLOCK", want: 4},
		{word: "ICE CREAM", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			word, err := NewWord("w1", 1, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, word.DistinctLetters())
		})
	}
}

func TestWord_Contains(t *testing.T) {
	t.Parallel()

	word, err := NewWord("w1", 1, "Cat")
	require.NoError(t, err)

	assert.True(t, word.Contains('C'))
	assert.True(t, word.Contains('A'))
	assert.True(t, word.Contains('T'))
	assert.False(t, word.Contains('X'))
}

func TestNormalizeLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  rune
		want   rune
		wantOK bool
	}{
		{name: "lowercase", input: 'a', want: 'A', wantOK: true},
		{name: "uppercase", input: 'Z', want: 'Z', wantOK: true},
		{name: "digit", input: '7', want: '7'},
		{name: "punctuation", input: '?', want: '?'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeLetter(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
