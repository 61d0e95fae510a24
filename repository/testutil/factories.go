package testutil

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/juliencampergue/Hangman/domain/entities"
)

var wordDateSeq atomic.Int64

// CreateTestWord creates a word with a unique id and date, so multiple saved
// games never collide on the word uniqueness constraints.
func CreateTestWord(text string) *entities.Word {
	word, err := entities.NewWord(uuid.NewString(), time.Now().UnixMilli()+wordDateSeq.Add(1), text)
	if err != nil {
		panic(err)
	}
	return word
}

// CreateTestGameDetail creates a finished game snapshot for the given word
func CreateTestGameDetail(word *entities.Word, result bool, letters []entities.Letter) *entities.GameDetail {
	return &entities.GameDetail{
		ID:            entities.UnsavedGameID,
		Date:          word.Date,
		Word:          word,
		Result:        result,
		Played:        true,
		PlayedLetters: letters,
		PlayDuration:  42 * time.Second,
	}
}
