package entities

import "unicode"

// Letter is a single played guess. Immutable.
type Letter struct {
	Letter     rune `db:"letter"`
	GoodLetter bool `db:"good_letter"`
}

// NormalizeLetter uppercases the given character and reports whether it is a
// playable letter (A-Z).
func NormalizeLetter(r rune) (rune, bool) {
	upper := unicode.ToUpper(r)
	return upper, upper >= 'A' && upper <= 'Z'
}
