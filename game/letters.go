package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Normalize trims and uppercases raw player input or word list entries.
func Normalize(s string) string {
	// A Caser keeps state, so don't share one across goroutines.
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// IsLetter returns true if s is exactly one letter of Alphabet.
func IsLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// IsWord returns true if s is non-empty and made only of Alphabet letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// distinctLetters returns the set of letters that appear in word.
func distinctLetters(word string) map[string]struct{} {
	set := make(map[string]struct{}, len(word))
	for _, r := range word {
		set[string(r)] = struct{}{}
	}
	return set
}
