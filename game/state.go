package game

import (
	"maps"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// StateView is the read-only snapshot of a game that a Player gets on its
// turn. It never contains the secret word. It is a plain value built fresh
// for every prompt and must not be kept across guesses.
type StateView struct {
	// Board is the masked word, one unit per position, joined by spaces.
	Board   string
	Pattern *Pattern

	GoodGuesses    []string
	BadGuesses     []string
	GuessedLetters []string
	GuessedWords   []string
	Unguessed      []string
	BlankCount     int

	Scores        map[string]int
	MaxBadGuesses int
}

// NewStateView projects the game inputs into a StateView. It has no side
// effects; the guess, word and score collections are copied.
func NewStateView(secret string, guessed map[string]struct{}, guessedWords []string,
	scores map[string]int, maxBadGuesses int) StateView {

	secretLetters := distinctLetters(secret)

	units := make([]string, 0, len(secret))
	blanks := 0
	for _, r := range secret {
		l := string(r)
		if _, ok := guessed[l]; ok {
			units = append(units, l)
		} else {
			units = append(units, Placeholder)
			blanks++
		}
	}

	all := lo.Keys(guessed)
	sort.Strings(all)
	good, bad := lo.FilterReject(all, func(l string, _ int) bool {
		_, ok := secretLetters[l]
		return ok
	})

	unguessed := lo.Reject(strings.Split(Alphabet, ""), func(l string, _ int) bool {
		_, ok := guessed[l]
		return ok
	})

	return StateView{
		Board:          strings.Join(units, " "),
		Pattern:        newPattern(secret, guessed),
		GoodGuesses:    good,
		BadGuesses:     bad,
		GuessedLetters: all,
		GuessedWords:   append([]string{}, guessedWords...),
		Unguessed:      unguessed,
		BlankCount:     blanks,
		Scores:         maps.Clone(scores),
		MaxBadGuesses:  maxBadGuesses,
	}
}

// Length is the number of positions on the board.
func (sv StateView) Length() int {
	return sv.Pattern.Len()
}

// HasGuessed returns true if the letter was already guessed by anyone.
func (sv StateView) HasGuessed(letter string) bool {
	return lo.Contains(sv.GuessedLetters, letter)
}

// HasTriedWord returns true if the word was already tried and failed.
func (sv StateView) HasTriedWord(word string) bool {
	return lo.Contains(sv.GuessedWords, word)
}
