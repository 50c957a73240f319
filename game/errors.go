package game

import (
	"errors"
	"fmt"
)

var (
	ErrNilPlayer       = errors.New("player cannot be nil")
	ErrNoPlayers       = errors.New("a game needs at least one player")
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrBadSecret       = errors.New("secret word must consist of letters only")

	ErrEmptyWordList   = errors.New("word list is empty")
	ErrNoEligibleWords = errors.New("no word in the word list meets the minimum length")

	ErrEmptyGuess       = errors.New("guess is empty")
	ErrAlreadyGuessed   = errors.New("letter has already been guessed")
	ErrNotAlphabetic    = errors.New("guess is not a letter")
	ErrWordAlreadyTried = errors.New("word has already been tried")
	ErrGameOver         = errors.New("game is over")
)

// ConfigurationError is returned from NewGame when the players or options
// handed to it are unusable.
type ConfigurationError struct {
	Detail string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return "configuration error: " + e.Err.Error()
	}
	return fmt.Sprintf("configuration error: %v (%s)", e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ResourceError is returned when the word pool can't produce a secret word.
type ResourceError struct {
	Err error
}

func (e *ResourceError) Error() string {
	return "resource error: " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }

// InvalidGuessError describes a guess that was rejected without touching
// game state. The same player is asked again.
type InvalidGuessError struct {
	Guess string
	Err   error
}

func (e *InvalidGuessError) Error() string {
	if e.Guess == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%q: %v", e.Guess, e.Err)
}

func (e *InvalidGuessError) Unwrap() error { return e.Err }

// IsInvalidGuess returns true if err is a recoverable guess rejection.
func IsInvalidGuess(err error) bool {
	var ige *InvalidGuessError
	return errors.As(err, &ige)
}
