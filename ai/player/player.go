// Package player is an automatic player of hangman. It narrows a vocabulary
// down with the revealed pattern and only solves once it is nearly sure.
package player

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/hangman/game"
)

const (
	// SolveThreshold is the exclusive upper bound on the candidate count at
	// which the player tries to solve.
	SolveThreshold = 3
)

var Vowels = []string{"A", "E", "I", "O", "U"}

var ErrNoMovesLeft = errors.New("no legal guesses left")

// HeuristicPlayer guesses vowels until about half the blanks are confirmed,
// then works against the vocabulary words that still fit the board.
type HeuristicPlayer struct {
	name  string
	vocab []string
	rng   game.Rand
}

var _ game.Player = (*HeuristicPlayer)(nil)

// NewHeuristicPlayer creates a bot. The vocabulary is normalized and copied;
// a nil rng uses a randomly seeded one.
func NewHeuristicPlayer(name string, vocab []string, rng game.Rand) *HeuristicPlayer {
	if rng == nil {
		rng = game.NewRand("")
	}
	words := lo.Uniq(lo.FilterMap(vocab, func(w string, _ int) (string, bool) {
		w = game.Normalize(w)
		return w, game.IsWord(w)
	}))
	return &HeuristicPlayer{name: name, vocab: words, rng: rng}
}

func (p *HeuristicPlayer) Name() string {
	return p.name
}

// Turn picks the next guess.
func (p *HeuristicPlayer) Turn(sv game.StateView) (string, error) {
	if len(sv.GoodGuesses)*2 <= sv.BlankCount {
		vowels := lo.Intersect(Vowels, sv.Unguessed)
		if len(vowels) > 0 {
			return p.pick(vowels), nil
		}
		return p.randomLetter(sv)
	}

	candidates := p.Candidates(sv)
	log.Debug().Str("player", p.name).Str("pattern", sv.Pattern.String()).
		Int("candidates", len(candidates)).Msg("narrowed")
	if len(candidates) > 0 && len(candidates) < SolveThreshold {
		return p.pick(candidates), nil
	}
	return p.randomLetter(sv)
}

// Candidates returns the vocabulary words that fit the board, weren't
// already tried, and contain none of the missed letters.
func (p *HeuristicPlayer) Candidates(sv game.StateView) []string {
	misses := strings.Join(sv.BadGuesses, "")
	return lo.Filter(p.vocab, func(w string, _ int) bool {
		if !game.Matches(w, sv.Pattern) {
			return false
		}
		if sv.HasTriedWord(w) {
			return false
		}
		return misses == "" || !strings.ContainsAny(w, misses)
	})
}

func (p *HeuristicPlayer) randomLetter(sv game.StateView) (string, error) {
	if len(sv.Unguessed) == 0 {
		return "", ErrNoMovesLeft
	}
	return p.pick(sv.Unguessed), nil
}

func (p *HeuristicPlayer) pick(choices []string) string {
	return choices[p.rng.Intn(len(choices))]
}
