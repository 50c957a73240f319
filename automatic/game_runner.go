// Package automatic plays out hangman games between automated players, for
// measuring how the heuristic does over many secret words.
package automatic

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	aiplayer "github.com/domino14/hangman/ai/player"
	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
)

// GameRecord is one finished automatic game.
type GameRecord struct {
	GameID     string
	Secret     string
	Outcome    game.Outcome
	Winner     string
	Turns      int
	BadGuesses int
}

var csvHeader = []string{"gameID", "secret", "outcome", "winner", "turns", "badguesses"}

func (rec GameRecord) csvRow() []string {
	return []string{rec.GameID, rec.Secret, rec.Outcome.String(), rec.Winner,
		strconv.Itoa(rec.Turns), strconv.Itoa(rec.BadGuesses)}
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	words     []string
	vocab     []string
	botNames  []string
	allowance int
	minLength int
	seed      string
}

// NewGameRunner sets up a runner with one bot, named and limited per cfg.
// A nil vocab means the bots guess from the same words as the secret pool.
func NewGameRunner(cfg *config.Config, words, vocab []string) *GameRunner {
	if vocab == nil {
		vocab = words
	}
	return &GameRunner{
		words:     words,
		vocab:     vocab,
		botNames:  []string{cfg.GetString(config.ConfigBotName)},
		allowance: cfg.GetInt(config.ConfigBadGuessAllowance),
		minLength: cfg.GetInt(config.ConfigMinWordLength),
		seed:      cfg.GetString(config.ConfigSeed),
	}
}

// SetBots replaces the bots that play each game.
func (r *GameRunner) SetBots(names ...string) {
	r.botNames = names
}

// PlayGame plays one full game with rng driving the secret and every bot.
func (r *GameRunner) PlayGame(rng game.Rand) (GameRecord, error) {
	players := make([]game.Player, len(r.botNames))
	for i, name := range r.botNames {
		players[i] = aiplayer.NewHeuristicPlayer(name, r.vocab, rng)
	}
	g, err := game.NewGame(r.words, players, game.WithRand(rng),
		game.WithAllowance(r.allowance), game.WithMinLength(r.minLength))
	if err != nil {
		return GameRecord{}, err
	}
	outcome, err := g.Play()
	if err != nil {
		return GameRecord{}, fmt.Errorf("automatic game: %w", err)
	}
	rec := GameRecord{
		GameID:  uuid.NewString(),
		Secret:  g.Secret(),
		Outcome: outcome,
		Winner:  g.Winner(),
		Turns:   g.Turn(),
	}
	for i := 0; i < g.NumPlayers(); i++ {
		rec.BadGuesses += g.BadGuessesFor(i)
	}
	log.Debug().Str("secret", rec.Secret).Str("outcome", outcome.String()).
		Int("turns", rec.Turns).Msg("automatic-game-over")
	return rec, nil
}

func (r *GameRunner) threadRand(thread int) game.Rand {
	if r.seed == "" {
		return game.NewRand("")
	}
	return game.NewRand(fmt.Sprintf("%s-%d", r.seed, thread))
}
