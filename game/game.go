// Package game encapsulates the rules of a multiplayer hangman game: the
// secret word, the shared guesses, each player's bad guess count, and the
// turn loop that drives the players.
// Note: a Game doesn't care who its players are. Humans at a console and
// bots are driven the same way through the Player interface.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	DefaultMinLength = 5
	// DefaultAllowance is the number of bad guesses shared out among the
	// players of a game.
	DefaultAllowance = 6
)

// Outcome is the state of a game as a whole.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// GuessKind distinguishes single letter guesses from attempts to solve.
type GuessKind int

const (
	LetterGuess GuessKind = iota
	WordGuess
)

// GuessResult describes a guess that was accepted and applied.
type GuessResult struct {
	Guess string
	Kind  GuessKind
	// Correct is true for a letter in the word or the right solve.
	Correct bool
	// Occurrences is how many times a correct letter shows up in the word.
	Occurrences int
	// BadGuesses is the guessing player's bad guess count afterwards.
	BadGuesses int
}

// Game is the internal game structure that owns the secret word and all
// mutable state. Players only ever see a StateView.
type Game struct {
	secret        string
	secretLetters map[string]struct{}

	guessed      map[string]struct{}
	guessedWords []string

	players       playerStates
	maxBadGuesses int
	minLength     int
	allowance     int

	onturn  int
	turnnum int
	winner  string

	randSource Rand
	observer   Observer
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand routes the secret word choice through r.
func WithRand(r Rand) Option {
	return func(g *Game) { g.randSource = r }
}

// WithAllowance sets the total number of bad guesses shared out among the
// players.
func WithAllowance(n int) Option {
	return func(g *Game) { g.allowance = n }
}

// WithMinLength sets the minimum secret word length.
func WithMinLength(n int) Option {
	return func(g *Game) { g.minLength = n }
}

// WithObserver reports turns, guesses and the end of the game to o.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// WithSecret fixes the secret word instead of drawing it from the pool.
func WithSecret(s string) Option {
	return func(g *Game) { g.secret = Normalize(s) }
}

// NewGame validates the players and draws a secret word from words.
func NewGame(words []string, players []Player, opts ...Option) (*Game, error) {
	g := &Game{
		guessed:   make(map[string]struct{}),
		minLength: DefaultMinLength,
		allowance: DefaultAllowance,
		observer:  NopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.randSource == nil {
		g.randSource = NewRand("")
	}

	if len(players) == 0 {
		return nil, &ConfigurationError{Err: ErrNoPlayers}
	}
	seen := make(map[string]bool, len(players))
	g.players = make(playerStates, len(players))
	for idx, p := range players {
		if p == nil {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("player %d", idx), Err: ErrNilPlayer}
		}
		if seen[p.Name()] {
			return nil, &ConfigurationError{Detail: p.Name(), Err: ErrDuplicatePlayer}
		}
		seen[p.Name()] = true
		g.players[idx] = &playerState{Player: p}
	}
	if g.allowance < 0 {
		return nil, &ConfigurationError{Detail: fmt.Sprint(g.allowance), Err: fmt.Errorf("bad guess allowance cannot be negative")}
	}
	g.maxBadGuesses = g.allowance/len(players) + 1

	if g.secret == "" {
		secret, err := g.drawSecret(words)
		if err != nil {
			return nil, err
		}
		g.secret = secret
	} else if !IsWord(g.secret) {
		return nil, &ConfigurationError{Detail: g.secret, Err: ErrBadSecret}
	}
	g.secretLetters = distinctLetters(g.secret)

	log.Debug().Int("players", len(players)).Int("max-bad-guesses", g.maxBadGuesses).
		Int("length", len(g.secret)).Msg("new-game")
	return g, nil
}

func (g *Game) drawSecret(words []string) (string, error) {
	if len(words) == 0 {
		return "", &ResourceError{Err: ErrEmptyWordList}
	}
	eligible := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = Normalize(w)
		return w, len(w) >= g.minLength && IsWord(w)
	})
	if len(eligible) == 0 {
		return "", &ResourceError{Err: fmt.Errorf("%w (minimum %d)", ErrNoEligibleWords, g.minLength)}
	}
	return eligible[g.randSource.Intn(len(eligible))], nil
}

// StateView builds a fresh snapshot of the current game.
func (g *Game) StateView() StateView {
	return NewStateView(g.secret, g.guessed, g.guessedWords, g.players.scores(), g.maxBadGuesses)
}

// Outcome evaluates the game. A revealed word always wins, so a game can't
// be both won and lost.
func (g *Game) Outcome() Outcome {
	if g.revealed() {
		return Won
	}
	for _, p := range g.players {
		if p.badGuesses < g.maxBadGuesses {
			return InProgress
		}
	}
	return Lost
}

func (g *Game) revealed() bool {
	for l := range g.secretLetters {
		if _, ok := g.guessed[l]; !ok {
			return false
		}
	}
	return true
}

// Guess applies the guess of the player at playerIdx. A rejected guess
// returns an *InvalidGuessError and leaves the game untouched.
func (g *Game) Guess(playerIdx int, raw string) (GuessResult, error) {
	if playerIdx < 0 || playerIdx >= len(g.players) {
		return GuessResult{}, fmt.Errorf("player index %d out of range", playerIdx)
	}
	guess := Normalize(raw)
	if g.Outcome() != InProgress {
		return GuessResult{}, &InvalidGuessError{Guess: guess, Err: ErrGameOver}
	}
	ps := g.players[playerIdx]

	switch {
	case guess == "":
		return GuessResult{}, &InvalidGuessError{Err: ErrEmptyGuess}

	case utf8.RuneCountInString(guess) > 1:
		if lo.Contains(g.guessedWords, guess) {
			return GuessResult{}, &InvalidGuessError{Guess: guess, Err: ErrWordAlreadyTried}
		}
		res := GuessResult{Guess: guess, Kind: WordGuess}
		if guess == g.secret {
			for l := range g.secretLetters {
				g.guessed[l] = struct{}{}
			}
			g.winner = ps.Name()
			res.Correct = true
		} else {
			g.guessedWords = append(g.guessedWords, guess)
			ps.badGuesses++
		}
		res.BadGuesses = ps.badGuesses
		g.turnnum++
		log.Debug().Str("player", ps.Name()).Str("word", guess).Bool("correct", res.Correct).
			Msg("solve-attempt")
		return res, nil

	case !IsLetter(guess):
		return GuessResult{}, &InvalidGuessError{Guess: guess, Err: ErrNotAlphabetic}
	}

	if _, ok := g.guessed[guess]; ok {
		return GuessResult{}, &InvalidGuessError{Guess: guess, Err: ErrAlreadyGuessed}
	}
	g.guessed[guess] = struct{}{}
	res := GuessResult{Guess: guess, Kind: LetterGuess}
	if _, ok := g.secretLetters[guess]; ok {
		res.Correct = true
		res.Occurrences = strings.Count(g.secret, guess)
		if g.revealed() {
			g.winner = ps.Name()
		}
	} else {
		ps.badGuesses++
	}
	res.BadGuesses = ps.badGuesses
	g.turnnum++
	log.Debug().Str("player", ps.Name()).Str("letter", guess).Bool("correct", res.Correct).
		Int("occurrences", res.Occurrences).Msg("letter-guess")
	return res, nil
}

// PlayTurn asks the player on turn for guesses until one is accepted, then
// passes the turn on. Rejected guesses don't end the turn.
func (g *Game) PlayTurn() error {
	if g.Outcome() != InProgress {
		return ErrGameOver
	}
	ps := g.players[g.onturn]
	for {
		sv := g.StateView()
		g.observer.TurnStarted(g, ps.Name(), sv)
		raw, err := ps.Turn(sv)
		if err != nil {
			return fmt.Errorf("turn for %v: %w", ps.Name(), err)
		}
		res, err := g.Guess(g.onturn, raw)
		if IsInvalidGuess(err) {
			log.Debug().Str("player", ps.Name()).Err(err).Msg("guess-rejected")
			g.observer.GuessRejected(ps.Name(), err)
			continue
		} else if err != nil {
			return err
		}
		g.observer.GuessApplied(ps.Name(), res)
		break
	}
	g.onturn = g.nextPlayer()
	return nil
}

// nextPlayer goes round-robin from the player on turn, skipping anyone
// whose bad guesses exceed the maximum.
func (g *Game) nextPlayer() int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		idx := (g.onturn + i) % n
		if g.players[idx].badGuesses <= g.maxBadGuesses {
			return idx
		}
	}
	return g.onturn
}

// Play runs turns until the game is won or lost and returns the outcome.
func (g *Game) Play() (Outcome, error) {
	for g.Outcome() == InProgress {
		if err := g.PlayTurn(); err != nil {
			return g.Outcome(), err
		}
	}
	outcome := g.Outcome()
	log.Debug().Str("outcome", outcome.String()).Str("winner", g.winner).
		Int("turns", g.turnnum).Msg("game-over")
	g.observer.GameEnded(outcome, g.winner, g.secret)
	return outcome, nil
}

// Secret returns the secret word once the game is over, and "" before that.
func (g *Game) Secret() string {
	if g.Outcome() == InProgress {
		return ""
	}
	return g.secret
}

func (g *Game) Winner() string {
	return g.winner
}

// Turn is the number of accepted guesses so far.
func (g *Game) Turn() int {
	return g.turnnum
}

// PlayerOnTurn is the index of the player who guesses next.
func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) MaxBadGuesses() int {
	return g.maxBadGuesses
}

// BadGuessesFor returns the bad guess count for the player at idx.
func (g *Game) BadGuessesFor(idx int) int {
	return g.players[idx].badGuesses
}

func (g *Game) PlayerName(idx int) string {
	return g.players[idx].Name()
}
