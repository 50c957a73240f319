package game

import (
	"fmt"
)

// Player is anything that can take a turn in a game: a person at a console,
// a bot, a script. The game doesn't care which.
type Player interface {
	Name() string
	// Turn returns the raw guess for this turn. The game normalizes it.
	Turn(sv StateView) (string, error)
}

// Prompter supplies raw guess text for a human player. It may block until
// input is available.
type Prompter interface {
	Prompt(name string, sv StateView) (string, error)
}

// HumanPlayer passes each turn through to a Prompter.
type HumanPlayer struct {
	name     string
	prompter Prompter
}

func NewHumanPlayer(name string, prompter Prompter) *HumanPlayer {
	return &HumanPlayer{name: name, prompter: prompter}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

func (p *HumanPlayer) Turn(sv StateView) (string, error) {
	if p.prompter == nil {
		return "", fmt.Errorf("human player %v has no input source", p.name)
	}
	return p.prompter.Prompt(p.name, sv)
}

type playerState struct {
	Player
	badGuesses int
}

func (p *playerState) stateString(myturn bool, maxBad int) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v %4v/%v", onturn, p.Name(), p.badGuesses, maxBad)
}

type playerStates []*playerState

func (p playerStates) scores() map[string]int {
	m := make(map[string]int, len(p))
	for _, ps := range p {
		m[ps.Name()] = ps.badGuesses
	}
	return m
}
