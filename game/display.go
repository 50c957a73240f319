package game

import (
	"fmt"
	"strings"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := []rune(s)
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, hpad int, text string) []string {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		lines = append(lines, strings.Repeat(" ", hpad)+chunk)
	}
	return lines
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board, the missed letters and tried words, and one line per
// player.
func (g *Game) ToDisplayText() string {
	sv := g.StateView()
	hpadding := 3

	lines := []string{"", strings.Repeat(" ", hpadding) + sv.Board, ""}
	lines = addText(lines, hpadding, fmt.Sprintf("Misses: %s", strings.Join(sv.BadGuesses, " ")))
	if len(sv.GuessedWords) > 0 {
		lines = addText(lines, hpadding, fmt.Sprintf("Tried: %s", strings.Join(sv.GuessedWords, " ")))
	}
	lines = append(lines, "")
	playing := g.Outcome() == InProgress
	for pi, p := range g.players {
		lines = append(lines, p.stateString(playing && g.onturn == pi, g.maxBadGuesses))
	}
	if !playing {
		lines = append(lines, "", fmt.Sprintf("%sGame %s. The word was %s.",
			strings.Repeat(" ", hpadding), g.Outcome(), g.secret))
	}
	return strings.Join(lines, "\n") + "\n"
}
