package game

import (
	"regexp"
	"strings"
)

const (
	// Placeholder is shown on the board for an unrevealed position.
	Placeholder = "_"
	wildcard    = "."
)

// Pattern is an anchored positional pattern: revealed letters must match
// exactly and every other position matches any single character.
type Pattern struct {
	re     *regexp.Regexp
	length int
}

func newPattern(secret string, guessed map[string]struct{}) *Pattern {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range secret {
		l := string(r)
		if _, ok := guessed[l]; ok {
			sb.WriteString(regexp.QuoteMeta(l))
		} else {
			sb.WriteString(wildcard)
		}
	}
	sb.WriteString("$")
	return &Pattern{
		re:     regexp.MustCompile(sb.String()),
		length: len(secret),
	}
}

// Len is the exact length a candidate must have to match.
func (p *Pattern) Len() int {
	if p == nil {
		return 0
	}
	return p.length
}

func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.re.String()
}

// Matches returns true if candidate, trimmed of surrounding whitespace, fits
// the pattern in full.
func Matches(candidate string, p *Pattern) bool {
	if p == nil {
		return false
	}
	return p.re.MatchString(strings.TrimSpace(candidate))
}
