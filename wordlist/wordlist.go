// Package wordlist loads the words a game draws its secret from, and the
// vocabulary an automated player guesses with.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/hangman/game"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in word list, filtered to minLength.
func Default(minLength int) ([]string, error) {
	return FromReader(strings.NewReader(defaultWords), minLength)
}

// Load reads a word list file, one word per line. An empty path means the
// built-in list.
func Load(path string, minLength int) ([]string, error) {
	if path == "" {
		return Default(minLength)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()
	words, err := FromReader(f, minLength)
	if err != nil {
		return nil, fmt.Errorf("word list %q: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded-word-list")
	return words, nil
}

// FromReader returns the distinct words of at least minLength letters, in
// file order and uppercased. Blank lines and entries with anything other
// than letters are skipped.
func FromReader(r io.Reader, minLength int) ([]string, error) {
	var words []string
	lines := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines++
		w := game.Normalize(sc.Text())
		if len(w) < minLength || !game.IsWord(w) {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if lines == 0 {
		return nil, &game.ResourceError{Err: game.ErrEmptyWordList}
	}
	words = lo.Uniq(words)
	if len(words) == 0 {
		return nil, &game.ResourceError{Err: fmt.Errorf("%w (minimum %d)", game.ErrNoEligibleWords, minLength)}
	}
	return words, nil
}
