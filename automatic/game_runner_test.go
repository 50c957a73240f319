package automatic

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
	"github.com/domino14/hangman/wordlist"
)

func testRunner(t *testing.T, args ...string) *GameRunner {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(append([]string{"-seed", "automatic-test"}, args...)))
	words, err := wordlist.Default(5)
	is.NoErr(err)
	return NewGameRunner(cfg, words, nil)
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	rec, err := runner.PlayGame(game.NewRand("one-game"))
	is.NoErr(err)
	is.True(rec.Outcome == game.Won || rec.Outcome == game.Lost)
	is.True(rec.Secret != "")
	is.True(rec.Turns > 0)
	if rec.Outcome == game.Won {
		is.Equal(rec.Winner, "Computer")
	}
	is.True(rec.GameID != "")
}

func TestPlayGameTwoBots(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	runner.SetBots("Hal", "Marvin")
	rec, err := runner.PlayGame(game.NewRand("two-bots"))
	is.NoErr(err)
	is.True(rec.Outcome != game.InProgress)
}

func TestPlayGameDuplicateBots(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	runner.SetBots("Hal", "Hal")
	_, err := runner.PlayGame(game.NewRand("dup"))
	is.True(err != nil)
}

func TestRun(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	var buf bytes.Buffer
	summary, err := runner.Run(context.Background(), 40, 4, &buf)
	is.NoErr(err)
	is.Equal(summary.Games, 40)
	is.Equal(summary.Won+summary.Lost, 40)
	is.Equal(summary.Wins["Computer"], summary.Won)
	is.Equal(IsPlaying.Value(), int64(0))
	is.Equal(GamesCounter.Value(), int64(40))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 41)
	is.Equal(lines[0], "gameID,secret,outcome,winner,turns,badguesses")

	out := summary.String()
	is.True(strings.Contains(out, "games: 40"))
	is.True(strings.Contains(out, "Turns per game"))
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := runner.Run(ctx, 1000, 2, nil)
	is.True(err != nil)
	is.True(summary.Games < 1000)
}

func TestAnalyzeLogFile(t *testing.T) {
	is := is.New(t)
	runner := testRunner(t)
	path := filepath.Join(t.TempDir(), "autoplay.txt")
	played, err := runner.StartAutoplay(context.Background(), 25, 3, path)
	is.NoErr(err)

	read, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.Equal(read.Games, played.Games)
	is.Equal(read.Won, played.Won)
	is.Equal(read.Lost, played.Lost)
	is.Equal(read.Turns.Max, played.Turns.Max)
}

func TestAnalyzeLogFileBadOutcome(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "bad.txt")
	is.NoErr(os.WriteFile(path, []byte("gameID,secret,outcome,winner,turns,badguesses\nx,APPLE,tied,,3,1\n"), 0644))
	_, err := AnalyzeLogFile(path)
	is.True(err != nil)
}
