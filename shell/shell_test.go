package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
)

type scriptedInput struct {
	lines []string
	err   error
	calls int
}

func (s *scriptedInput) Prompt(name string, sv game.StateView) (string, error) {
	if s.calls >= len(s.lines) {
		if s.err != nil {
			return "", s.err
		}
		return "", errors.New("no more input")
	}
	line := s.lines[s.calls]
	s.calls++
	return line, nil
}

func testController(t *testing.T, input game.Prompter, args ...string) (*ShellController, *bytes.Buffer) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(append([]string{"-seed", "shell-test"}, args...)))
	buf := &bytes.Buffer{}
	return &ShellController{out: buf, input: input, config: cfg}, buf
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)

	cmd, err := extractFields("   ")
	is.NoErr(err)
	is.True(cmd == nil)

	cmd, err = extractFields(`new -bot "Mary Ann" Jane -vocab /tmp/words.txt`)
	is.NoErr(err)
	is.Equal(cmd.cmd, "new")
	is.Equal(cmd.args, []string{"Mary Ann", "Jane"})
	is.True(cmd.options.Bool("bot"))
	is.Equal(cmd.options.String("vocab"), "/tmp/words.txt")

	cmd, err = extractFields("autoplay -games 10")
	is.NoErr(err)
	n, err := cmd.options.IntDefault("games", 3)
	is.NoErr(err)
	is.Equal(n, 10)
	n, err = cmd.options.IntDefault("threads", 3)
	is.NoErr(err)
	is.Equal(n, 3)

	_, err = extractFields("autoplay -games")
	is.True(err != nil)

	_, err = extractFields(`new "unterminated`)
	is.True(err != nil)
}

func TestHumanGame(t *testing.T) {
	is := is.New(t)
	input := &scriptedInput{lines: strings.Split("?,e,E,a,i,o,u,t,n,s,r,h,l,d,c,m,p,b,g,y,f,w,k,v,x,z,j,q", ",")}
	sc, buf := testController(t, input)
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("new Jane", sig))
	out := buf.String()
	is.True(strings.Contains(out, "Jane"))
	is.True(strings.Contains(out, "The word was"))
	is.True(strings.Contains(out, "Try again"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("show", sig))
	is.True(strings.Contains(buf.String(), "The word was"))
	is.True(!strings.Contains(buf.String(), "is on turn"))
}

func TestHumanAndBot(t *testing.T) {
	is := is.New(t)
	input := &scriptedInput{lines: strings.Split("e,a,i,o,u,t,n,s,r,h,l,d,c,m,p,b,g,y,f,w,k,v,x,z,j,q", ",")}
	sc, buf := testController(t, input, "-bot-name", "Hal")
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("new -bot Jane", sig))
	out := buf.String()
	is.True(strings.Contains(out, "Hal"))
	is.True(strings.Contains(out, "The word was"))
}

func TestBotOnlyGame(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t, nil, "-bot")
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("new", sig))
	is.True(strings.Contains(buf.String(), "The word was"))
}

func TestAbandonGame(t *testing.T) {
	is := is.New(t)
	input := &scriptedInput{err: errAbandoned}
	sc, buf := testController(t, input)
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("new Jane", sig))
	is.True(strings.Contains(buf.String(), "Game abandoned."))
	is.True(!strings.Contains(buf.String(), "The word was"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("show", sig))
	is.True(strings.Contains(buf.String(), "Jane is on turn."))
}

func TestNewGameErrors(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t, &scriptedInput{})
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("new Alex Alex", sig))
	is.True(strings.Contains(buf.String(), "duplicate player name"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("new", sig))
	is.True(strings.Contains(buf.String(), "need at least one player"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("new -allowance lots Jane", sig))
	is.True(strings.HasPrefix(buf.String(), "Error:"))
}

func TestMissingWordList(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t, &scriptedInput{}, "-word-list", filepath.Join(t.TempDir(), "nope.txt"))
	sig := make(chan os.Signal, 1)
	is.NoErr(sc.standardModeSwitch("new Jane", sig))
	is.True(strings.Contains(buf.String(), "failed to open word list"))
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc, buf := testController(t, nil)
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("show", sig))
	is.True(strings.Contains(buf.String(), "no game has been started"))

	buf.Reset()
	sc.gitVersion = "v1.2.3"
	is.NoErr(sc.standardModeSwitch("help", sig))
	is.True(strings.Contains(buf.String(), "hangman v1.2.3"))
	is.True(strings.Contains(buf.String(), "commands:"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("help rules", sig))
	is.True(strings.Contains(buf.String(), "bad guess"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("help nothing", sig))
	is.True(strings.Contains(buf.String(), "There is no help text"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("dance", sig))
	is.True(strings.Contains(buf.String(), "unknown command"))
}

func TestExit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t, nil)
	sig := make(chan os.Signal, 1)
	is.True(sc.standardModeSwitch("exit", sig) != nil)
	is.Equal(len(sig), 1)
}

func TestAutoplayAndAnalyze(t *testing.T) {
	is := is.New(t)
	logfile := filepath.Join(t.TempDir(), "autoplay.txt")
	sc, buf := testController(t, nil)
	sig := make(chan os.Signal, 1)

	is.NoErr(sc.standardModeSwitch("autoplay -games 6 -threads 2 -bots Hal,Marvin -logfile "+logfile, sig))
	is.True(strings.Contains(buf.String(), "games: 6"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("analyze "+logfile, sig))
	is.True(strings.Contains(buf.String(), "games: 6"))

	buf.Reset()
	is.NoErr(sc.standardModeSwitch("analyze", sig))
	is.True(strings.Contains(buf.String(), "usage: analyze"))
}
