package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
)

const defaultPrompt = "\033[31mhangman>\033[0m "

var errAbandoned = errors.New("game abandoned")

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	// input is where human players' guesses come from; the readline
	// instance unless replaced.
	input game.Prompter

	config     *config.Config
	gitVersion string

	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, gitVersion string) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          defaultPrompt,
		HistoryFile:     "/tmp/hangman_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, out: l.Stderr(), config: cfg, gitVersion: gitVersion}
	sc.input = sc
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Prompt reads one guess for the named player from the console.
func (sc *ShellController) Prompt(name string, sv game.StateView) (string, error) {
	sc.l.SetPrompt(fmt.Sprintf("\033[32m%s guesses>\033[0m ", name))
	defer sc.l.SetPrompt(defaultPrompt)
	line, err := sc.l.Readline()
	if err == readline.ErrInterrupt {
		return "", errAbandoned
	} else if err != nil {
		return "", err
	}
	return line, nil
}

// TurnStarted shows the board to whoever is on turn.
func (sc *ShellController) TurnStarted(g *game.Game, name string, sv game.StateView) {
	sc.showMessage(g.ToDisplayText())
}

func (sc *ShellController) GuessRejected(name string, err error) {
	sc.showMessage(fmt.Sprintf("%s: %v. Try again.", name, err))
}

func (sc *ShellController) GuessApplied(name string, res game.GuessResult) {
	switch {
	case res.Kind == game.WordGuess && res.Correct:
		sc.showMessage(fmt.Sprintf("%s solved it with %s!", name, res.Guess))
	case res.Kind == game.WordGuess:
		sc.showMessage(fmt.Sprintf("%s guessed %s. Wrong word!", name, res.Guess))
	case res.Correct && res.Occurrences == 1:
		sc.showMessage(fmt.Sprintf("%s guessed %s. There is 1 %s.", name, res.Guess, res.Guess))
	case res.Correct:
		sc.showMessage(fmt.Sprintf("%s guessed %s. There are %d %ss.", name, res.Guess,
			res.Occurrences, res.Guess))
	default:
		sc.showMessage(fmt.Sprintf("%s guessed %s. No %s in the word.", name, res.Guess, res.Guess))
	}
}

func (sc *ShellController) GameEnded(outcome game.Outcome, winner, secret string) {
	switch outcome {
	case game.Won:
		sc.showMessage(fmt.Sprintf("%s wins! The word was %s.", winner, secret))
	case game.Lost:
		sc.showMessage(fmt.Sprintf("Everyone is out of guesses. The word was %s.", secret))
	}
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	cmd, err := extractFields(line)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if cmd == nil {
		return nil
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")
	case "help":
		if len(cmd.args) == 0 {
			usage(sc.out, sc.gitVersion)
		} else {
			usageTopic(sc.out, cmd.args[0])
		}
		return nil
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.standardModeSwitch(line, sig)
		if err != nil {
			log.Debug().Err(err).Msg("leaving loop")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line, for non-interactive use.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.standardModeSwitch(line, sig)
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("cleaning up shell")
	if sc.l != nil {
		sc.l.Close()
	}
}
