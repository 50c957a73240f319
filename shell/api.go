package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	aiplayer "github.com/domino14/hangman/ai/player"
	"github.com/domino14/hangman/automatic"
	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
	"github.com/domino14/hangman/wordlist"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// Options that take no value.
var boolOptions = map[string]bool{
	"bot": true,
}

func msg(message string) *Response {
	return &Response{message: message}
}

// extractFields splits a command line into the command, its positional
// arguments and its -options. It returns nil for a blank line.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if len(f) < 2 || !strings.HasPrefix(f, "-") {
			cmd.args = append(cmd.args, f)
			continue
		}
		key := strings.TrimPrefix(f, "-")
		if boolOptions[key] {
			cmd.options[key] = append(cmd.options[key], "true")
			continue
		}
		if i+1 >= len(fields) {
			return nil, fmt.Errorf("option -%s needs a value", key)
		}
		cmd.options[key] = append(cmd.options[key], fields[i+1])
		i++
	}
	return cmd, nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	case "show":
		return sc.show()
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, fmt.Errorf("unknown command %v; type help for a list", cmd.cmd)
}

func (sc *ShellController) loadWords() ([]string, error) {
	return wordlist.Load(sc.config.GetString(config.ConfigWordList),
		sc.config.GetInt(config.ConfigMinWordLength))
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	names := cmd.args
	if len(names) == 0 {
		names = sc.config.PlayerNames()
	}
	withBot := cmd.options.Bool("bot") || sc.config.GetBool(config.ConfigBot)
	if len(names) == 0 && !withBot {
		return nil, errors.New("need at least one player; give names or -bot")
	}
	allowance, err := cmd.options.IntDefault("allowance", sc.config.GetInt(config.ConfigBadGuessAllowance))
	if err != nil {
		return nil, err
	}

	words, err := sc.loadWords()
	if err != nil {
		return nil, err
	}
	rng := game.NewRand(sc.config.GetString(config.ConfigSeed))

	players := make([]game.Player, 0, len(names)+1)
	for _, n := range names {
		players = append(players, game.NewHumanPlayer(n, sc.input))
	}
	if withBot {
		vocab := words
		vocabPath := cmd.options.String("vocab")
		if vocabPath == "" {
			vocabPath = sc.config.GetString(config.ConfigBotVocab)
		}
		if vocabPath != "" {
			// Any length may fit the board, so the vocabulary isn't
			// filtered by the secret word minimum.
			vocab, err = wordlist.Load(vocabPath, 1)
			if err != nil {
				return nil, err
			}
		}
		players = append(players, aiplayer.NewHeuristicPlayer(
			sc.config.GetString(config.ConfigBotName), vocab, rng))
	}

	g, err := game.NewGame(words, players,
		game.WithRand(rng),
		game.WithAllowance(allowance),
		game.WithMinLength(sc.config.GetInt(config.ConfigMinWordLength)),
		game.WithObserver(sc))
	if err != nil {
		return nil, err
	}
	sc.curGame = g
	_, err = g.Play()
	if errors.Is(err, errAbandoned) {
		return msg("Game abandoned."), nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	logfile := cmd.options.String("logfile")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayLogfile)
	}

	words, err := sc.loadWords()
	if err != nil {
		return nil, err
	}
	var vocab []string
	if p := sc.config.GetString(config.ConfigBotVocab); p != "" {
		if vocab, err = wordlist.Load(p, 1); err != nil {
			return nil, err
		}
	}
	runner := automatic.NewGameRunner(sc.config, words, vocab)
	if bots := cmd.options.String("bots"); bots != "" {
		runner.SetBots(strings.Split(bots, ",")...)
	}

	// Ctrl-C stops the batch early but still reports on what was played.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	sc.showMessage(fmt.Sprintf("Playing %d games on %d threads, logging to %s", games, threads, logfile))
	summary, err := runner.StartAutoplay(ctx, games, threads, logfile)
	if summary == nil {
		return nil, err
	}
	if err != nil {
		sc.showError(err)
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) show() (*Response, error) {
	g := sc.curGame
	if g == nil {
		return nil, errors.New("no game has been started")
	}
	text := g.ToDisplayText()
	if g.Outcome() == game.InProgress {
		text += fmt.Sprintf("%s is on turn.", g.PlayerName(g.PlayerOnTurn()))
	}
	return msg(text), nil
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: analyze <logfile>")
	}
	summary, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}
