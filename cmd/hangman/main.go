package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/shell"
)

var (
	GitVersion string
)

//go:embed hangman.txt
var hangmanbanner string

func main() {

	// Determine the directory of the executable. Relative word list paths
	// that aren't found from the working directory are looked up there.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	// Flags go to the config; anything after -- is a shell command to run
	// once, e.g. hangman -bot -- new Alex Jane
	args := os.Args[1:]
	var cmdLine string
	for i, a := range args {
		if a == "--" {
			cmdLine = strings.TrimSpace(strings.Join(args[i+1:], " "))
			args = args[:i]
			break
		}
	}

	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	fmt.Println(hangmanbanner)
	fmt.Println(GitVersion)
	log.Debug().Msgf("executable path: %v", exPath)
	log.Debug().Interface("settings", cfg.SanitizedSettings()).Msg("loaded-config")

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg, GitVersion)
	if cmdLine == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, cmdLine)
		select {
		case sig <- syscall.SIGINT:
		default:
			// the command already asked to quit
		}
	}

	<-idleConnsClosed

	sc.Cleanup()
	log.Debug().Msg("bye")
}
