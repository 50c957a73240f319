package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigWordList          = "word-list"
	ConfigMinWordLength     = "min-word-length"
	ConfigPlayers           = "players"
	ConfigBot               = "bot"
	ConfigBotName           = "bot-name"
	ConfigBotVocab          = "bot-vocab"
	ConfigBadGuessAllowance = "bad-guess-allowance"
	ConfigSeed              = "seed"
	ConfigDebug             = "debug"
	ConfigAutoplayGames     = "autoplay-games"
	ConfigAutoplayThreads   = "autoplay-threads"
	ConfigAutoplayLogfile   = "autoplay-logfile"
	ConfigFile              = "config-file"
)

// Config holds every setting, keyed by flag name. Flags can also be given as
// HANGMAN_* environment variables or in a YAML config file.
type Config struct {
	*viper.Viper
}

// Load parses args. Precedence is flags and env vars, then the config file,
// then defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := flag.NewFlagSetWithEnvPrefix("hangman", "HANGMAN", flag.ContinueOnError)
	fs.String(ConfigWordList, "", "path to the word list; uses the built-in list if empty")
	fs.Int(ConfigMinWordLength, 5, "minimum length of the secret word")
	fs.String(ConfigPlayers, "", "comma-separated names of the human players")
	fs.Bool(ConfigBot, false, "add one automated player")
	fs.String(ConfigBotName, "Computer", "name of the automated player")
	fs.String(ConfigBotVocab, "", "separate vocabulary for the automated player; uses the word list if empty")
	fs.Int(ConfigBadGuessAllowance, 6, "total bad guesses shared out among the players")
	fs.String(ConfigSeed, "", "seed for reproducible games; random if empty")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigAutoplayGames, 100, "number of games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of concurrent autoplay games")
	fs.String(ConfigAutoplayLogfile, "/tmp/hangman_autoplay.txt", "where autoplay writes its game log")
	fs.String(ConfigFile, "", "optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.VisitAll(func(f *flag.Flag) {
		c.SetDefault(f.Name, f.DefValue)
	})
	if path := fs.Lookup(ConfigFile).Value.String(); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	// Visit only walks flags that were actually given.
	fs.Visit(func(f *flag.Flag) {
		c.Set(f.Name, f.Value.String())
	})
	return nil
}

// PlayerNames returns the human player names, in order.
func (c *Config) PlayerNames() []string {
	var names []string
	for _, n := range strings.Split(c.GetString(ConfigPlayers), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// AdjustRelativePaths resolves word list paths that don't exist relative to
// the working directory against the executable's directory instead.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigWordList, ConfigBotVocab} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		adjusted := filepath.Join(basePath, p)
		log.Debug().Str("key", key).Str("path", adjusted).Msg("adjusted-relative-path")
		c.Set(key, adjusted)
	}
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
