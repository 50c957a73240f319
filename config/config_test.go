package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigMinWordLength), 5)
	is.Equal(cfg.GetInt(ConfigBadGuessAllowance), 6)
	is.Equal(cfg.GetBool(ConfigBot), false)
	is.Equal(cfg.GetString(ConfigBotName), "Computer")
	is.Equal(cfg.GetString(ConfigWordList), "")
	is.Equal(len(cfg.PlayerNames()), 0)
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-players", "Alex, Jane,", "-bot", "-min-word-length", "7"}))
	is.Equal(cfg.PlayerNames(), []string{"Alex", "Jane"})
	is.True(cfg.GetBool(ConfigBot))
	is.Equal(cfg.GetInt(ConfigMinWordLength), 7)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "hangman.yaml")
	is.NoErr(os.WriteFile(path, []byte("bot-name: Hal\nbad-guess-allowance: 10\n"), 0644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-config-file", path, "-bad-guess-allowance", "3"}))
	is.Equal(cfg.GetString(ConfigBotName), "Hal")
	// The flag wins over the file.
	is.Equal(cfg.GetInt(ConfigBadGuessAllowance), 3)
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"-no-such-flag"}) != nil)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"-word-list", "does/not/exist.txt"}))
	cfg.AdjustRelativePaths("/opt/hangman")
	is.Equal(cfg.GetString(ConfigWordList), "/opt/hangman/does/not/exist.txt")
	is.Equal(cfg.GetString(ConfigBotVocab), "")
}
