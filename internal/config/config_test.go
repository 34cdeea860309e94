package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jason-s-yu/uno/internal/game"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.Sim.Games)
	assert.Equal(t, 4, cfg.Sim.Players)
	assert.Equal(t, 0, cfg.Sim.Workers)
	assert.Equal(t, int64(0), cfg.Sim.Seed)
	assert.Equal(t, 5000, cfg.Sim.MaxSteps)

	rules, err := cfg.Ruleset()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultRuleset(), rules)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("UNO_SIM_GAMES", "12")
	t.Setenv("UNO_SIM_SEED", "99")
	t.Setenv("UNO_LOG_FORMAT", "json")
	t.Setenv("UNO_STACKING", "true")
	t.Setenv("UNO_FORCE_PLAY", "false")
	t.Setenv("UNO_NUMBER_OF_DECKS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Sim.Games)
	assert.Equal(t, int64(99), cfg.Sim.Seed)

	rules, err := cfg.Ruleset()
	require.NoError(t, err)
	assert.True(t, rules.Stacking)
	assert.False(t, rules.ForcePlay)
	assert.Equal(t, 2, rules.NumberOfDecks)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UNO_SIM_PLAYERS=6\nUNO_JUMP_INS=true\n"), 0o600))
	// godotenv writes into the process environment; register cleanup first
	t.Setenv("UNO_SIM_PLAYERS", "")
	t.Setenv("UNO_JUMP_INS", "")
	require.NoError(t, os.Unsetenv("UNO_SIM_PLAYERS"))
	require.NoError(t, os.Unsetenv("UNO_JUMP_INS"))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Sim.Players)
	assert.True(t, cfg.Rules.JumpIns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, env := range map[string][2]string{
		"non numeric games": {"UNO_SIM_GAMES", "lots"},
		"zero games":        {"UNO_SIM_GAMES", "0"},
		"zero players":      {"UNO_SIM_PLAYERS", "0"},
		"negative workers":  {"UNO_SIM_WORKERS", "-2"},
		"bad level":         {"UNO_LOG_LEVEL", "chatty"},
		"bad format":        {"UNO_LOG_FORMAT", "xml"},
		"no decks":          {"UNO_NUMBER_OF_DECKS", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLoggerText(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "text"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.LogLevel = "nope"
	_, err = cfg.NewLogger()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
