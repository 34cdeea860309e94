// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jason-s-yu/uno/internal/game"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned when a decoded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config is everything the simulator reads from the environment.
type Config struct {
	LogLevel  string `env:"UNO_LOG_LEVEL,default=info"`
	LogFormat string `env:"UNO_LOG_FORMAT,default=text"` // text or json

	Sim   SimConfig
	Rules RulesConfig
}

// SimConfig controls a simulation batch.
type SimConfig struct {
	Games    int   `env:"UNO_SIM_GAMES,default=100"`
	Players  int   `env:"UNO_SIM_PLAYERS,default=4"`
	Workers  int   `env:"UNO_SIM_WORKERS,default=0"`      // 0 uses one worker per CPU
	Seed     int64 `env:"UNO_SIM_SEED,default=0"`         // 0 seeds from the clock
	MaxSteps int   `env:"UNO_SIM_MAX_STEPS,default=5000"` // per game
}

// RulesConfig mirrors game.Ruleset, one variable per rule.
type RulesConfig struct {
	StartingHandSize int `env:"UNO_STARTING_HAND_SIZE,default=7"`
	NumberOfDecks    int `env:"UNO_NUMBER_OF_DECKS,default=1"`

	JumpIns      bool `env:"UNO_JUMP_INS,default=false"`
	JumpInsStack bool `env:"UNO_JUMP_INS_STACK,default=false"`

	Stacking                              bool `env:"UNO_STACKING,default=false"`
	StackPlusFoursOnPlusTwos              bool `env:"UNO_STACK_PLUS_FOURS_ON_PLUS_TWOS,default=false"`
	StackAllPlusTwosOnPlusFours           bool `env:"UNO_STACK_ALL_PLUS_TWOS_ON_PLUS_FOURS,default=false"`
	StackColorMatchingPlusTwosOnPlusFours bool `env:"UNO_STACK_COLOR_MATCHING_PLUS_TWOS_ON_PLUS_FOURS,default=false"`

	ForcePlay        bool `env:"UNO_FORCE_PLAY,default=true"`
	DrawUntilCanPlay bool `env:"UNO_DRAW_UNTIL_CAN_PLAY,default=true"`

	SevenSwapHands    bool `env:"UNO_SEVEN_SWAP_HANDS,default=false"`
	ForceSevenSwap    bool `env:"UNO_FORCE_SEVEN_SWAP,default=false"`
	JumpInDuringSeven bool `env:"UNO_JUMP_IN_DURING_SEVEN,default=false"`

	ZeroRotateHands  bool `env:"UNO_ZERO_ROTATE_HANDS,default=false"`
	ForceZeroRotate  bool `env:"UNO_FORCE_ZERO_ROTATE,default=false"`
	JumpInDuringZero bool `env:"UNO_JUMP_IN_DURING_ZERO,default=false"`
}

// Load reads the given .env files, if any, into the process environment and
// decodes the UNO_* variables. Variables already set in the environment win
// over values from the files.
func Load(paths ...string) (*Config, error) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the env decoder cannot express.
func (c *Config) Validate() error {
	if c.Sim.Games < 1 {
		return fmt.Errorf("%w: UNO_SIM_GAMES must be at least 1", ErrInvalidConfig)
	}
	if c.Sim.Players < 1 {
		return fmt.Errorf("%w: UNO_SIM_PLAYERS must be at least 1", ErrInvalidConfig)
	}
	if c.Sim.Workers < 0 {
		return fmt.Errorf("%w: UNO_SIM_WORKERS must not be negative", ErrInvalidConfig)
	}
	if c.Sim.MaxSteps < 1 {
		return fmt.Errorf("%w: UNO_SIM_MAX_STEPS must be at least 1", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: UNO_LOG_FORMAT must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := c.Ruleset(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Ruleset builds a validated game ruleset from the rule variables.
func (c *Config) Ruleset() (*game.Ruleset, error) {
	r := c.Rules
	rules := &game.Ruleset{
		StartingHandSize:                      r.StartingHandSize,
		NumberOfDecks:                         r.NumberOfDecks,
		JumpIns:                               r.JumpIns,
		JumpInsStack:                          r.JumpInsStack,
		Stacking:                              r.Stacking,
		StackPlusFoursOnPlusTwos:              r.StackPlusFoursOnPlusTwos,
		StackAllPlusTwosOnPlusFours:           r.StackAllPlusTwosOnPlusFours,
		StackColorMatchingPlusTwosOnPlusFours: r.StackColorMatchingPlusTwosOnPlusFours,
		ForcePlay:                             r.ForcePlay,
		DrawUntilCanPlay:                      r.DrawUntilCanPlay,
		SevenSwapHands:                        r.SevenSwapHands,
		ForceSevenSwap:                        r.ForceSevenSwap,
		JumpInDuringSeven:                     r.JumpInDuringSeven,
		ZeroRotateHands:                       r.ZeroRotateHands,
		ForceZeroRotate:                       r.ForceZeroRotate,
		JumpInDuringZero:                      r.JumpInDuringZero,
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// NewLogger builds a Logrus logger with the configured level and format.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return logger, nil
}
