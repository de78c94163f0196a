package config

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diegok/gridpong/internal/game"
)

// Default values for configuration
const (
	DefaultAI       = "ask"
	DefaultLogLevel = "info"
	EnvPrefix       = "GRIDPONG"

	MinWidth  = 20
	MinHeight = 8
)

// AIMode says who drives the right paddle
type AIMode int

const (
	AIAsk AIMode = iota // prompt at startup
	AIOn
	AIOff
)

// Config holds the application configuration
type Config struct {
	AI           AIMode
	Width        int
	Height       int
	PaddleHeight int
	TickInterval time.Duration
	Seed         int64
	LogFile      string
	LogLevel     logrus.Level
}

// Game returns the game construction parameters. vsComputer decides the
// right paddle when the mode is AIAsk.
func (c *Config) Game(vsComputer bool) game.Config {
	switch c.AI {
	case AIOn:
		vsComputer = true
	case AIOff:
		vsComputer = false
	}
	return game.Config{
		Width:        c.Width,
		Height:       c.Height,
		PaddleHeight: c.PaddleHeight,
		VsComputer:   vsComputer,
		TickInterval: c.TickInterval,
		Seed:         c.Seed,
	}
}

// ParseArgs parses command line arguments, environment variables and an
// optional config file, in that order of precedence, and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("gridpong", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // main prints usage

	fs.String("ai", DefaultAI, "computer plays the right paddle: ask, yes or no")
	fs.Int("width", game.DefaultWidth, "playfield width in columns")
	fs.Int("height", game.DefaultHeight, "playable rows between the borders")
	fs.Int("paddle-height", game.DefaultPaddleHeight, "paddle height in rows")
	fs.Duration("tick", game.DefaultTickInterval, "time between game ticks")
	fs.Int64("seed", 0, "random seed (0 uses the clock)")
	fs.String("log-file", "", "write JSON logs to this file")
	fs.String("log-level", DefaultLogLevel, "log level: trace, debug, info, warn, error")
	configFile := fs.String("config", "", "read settings from this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", *configFile)
		}
	}

	ai, err := ParseAIMode(v.GetString("ai"))
	if err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	cfg := &Config{
		AI:           ai,
		Width:        v.GetInt("width"),
		Height:       v.GetInt("height"),
		PaddleHeight: v.GetInt("paddle-height"),
		TickInterval: v.GetDuration("tick"),
		Seed:         v.GetInt64("seed"),
		LogFile:      v.GetString("log-file"),
		LogLevel:     level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseAIMode accepts "ask" or any yes/no style boolean
func ParseAIMode(s string) (AIMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ask":
		return AIAsk, nil
	case "y", "yes", "on":
		return AIOn, nil
	case "n", "no", "off":
		return AIOff, nil
	}

	on, err := cast.ToBoolE(s)
	if err != nil {
		return AIAsk, errors.Errorf("ai must be ask, yes or no, got %q", s)
	}
	if on {
		return AIOn, nil
	}
	return AIOff, nil
}

// Validate checks that the playfield is large enough to play on
func (c *Config) Validate() error {
	if c.Width < MinWidth {
		return errors.Errorf("width must be at least %d, got %d", MinWidth, c.Width)
	}
	if c.Height < MinHeight {
		return errors.Errorf("height must be at least %d, got %d", MinHeight, c.Height)
	}
	if c.PaddleHeight < 1 || c.PaddleHeight > c.Height-2 {
		return errors.Errorf("paddle height must be between 1 and %d, got %d", c.Height-2, c.PaddleHeight)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.TickInterval)
	}
	return nil
}
