package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diegok/gridpong/internal/game"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI != AIAsk {
		t.Errorf("expected AI mode ask, got %v", cfg.AI)
	}
	if cfg.Width != 60 {
		t.Errorf("expected width 60, got %d", cfg.Width)
	}
	if cfg.Height != 20 {
		t.Errorf("expected height 20, got %d", cfg.Height)
	}
	if cfg.PaddleHeight != 4 {
		t.Errorf("expected paddle height 4, got %d", cfg.PaddleHeight)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("expected tick 100ms, got %v", cfg.TickInterval)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected no log file, got '%s'", cfg.LogFile)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("expected log level info, got %v", cfg.LogLevel)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{
		"--ai", "yes",
		"--width", "80",
		"--height", "24",
		"--paddle-height", "6",
		"--tick", "50ms",
		"--seed", "42",
		"--log-file", "pong.log",
		"--log-level", "debug",
	}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI != AIOn {
		t.Errorf("expected AI mode on, got %v", cfg.AI)
	}
	if cfg.Width != 80 || cfg.Height != 24 {
		t.Errorf("expected 80x24, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.PaddleHeight != 6 {
		t.Errorf("expected paddle height 6, got %d", cfg.PaddleHeight)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("expected tick 50ms, got %v", cfg.TickInterval)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.LogFile != "pong.log" {
		t.Errorf("expected log file 'pong.log', got '%s'", cfg.LogFile)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("expected log level debug, got %v", cfg.LogLevel)
	}
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("GRIDPONG_AI", "false")
	t.Setenv("GRIDPONG_PADDLE_HEIGHT", "3")

	cfg, err := ParseArgs([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI != AIOff {
		t.Errorf("expected AI mode off from env, got %v", cfg.AI)
	}
	if cfg.PaddleHeight != 3 {
		t.Errorf("expected paddle height 3 from env, got %d", cfg.PaddleHeight)
	}
}

func TestParseArgs_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("GRIDPONG_WIDTH", "100")

	cfg, err := ParseArgs([]string{"--width", "70"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 70 {
		t.Errorf("expected width 70, got %d", cfg.Width)
	}
}

func TestParseArgs_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpong.yaml")
	content := "ai: yes\nwidth: 72\ntick: 80ms\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ParseArgs([]string{"--config", path, "--width", "64"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI != AIOn {
		t.Errorf("expected AI mode on from file, got %v", cfg.AI)
	}
	if cfg.Width != 64 {
		t.Errorf("expected flag width 64 to win over file, got %d", cfg.Width)
	}
	if cfg.TickInterval != 80*time.Millisecond {
		t.Errorf("expected tick 80ms from file, got %v", cfg.TickInterval)
	}
}

func TestParseArgs_MissingConfigFile(t *testing.T) {
	_, err := ParseArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--server"}},
		{"bad ai", []string{"--ai", "maybe"}},
		{"narrow", []string{"--width", "10"}},
		{"short", []string{"--height", "4"}},
		{"paddle zero", []string{"--paddle-height", "0"}},
		{"paddle too tall", []string{"--paddle-height", "19"}},
		{"zero tick", []string{"--tick", "0s"}},
		{"negative tick", []string{"--tick", "-5ms"}},
		{"bad log level", []string{"--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseAIMode(t *testing.T) {
	tests := []struct {
		in   string
		want AIMode
	}{
		{"", AIAsk},
		{"ask", AIAsk},
		{"ASK", AIAsk},
		{"y", AIOn},
		{"yes", AIOn},
		{"true", AIOn},
		{"1", AIOn},
		{"n", AIOff},
		{"No", AIOff},
		{"false", AIOff},
		{"0", AIOff},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAIMode(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAIMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_Game(t *testing.T) {
	cfg, err := ParseArgs([]string{"--seed", "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gc := cfg.Game(true)
	if !gc.VsComputer {
		t.Error("expected prompt answer to be used when mode is ask")
	}
	if gc.Seed != 7 {
		t.Errorf("expected seed 7, got %d", gc.Seed)
	}
	if gc.Width != game.DefaultWidth || gc.Height != game.DefaultHeight {
		t.Errorf("expected default playfield, got %dx%d", gc.Width, gc.Height)
	}

	cfg.AI = AIOff
	if cfg.Game(true).VsComputer {
		t.Error("expected AI off to override the prompt answer")
	}
	cfg.AI = AIOn
	if !cfg.Game(false).VsComputer {
		t.Error("expected AI on to override the prompt answer")
	}
}

func TestParseArgs_TallPaddleStartsBelowTopBorder(t *testing.T) {
	cfg, err := ParseArgs([]string{"--height", "8", "--paddle-height", "6", "--ai", "no"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := game.New(cfg.Game(false))

	maxY := cfg.Height + 2 - cfg.PaddleHeight
	for _, p := range []*game.Paddle{g.LeftPaddle(), g.RightPaddle()} {
		if p.Y() < 2 || p.Y() > maxY {
			t.Errorf("expected paddle Y in [2,%d], got %d", maxY, p.Y())
		}
	}
}
