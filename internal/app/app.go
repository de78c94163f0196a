package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diegok/gridpong/internal/config"
	"github.com/diegok/gridpong/internal/game"
	"github.com/diegok/gridpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      *logrus.Entry
	screen   *ui.Screen
	renderer *ui.Renderer
}

// NewApp creates a new App instance with the given configuration.
// Every log line carries a fresh session id.
func NewApp(cfg *config.Config, log *logrus.Logger) *App {
	return &App{
		cfg: cfg,
		log: log.WithField("session", uuid.New().String()),
	}
}

// Run initializes the screen, resolves who plays the right paddle and runs
// the match until a quit key or SIGINT/SIGTERM.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	defer a.cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vsComputer, err := a.resolveOpponent(ctx)
	if err != nil {
		if errors.Cause(err) == ui.ErrAborted {
			a.log.Info("aborted at startup prompt")
			return nil
		}
		return err
	}

	g := game.New(a.cfg.Game(vsComputer), game.WithLogger(a.log))
	a.log.WithFields(logrus.Fields{
		"vs_computer": g.VsComputer(),
		"tick":        a.cfg.TickInterval.String(),
	}).Info("match started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keyboard := ui.NewKeyboard(a.screen, cancel)

	if err := g.Run(ctx, a.screen, keyboard); err != nil {
		return errors.Wrap(err, "game loop failed")
	}

	left, right := g.Score()
	a.log.WithFields(logrus.Fields{
		"left":  left,
		"right": right,
		"ticks": g.Tick(),
	}).Info("match ended")
	return nil
}

// resolveOpponent asks the player unless the mode was configured
func (a *App) resolveOpponent(ctx context.Context) (bool, error) {
	switch a.cfg.AI {
	case config.AIOn:
		return true, nil
	case config.AIOff:
		return false, nil
	}
	return a.renderer.AskYesNo(ctx, ui.AIQuestion)
}

// cleanup restores the terminal
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}
}
