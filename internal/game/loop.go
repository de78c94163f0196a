package game

import (
	"context"
	"time"
)

// Run draws the playfield and then ticks until ctx is cancelled:
// update, draw, read at most one key, sleep. There is no catch-up; game
// speed is the tick interval.
func (g *Game) Run(ctx context.Context, s Surface, in InputSource) error {
	g.log.WithField("vs_computer", g.vsComputer).Debug("game loop started")
	g.DrawPlayfield(s)

	timer := time.NewTimer(g.interval)
	defer timer.Stop()

	for {
		g.Update()
		g.Draw(s)

		if a, ok := in.TryReadKey(); ok {
			g.HandleAction(a)
		}

		timer.Reset(g.interval)
		select {
		case <-ctx.Done():
			g.log.WithField("tick", g.tick).Debug("game loop stopped")
			return nil
		case <-timer.C:
		}
	}
}
