package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Constants for the playfield and pacing
const (
	DefaultWidth        = 60
	DefaultHeight       = 20 // Playable rows between the borders
	DefaultPaddleHeight = 4
	DefaultTickInterval = 100 * time.Millisecond
	LeftPaddleOffset    = 2 // Columns from the left wall
	RightPaddleOffset   = 3 // Columns from the right wall
)

// Side identifies a player
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Config holds the construction parameters of a game
type Config struct {
	Width        int
	Height       int
	PaddleHeight int
	VsComputer   bool
	TickInterval time.Duration
	Seed         int64 // 0 seeds from the clock
}

// DefaultConfig returns the classic 60x20 layout with a human opponent
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleHeight: DefaultPaddleHeight,
		TickInterval: DefaultTickInterval,
	}
}

// Option customizes a Game
type Option func(*Game)

// WithLogger sets the logger used for score events
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// Game owns the ball, both paddles and the score
type Game struct {
	width      int
	height     int
	interval   time.Duration
	vsComputer bool

	ball  *Ball
	left  *Paddle
	right *Paddle

	leftScore  int
	rightScore int
	tick       int

	rng *rand.Rand
	log logrus.FieldLogger
}

// New creates a game with the ball centred and both paddles vertically centred
func New(cfg Config, opts ...Option) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	paddleY := startRow(cfg.Height, cfg.PaddleHeight)

	g := &Game{
		width:      cfg.Width,
		height:     cfg.Height,
		interval:   cfg.TickInterval,
		vsComputer: cfg.VsComputer,
		ball:       NewBall(cfg.Width/2, cfg.Height/2),
		left:       NewPaddle(LeftPaddleOffset, paddleY, cfg.PaddleHeight),
		right:      NewPaddle(cfg.Width-RightPaddleOffset, paddleY, cfg.PaddleHeight),
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		g.log = discard
	}
	if g.interval <= 0 {
		g.interval = DefaultTickInterval
	}
	return g
}

// startRow centres a paddle vertically, kept inside the borders for tall paddles
func startRow(height, paddleHeight int) int {
	y := height/2 - paddleHeight/2
	if maxY := height + topRow - paddleHeight; y > maxY {
		y = maxY
	}
	if y < topRow {
		y = topRow
	}
	return y
}

// Ball returns the ball
func (g *Game) Ball() *Ball { return g.ball }

// LeftPaddle returns the paddle driven by W/S
func (g *Game) LeftPaddle() *Paddle { return g.left }

// RightPaddle returns the paddle driven by the arrows or the computer
func (g *Game) RightPaddle() *Paddle { return g.right }

// Tick returns the number of updates run so far
func (g *Game) Tick() int { return g.tick }

// VsComputer reports whether the computer drives the right paddle
func (g *Game) VsComputer() bool { return g.vsComputer }

// Score returns the points of the left and right players
func (g *Game) Score() (left, right int) {
	return g.leftScore, g.rightScore
}

// bottomRow is the last playable row
func (g *Game) bottomRow() int {
	return g.height + 1
}

// Update runs one game tick. The order of the steps is significant.
func (g *Game) Update() {
	g.tick++

	g.ball.Advance()

	// Top/bottom walls. The ball may rest on the boundary row for a frame.
	if g.ball.pos.Y <= topRow || g.ball.pos.Y >= g.bottomRow() {
		g.ball.ReflectVertical()
	}

	if g.touchesPaddle() {
		g.ball.ReflectHorizontal()
	}

	g.checkScore()

	if g.vsComputer {
		g.moveComputerPaddle()
	}
}

// touchesPaddle checks both paddles; a hit on either yields a single bounce
func (g *Game) touchesPaddle() bool {
	pos := g.ball.pos
	return (pos.X == g.left.x+1 && g.left.InReach(pos.Y)) ||
		(pos.X == g.right.x-1 && g.right.InReach(pos.Y))
}

// checkScore awards a point when the ball reaches either outer column
func (g *Game) checkScore() {
	if g.ball.pos.X <= 1 {
		g.rightScore++
		g.scored(SideRight)
	} else if g.ball.pos.X >= g.width-1 {
		g.leftScore++
		g.scored(SideLeft)
	}
}

func (g *Game) scored(side Side) {
	g.log.WithFields(logrus.Fields{
		"side":  side.String(),
		"left":  g.leftScore,
		"right": g.rightScore,
		"tick":  g.tick,
	}).Info("point scored")

	g.resetBall()
}

// resetBall recentres the ball with a coin-flip horizontal direction
func (g *Game) resetBall() {
	g.ball.Reset(g.width/2, g.height/2, g.rng.Intn(2) == 1)
}

// moveComputerPaddle tracks the ball one row per tick
func (g *Game) moveComputerPaddle() {
	if g.ball.pos.Y < g.right.y {
		g.right.MoveUp()
	} else if g.ball.pos.Y > g.right.y+g.right.height-1 {
		g.right.MoveDown(g.height)
	}
}

// HandleAction applies a player key. Right paddle keys are ignored while the
// computer controls it.
func (g *Game) HandleAction(a Action) {
	switch a {
	case ActionLeftUp:
		g.left.MoveUp()
	case ActionLeftDown:
		g.left.MoveDown(g.height)
	case ActionRightUp:
		if !g.vsComputer {
			g.right.MoveUp()
		}
	case ActionRightDown:
		if !g.vsComputer {
			g.right.MoveDown(g.height)
		}
	}
}
