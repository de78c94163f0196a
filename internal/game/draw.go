package game

import "fmt"

const (
	BallGlyph       = 'O'
	PaddleGlyph     = '|'
	BlankGlyph      = ' '
	BorderRowGlyph  = '-'
	BorderColGlyph  = '|'
	scoreLineOffset = 6
)

// Surface is a character grid. WriteChar writes at the cursor and moves it
// one column right; nothing is visible until Show.
type Surface interface {
	MoveCursor(col, row int)
	WriteChar(ch rune)
	Clear()
	Show()
}

// DrawPlayfield clears the surface and draws the score line and borders
func (g *Game) DrawPlayfield(s Surface) {
	s.Clear()
	g.drawScore(s)

	// Top and bottom borders
	for _, row := range []int{1, g.height + 2} {
		s.MoveCursor(0, row)
		for col := 0; col < g.width; col++ {
			s.WriteChar(BorderRowGlyph)
		}
	}

	// Side walls
	for row := topRow; row < g.height+2; row++ {
		s.MoveCursor(0, row)
		s.WriteChar(BorderColGlyph)
		s.MoveCursor(g.width-1, row)
		s.WriteChar(BorderColGlyph)
	}

	s.Show()
}

// Draw redraws only the ball, paddles and score. Cells occupied on the
// previous frame are blanked first, then everything is drawn at its current
// position and remembered for the next frame.
func (g *Game) Draw(s Surface) {
	prev := g.ball.Previous()
	putChar(s, prev.X, prev.Y, BlankGlyph)
	g.drawPaddle(s, g.left.Previous(), g.left.height, BlankGlyph)
	g.drawPaddle(s, g.right.Previous(), g.right.height, BlankGlyph)

	g.drawScore(s)

	g.drawPaddle(s, Point{X: g.left.x, Y: g.left.y}, g.left.height, PaddleGlyph)
	g.drawPaddle(s, Point{X: g.right.x, Y: g.right.y}, g.right.height, PaddleGlyph)

	putChar(s, g.ball.pos.X, g.ball.pos.Y, BallGlyph)

	g.ball.markDrawn()
	g.left.markDrawn()
	g.right.markDrawn()

	s.Show()
}

// ScoreLine is the text shown on row 0
func (g *Game) ScoreLine() string {
	return fmt.Sprintf("Player 1: %d | Player 2: %d", g.leftScore, g.rightScore)
}

func (g *Game) drawScore(s Surface) {
	writeString(s, g.width/2-scoreLineOffset, 0, g.ScoreLine())
}

func (g *Game) drawPaddle(s Surface, top Point, height int, ch rune) {
	for i := 0; i < height; i++ {
		putChar(s, top.X, top.Y+i, ch)
	}
}

func putChar(s Surface, col, row int, ch rune) {
	s.MoveCursor(col, row)
	s.WriteChar(ch)
}

func writeString(s Surface, col, row int, text string) {
	s.MoveCursor(col, row)
	for _, r := range text {
		s.WriteChar(r)
	}
}
