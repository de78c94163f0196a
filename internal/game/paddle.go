package game

// topRow is the first playable row; row 0 holds the score and row 1 the top border.
const topRow = 2

// Paddle is a vertical bar on a fixed column. Only y changes, one row at a
// time, and never past the borders.
type Paddle struct {
	x, y   int
	prevY  int
	height int
}

// NewPaddle creates a paddle whose top cell is at x,y
func NewPaddle(x, y, height int) *Paddle {
	return &Paddle{x: x, y: y, prevY: y, height: height}
}

// X returns the paddle column
func (p *Paddle) X() int { return p.x }

// Y returns the row of the top cell
func (p *Paddle) Y() int { return p.y }

// Height returns the number of rows drawn
func (p *Paddle) Height() int { return p.height }

// Previous returns the top cell the paddle was last drawn at
func (p *Paddle) Previous() Point {
	return Point{X: p.x, Y: p.prevY}
}

// MoveUp moves one row up unless already touching the top border
func (p *Paddle) MoveUp() {
	if p.y > topRow {
		p.y--
	}
}

// MoveDown moves one row down unless the bottom cell already touches the
// bottom border of a playfield with playableHeight rows
func (p *Paddle) MoveDown(playableHeight int) {
	if p.y < (playableHeight+topRow)-p.height {
		p.y++
	}
}

// InReach reports whether a ball on row y can be returned by this paddle.
// The window spans height+1 rows: one more than the drawn paddle.
func (p *Paddle) InReach(y int) bool {
	return y >= p.y && y <= p.y+p.height
}

func (p *Paddle) markDrawn() {
	p.prevY = p.y
}
