package game

// Point is a cell on the character grid, origin top-left
type Point struct {
	X, Y int
}

// Ball steps one cell diagonally per tick. Both direction components are
// always -1 or +1.
type Ball struct {
	pos    Point
	prev   Point
	dx, dy int
}

// NewBall creates a ball at x,y moving right and down
func NewBall(x, y int) *Ball {
	return &Ball{
		pos:  Point{X: x, Y: y},
		prev: Point{X: x, Y: y},
		dx:   1,
		dy:   1,
	}
}

// Position returns the current cell
func (b *Ball) Position() Point {
	return b.pos
}

// Previous returns the cell the ball was last drawn at
func (b *Ball) Previous() Point {
	return b.prev
}

// Direction returns the per-tick step on each axis
func (b *Ball) Direction() (dx, dy int) {
	return b.dx, b.dy
}

// Advance moves the ball by its direction. Bounds are the caller's problem.
func (b *Ball) Advance() {
	b.pos.X += b.dx
	b.pos.Y += b.dy
}

// ReflectVertical reverses vertical direction (wall bounce)
func (b *Ball) ReflectVertical() {
	b.dy = -b.dy
}

// ReflectHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) ReflectHorizontal() {
	b.dx = -b.dx
}

// Reset places the ball at x,y and launches it left or right.
// The vertical direction is kept as it was.
func (b *Ball) Reset(x, y int, launchRight bool) {
	b.pos = Point{X: x, Y: y}
	if launchRight {
		b.dx = 1
	} else {
		b.dx = -1
	}
}

func (b *Ball) markDrawn() {
	b.prev = b.pos
}
