package ui

import "github.com/gdamore/tcell/v2"

// Screen is a monochrome character grid on top of a tcell screen.
// It tracks a cursor so callers can write runs of characters.
type Screen struct {
	screen   tcell.Screen
	style    tcell.Style
	col, row int
}

func NewScreen(s tcell.Screen) *Screen {
	style := tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset)
	s.SetStyle(style)
	s.HideCursor()
	return &Screen{screen: s, style: style}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// MoveCursor sets where the next WriteChar lands
func (s *Screen) MoveCursor(col, row int) {
	s.col = col
	s.row = row
}

// WriteChar puts ch at the cursor and advances it one column
func (s *Screen) WriteChar(ch rune) {
	s.screen.SetContent(s.col, s.row, ch, nil, s.style)
	s.col++
}

func (s *Screen) Clear() {
	s.screen.Clear()
	s.col, s.row = 0, 0
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) DrawText(x, y int, text string) {
	s.MoveCursor(x, y)
	for _, r := range text {
		s.WriteChar(r)
	}
}

func (s *Screen) DrawBox(x, y, w, h int) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)

	s.screen.SetContent(x, y, topLeft, nil, s.style)
	s.screen.SetContent(x+w-1, y, topRight, nil, s.style)
	s.screen.SetContent(x, y+h-1, bottomLeft, nil, s.style)
	s.screen.SetContent(x+w-1, y+h-1, bottomRight, nil, s.style)

	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, horizontal, nil, s.style)
		s.screen.SetContent(i, y+h-1, horizontal, nil, s.style)
	}

	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, vertical, nil, s.style)
		s.screen.SetContent(x+w-1, j, vertical, nil, s.style)
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostEvent queues ev for PollEvent; it fails when the event queue is full
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}
