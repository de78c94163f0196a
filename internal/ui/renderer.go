package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrAborted is returned when the player cancels a prompt
var ErrAborted = errors.New("prompt aborted")

const AIQuestion = "Do you want to play against the computer? (y/n)"

// Renderer draws the screens shown outside of a match
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderPrompt displays a boxed question in the middle of the screen
func (r *Renderer) RenderPrompt(question string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	boxW := len(question) + 4
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}
	r.screen.DrawBox(boxX, boxY, boxW, boxH)
	r.screen.DrawText(boxX+2, boxY+2, question)

	hint := "Esc to quit"
	hintX := (screenW - len(hint)) / 2
	if hintX < 0 {
		hintX = 0
	}
	r.screen.DrawText(hintX, boxY+boxH+1, hint)

	r.screen.Show()
}

// AskYesNo shows question and blocks for a key. y/Y answers yes, Esc and
// Ctrl+C abort, anything else answers no. Cancelling ctx also aborts.
func (r *Renderer) AskYesNo(ctx context.Context, question string) (bool, error) {
	r.RenderPrompt(question)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// wakes PollEvent below
			_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return false, ErrAborted
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return false, ErrAborted
			}
		case *tcell.EventResize:
			r.RenderPrompt(question)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return false, ErrAborted
			}
			return ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'), nil
		}
	}
}
