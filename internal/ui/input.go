package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/gridpong/internal/game"
)

const keyBufferSize = 16

// KeyToAction converts a key event to a paddle action.
// W/S drive the left paddle, the arrow keys the right one.
func KeyToAction(key tcell.Key, r rune) game.Action {
	switch key {
	case tcell.KeyUp:
		return game.ActionRightUp
	case tcell.KeyDown:
		return game.ActionRightDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ActionLeftUp
		case 's', 'S':
			return game.ActionLeftDown
		}
	}
	return game.ActionNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// Keyboard queues paddle keys from the screen for the game loop.
// Events are pumped on a separate goroutine since PollEvent blocks.
type Keyboard struct {
	keys chan game.Action
}

// NewKeyboard starts reading events from s. quit is called on a quit key.
// The pump exits when the screen is finalized.
func NewKeyboard(s *Screen, quit func()) *Keyboard {
	k := &Keyboard{keys: make(chan game.Action, keyBufferSize)}

	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if IsQuitKey(key.Key(), key.Rune()) {
				quit()
				continue
			}
			action := KeyToAction(key.Key(), key.Rune())
			if action == game.ActionNone {
				continue
			}
			// Buffer full: drop the key
			select {
			case k.keys <- action:
			default:
			}
		}
	}()

	return k
}

// TryReadKey returns the oldest queued action without blocking
func (k *Keyboard) TryReadKey() (game.Action, bool) {
	select {
	case a := <-k.keys:
		return a, true
	default:
		return game.ActionNone, false
	}
}
