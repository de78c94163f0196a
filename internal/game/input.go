package game

// Action is a recognized paddle key
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
)

func (a Action) String() string {
	switch a {
	case ActionLeftUp:
		return "left-up"
	case ActionLeftDown:
		return "left-down"
	case ActionRightUp:
		return "right-up"
	case ActionRightDown:
		return "right-down"
	}
	return "none"
}

// InputSource supplies at most one queued key per call without blocking
type InputSource interface {
	TryReadKey() (Action, bool)
}
