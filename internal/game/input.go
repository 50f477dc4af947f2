package game

// Action is a logical input the engine understands, independent of the key
// that produced it.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionSelect3
	ActionSelect5
	ActionSelect7
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionSelect3:
		return "Select3"
	case ActionSelect5:
		return "Select5"
	case ActionSelect7:
		return "Select7"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the key-down state of every action for one frame.
type InputFrame struct {
	held uint16
}

// NewInputFrame returns a frame with the given actions held down.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func (f *InputFrame) Set(a Action) {
	f.held |= 1 << uint(a)
}

func (f InputFrame) Has(a Action) bool {
	return f.held&(1<<uint(a)) != 0
}

func (f InputFrame) Empty() bool {
	return f.held == 0
}
