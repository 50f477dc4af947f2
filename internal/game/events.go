package game

// Event is something the simulation reports to its collaborators, mainly so
// the frontend can play a sound for it.
type Event int

const (
	EventNone Event = iota
	EventWall
	EventPaddle
	EventScore
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}
