package game

import "fmt"

// WinningScoreOptions are the match lengths offered in the menu, in menu order.
var WinningScoreOptions = []int{3, 5, 7}

func IsWinningScoreOption(score int) bool {
	for _, opt := range WinningScoreOptions {
		if opt == score {
			return true
		}
	}
	return false
}

// Menu and game over labels.
const (
	MenuTitle      = "PING PONG"
	MenuSubtitle   = "Select Game Mode"
	ControlsHint   = "Controls: W/S to move paddle"
	PlayAgainLabel = "Press R - Play Again"
	ExitLabel      = "Press ESC - Exit"
)

// MenuOptionLabel returns the menu line for a winning score option.
func MenuOptionLabel(score int) string {
	return fmt.Sprintf("Press %d - Best of %d", score, score)
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State        State
	CourtWidth   int
	CourtHeight  int
	Player       Rect
	AI           Rect
	Ball         Rect
	PlayerScore  int
	AIScore      int
	WinningScore int
	Winner       Side
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:        e.state,
		CourtWidth:   e.layout.Width,
		CourtHeight:  e.layout.Height,
		Player:       e.player.Rect(),
		AI:           e.ai.Rect(),
		Ball:         e.ball.Rect(),
		PlayerScore:  e.playerScore,
		AIScore:      e.aiScore,
		WinningScore: e.winningScore,
		Winner:       e.winner,
	}
}

// TargetText is the "First to N" line shown while playing.
func (s Snapshot) TargetText() string {
	return fmt.Sprintf("First to %d", s.WinningScore)
}

// WinnerText is empty until the match is over.
func (s Snapshot) WinnerText() string {
	if s.State != StateGameOver || s.Winner == SideNone {
		return ""
	}
	return fmt.Sprintf("%s Wins!", s.Winner)
}

func (s Snapshot) FinalScoreText() string {
	return fmt.Sprintf("Final Score: %d - %d", s.PlayerScore, s.AIScore)
}
