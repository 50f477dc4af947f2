package game

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	DefaultCourtWidth   = 800
	DefaultCourtHeight  = 600
	DefaultWinningScore = 5
)

// ErrInvalidLayout is returned by NewEngine for court geometry the simulation
// cannot run with, such as a zero paddle height.
var ErrInvalidLayout = errors.New("invalid court layout")

// State is the engine's position in the menu -> playing -> game over flow.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "AI"
	default:
		return ""
	}
}

// Layout is the fixed geometry of a court.
type Layout struct {
	Width        int
	Height       int
	PaddleWidth  int
	PaddleHeight int
	BallSize     int
}

func DefaultLayout() Layout {
	return Layout{
		Width:        DefaultCourtWidth,
		Height:       DefaultCourtHeight,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		BallSize:     BallSize,
	}
}

// Validate rejects layouts that would make the simulation degenerate.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: court size %dx%d", ErrInvalidLayout, l.Width, l.Height)
	case l.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle height must be positive, got %d", ErrInvalidLayout, l.PaddleHeight)
	case l.PaddleWidth <= 0:
		return fmt.Errorf("%w: paddle width must be positive, got %d", ErrInvalidLayout, l.PaddleWidth)
	case l.PaddleHeight > l.Height:
		return fmt.Errorf("%w: paddle height %d exceeds court height %d", ErrInvalidLayout, l.PaddleHeight, l.Height)
	case l.BallSize <= 0 || l.BallSize >= l.Height:
		return fmt.Errorf("%w: ball size %d", ErrInvalidLayout, l.BallSize)
	case 2*(PaddleMargin+l.PaddleWidth) >= l.Width:
		return fmt.Errorf("%w: court width %d leaves no room between paddles", ErrInvalidLayout, l.Width)
	}
	return nil
}

// Engine owns the paddles, the ball and the scores, and advances the match
// one frame at a time. It is not safe for concurrent use.
type Engine struct {
	layout Layout

	player Paddle
	ai     Paddle
	ball   Ball

	playerScore  int
	aiScore      int
	winningScore int
	state        State
	winner       Side
	exited       bool
}

// NewEngine builds an engine sitting in the menu. rng drives ball serves; nil
// means a time-seeded source.
func NewEngine(layout Layout, rng *rand.Rand) (*Engine, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	w, h := float64(layout.Width), float64(layout.Height)
	pw, ph := float64(layout.PaddleWidth), float64(layout.PaddleHeight)
	paddleY := h/2 - ph/2

	return &Engine{
		layout:       layout,
		player:       NewPaddle(PaddleMargin, paddleY, pw, ph),
		ai:           NewPaddle(w-PaddleMargin-pw, paddleY, pw, ph),
		ball:         NewBall(w/2, h/2, float64(layout.BallSize), layout.Width, layout.Height, rng),
		winningScore: DefaultWinningScore,
		state:        StateMenu,
	}, nil
}

// HandleInput applies one frame of input. Actions that mean nothing in the
// current state are ignored.
func (e *Engine) HandleInput(in InputFrame) {
	switch e.state {
	case StateMenu:
		switch {
		case in.Has(ActionSelect3):
			e.StartGame(3)
		case in.Has(ActionSelect5):
			e.StartGame(5)
		case in.Has(ActionSelect7):
			e.StartGame(7)
		}

	case StatePlaying:
		if in.Has(ActionMoveUp) {
			e.player.Move(-PlayerSpeed, e.layout.Height)
		}
		if in.Has(ActionMoveDown) {
			e.player.Move(PlayerSpeed, e.layout.Height)
		}

	case StateGameOver:
		switch {
		case in.Has(ActionRestart):
			e.resetScores()
			e.state = StateMenu
		case in.Has(ActionQuit):
			e.exited = true
		}
	}
}

// StartGame leaves the menu and starts a first-to-winningScore match. It does
// nothing outside the menu or for a target other than 3, 5 or 7.
func (e *Engine) StartGame(winningScore int) bool {
	if e.state != StateMenu || !IsWinningScoreOption(winningScore) {
		return false
	}
	e.winningScore = winningScore
	e.resetScores()
	e.ball.Reset()
	e.state = StatePlaying
	return true
}

func (e *Engine) resetScores() {
	e.playerScore = 0
	e.aiScore = 0
	e.winner = SideNone
}

// Update runs one simulation frame and returns what happened in it, in order.
// Outside StatePlaying it does nothing.
func (e *Engine) Update() []Event {
	if e.state != StatePlaying {
		return nil
	}

	var events []Event
	if ev := e.ball.Move(); ev != EventNone {
		events = append(events, ev)
	}
	if ev := e.ball.CheckCollision(&e.player, &e.ai); ev != EventNone {
		events = append(events, ev)
	}

	switch {
	case e.ball.X <= 0:
		e.aiScore++
		events = append(events, EventScore)
		e.checkGameOver()
		e.ball.Reset()
	case e.ball.X+e.ball.Size >= float64(e.layout.Width):
		e.playerScore++
		events = append(events, EventScore)
		e.checkGameOver()
		e.ball.Reset()
	}

	e.ai.AutoTrack(&e.ball, e.layout.Height)
	return events
}

// checkGameOver ends the match once a side reaches the target. The player is
// checked first.
func (e *Engine) checkGameOver() {
	switch {
	case e.playerScore >= e.winningScore:
		e.winner = SidePlayer
		e.state = StateGameOver
	case e.aiScore >= e.winningScore:
		e.winner = SideAI
		e.state = StateGameOver
	}
}

func (e *Engine) State() State {
	return e.state
}

// Winner is SideNone unless the state is StateGameOver.
func (e *Engine) Winner() Side {
	return e.winner
}

// Scores returns the player's and the AI's points.
func (e *Engine) Scores() (int, int) {
	return e.playerScore, e.aiScore
}

func (e *Engine) WinningScore() int {
	return e.winningScore
}

// Exited reports whether the player chose to leave from the game over screen.
func (e *Engine) Exited() bool {
	return e.exited
}

func (e *Engine) Layout() Layout {
	return e.layout
}
