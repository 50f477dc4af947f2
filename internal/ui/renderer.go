package ui

import (
	"fmt"
	"math"

	"github.com/termpong/pingpong/internal/game"
)

const (
	BallChar   = '\u25A0' // ■
	PaddleChar = '\u2588' // █
	NetChar    = '\u2502' // │

	InterruptHint = "Ctrl+C to quit"
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the screen for the snapshot's state
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()

	switch snap.State {
	case game.StateMenu:
		r.renderMenu()
	case game.StatePlaying:
		r.renderGame(snap)
	case game.StateGameOver:
		r.renderGame(snap)
		r.renderGameOver(snap)
	}

	r.screen.Show()
}

// renderMenu displays the title and game mode options
func (r *Renderer) renderMenu() {
	_, screenH := r.screen.Size()
	top := screenH/2 - 7
	if top < 0 {
		top = 0
	}

	r.screen.DrawCenteredText(top, game.MenuTitle, StyleTitle)
	r.screen.DrawCenteredText(top+3, game.MenuSubtitle, StyleText)
	for i, score := range game.WinningScoreOptions {
		r.screen.DrawCenteredText(top+6+i*2, game.MenuOptionLabel(score), StyleText)
	}
	r.screen.DrawCenteredText(top+13, game.ControlsHint, StyleHint)
	r.screen.DrawCenteredText(top+14, InterruptHint, StyleHint)
}

// courtView maps court coordinates onto the terminal. Row 0 is the score bar.
type courtView struct {
	scaleX, scaleY float64
	screenW        int
	screenH        int
}

func (r *Renderer) newCourtView(snap game.Snapshot) courtView {
	screenW, screenH := r.screen.Size()
	return courtView{
		scaleX:  float64(screenW) / float64(snap.CourtWidth),
		scaleY:  float64(screenH-1) / float64(snap.CourtHeight),
		screenW: screenW,
		screenH: screenH,
	}
}

// cells converts a court rectangle to a cell rectangle at least one cell in
// each direction.
func (v courtView) cells(rect game.Rect) (x, y, w, h int) {
	x = int(rect.X * v.scaleX)
	y = int(rect.Y*v.scaleY) + 1
	w = int(math.Ceil(rect.Right()*v.scaleX)) - x
	h = int(math.Ceil(rect.Bottom()*v.scaleY)) + 1 - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

// renderGame draws the court, paddles, ball and scores
func (r *Renderer) renderGame(snap game.Snapshot) {
	v := r.newCourtView(snap)

	r.screen.FillRect(0, 1, v.screenW, v.screenH-1, StyleCourt, ' ')

	centerX := v.screenW / 2
	for y := 1; y < v.screenH; y++ {
		r.screen.SetCell(centerX, y, StyleNet, NetChar)
	}

	r.drawRect(v, snap.Player, PaddleChar)
	r.drawRect(v, snap.AI, PaddleChar)
	r.drawRect(v, snap.Ball, BallChar)

	r.screen.DrawText(v.screenW/4, 0, fmt.Sprintf("%d", snap.PlayerScore), StyleTitle)
	r.screen.DrawText(v.screenW*3/4, 0, fmt.Sprintf("%d", snap.AIScore), StyleTitle)
	r.screen.DrawCenteredText(0, snap.TargetText(), StyleHint)
}

func (r *Renderer) drawRect(v courtView, rect game.Rect, ch rune) {
	x, y, w, h := v.cells(rect)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := x+dx, y+dy
			if cx >= 0 && cx < v.screenW && cy >= 1 && cy < v.screenH {
				r.screen.SetCell(cx, cy, StyleCourt, ch)
			}
		}
	}
}

// renderGameOver draws the result box over the frozen court
func (r *Renderer) renderGameOver(snap game.Snapshot) {
	screenW, screenH := r.screen.Size()

	boxW := 30
	boxH := 9
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	r.screen.FillRect(boxX, boxY, boxW, boxH, StyleOverlay, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, StyleOverlay)

	r.screen.DrawCenteredText(boxY+2, snap.WinnerText(), StyleWinner)
	r.screen.DrawCenteredText(boxY+4, snap.FinalScoreText(), StyleOverlay)
	r.screen.DrawCenteredText(boxY+6, game.PlayAgainLabel, StyleOverlay)
	r.screen.DrawCenteredText(boxY+7, game.ExitLabel, StyleOverlay)
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	r.screen.DrawCenteredText(screenH/2-2, "ERROR", StyleTitle)
	r.screen.DrawCenteredText(screenH/2, truncate(err, screenW-4), StyleText)
	r.screen.DrawCenteredText(screenH/2+3, "Press any key to continue", StyleHint)

	r.screen.Show()
}

// truncate shortens text to at most limit runes, ending in "..." when cut.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if limit <= 3 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
