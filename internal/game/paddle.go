package game

const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleMargin = 10 // Gap between a paddle and its side of the court

	PlayerSpeed  = 10.0
	AITrackSpeed = 6.0 // Slower than the player so the AI can be beaten
)

// Paddle is a vertically moving bat. X never changes after construction.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewPaddle(x, y, width, height float64) Paddle {
	return Paddle{X: x, Y: y, Width: width, Height: height}
}

// Move shifts the paddle by delta and keeps it inside [0, screenHeight-Height].
func (p *Paddle) Move(delta float64, screenHeight int) {
	p.Y += delta
	p.Y = clamp(p.Y, 0, float64(screenHeight)-p.Height)
}

// AutoTrack steps the paddle one AITrackSpeed increment toward the ball's
// vertical center. There is no prediction: it reacts to where the ball is now.
func (p *Paddle) AutoTrack(ball *Ball, screenHeight int) {
	ballCenter := ball.Rect().CenterY()
	paddleCenter := p.Rect().CenterY()

	switch {
	case ballCenter < paddleCenter:
		p.Move(-AITrackSpeed, screenHeight)
	case ballCenter > paddleCenter:
		p.Move(AITrackSpeed, screenHeight)
	}
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
