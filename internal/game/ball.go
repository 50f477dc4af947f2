package game

import (
	"math"
	"math/rand"
	"time"
)

const (
	BallSize          = 7
	MaxBallSpeed      = 8.0  // Per-axis cap, keeps the ball from tunneling through paddles
	ServeSpeedX       = 5.0  // Horizontal speed after a reset
	ServeSpeedY       = 3.0  // Vertical speed after a reset
	SpeedIncrement    = 1.05 // 5% horizontal speed increase per paddle hit
	SpinFactor        = 2.0  // Vertical velocity added for an edge hit
	CollisionCooldown = 5    // Collision checks skipped after a paddle hit
)

// Ball is the moving square. Position is its top-left corner.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	MaxSpeed float64

	spawnX, spawnY float64
	screenWidth    int
	screenHeight   int
	cooldown       int
	rng            *rand.Rand
}

// NewBall creates a ball at its spawn point already launched in a random
// direction. A nil rng falls back to a time-seeded source.
func NewBall(x, y, size float64, screenWidth, screenHeight int, rng *rand.Rand) Ball {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := Ball{
		Size:         size,
		MaxSpeed:     MaxBallSpeed,
		spawnX:       x,
		spawnY:       y,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		rng:          rng,
	}
	b.Reset()
	return b
}

// Move advances the ball by its velocity and bounces it off the top and
// bottom walls. It returns EventWall when a wall was touched this frame.
// Move leaves the collision cooldown alone; CheckCollision counts it down, so
// the five move/check pairs after a hit are the ones skipped.
func (b *Ball) Move() Event {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
		return EventWall
	}
	if maxY := float64(b.screenHeight) - b.Size; b.Y >= maxY {
		b.Y = maxY
		b.VY = -b.VY
		return EventWall
	}
	return EventNone
}

// CheckCollision resolves contact with either paddle, player first. While the
// cooldown is running every call is skipped and consumes one cooldown step.
// It is the only place the cooldown decreases.
func (b *Ball) CheckCollision(player, ai *Paddle) Event {
	if b.cooldown > 0 {
		b.cooldown--
		return EventNone
	}

	box := b.Rect()
	switch {
	case box.Intersects(player.Rect()):
		// Snap to the court side of the paddle and send the ball right.
		b.X = player.X + player.Width
		b.VX = math.Abs(b.VX) * SpeedIncrement
		b.applyHit(player)
	case box.Intersects(ai.Rect()):
		b.X = ai.X - b.Size
		b.VX = -math.Abs(b.VX) * SpeedIncrement
		b.applyHit(ai)
	default:
		return EventNone
	}
	return EventPaddle
}

// applyHit adds spin from the contact offset, caps speed and arms the cooldown.
// The offset is deliberately left unclamped: a ball overlapping past the
// paddle end can get slightly more than full spin.
func (b *Ball) applyHit(p *Paddle) {
	offset := (b.Rect().CenterY() - p.Rect().CenterY()) / (p.Height / 2)
	b.VY += offset * SpinFactor

	b.VX = clamp(b.VX, -b.MaxSpeed, b.MaxSpeed)
	b.VY = clamp(b.VY, -b.MaxSpeed, b.MaxSpeed)

	b.cooldown = CollisionCooldown
}

// Reset puts the ball back on its spawn point and serves it in one of the
// four diagonal directions.
func (b *Ball) Reset() {
	b.X = b.spawnX
	b.Y = b.spawnY
	b.VX = ServeSpeedX * b.randomSign()
	b.VY = ServeSpeedY * b.randomSign()
	b.cooldown = 0
}

func (b *Ball) randomSign() float64 {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Cooldown returns how many collision checks will still be skipped.
func (b *Ball) Cooldown() int {
	return b.cooldown
}

// Spawn returns the coordinates Reset restores.
func (b *Ball) Spawn() (float64, float64) {
	return b.spawnX, b.spawnY
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}
