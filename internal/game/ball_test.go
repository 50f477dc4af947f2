package game

import (
	"math"
	"math/rand"
	"testing"
)

const testCourtWidth = 800

func newTestBall(x, y, vx, vy float64) Ball {
	ball := NewBall(testCourtWidth/2, testCourtHeight/2, BallSize, testCourtWidth, testCourtHeight, rand.New(rand.NewSource(1)))
	ball.X, ball.Y = x, y
	ball.VX, ball.VY = vx, vy
	return ball
}

func testPaddles() (Paddle, Paddle) {
	player := NewPaddle(PaddleMargin, 250, PaddleWidth, PaddleHeight)
	ai := NewPaddle(testCourtWidth-PaddleMargin-PaddleWidth, 250, PaddleWidth, PaddleHeight)
	return player, ai
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBall_Move(t *testing.T) {
	ball := newTestBall(100, 200, 5, -3)

	if ev := ball.Move(); ev != EventNone {
		t.Errorf("expected no event, got %v", ev)
	}
	if ball.X != 105 {
		t.Errorf("expected X=105, got %f", ball.X)
	}
	if ball.Y != 197 {
		t.Errorf("expected Y=197, got %f", ball.Y)
	}
}

func TestBall_Move_TopWall(t *testing.T) {
	ball := newTestBall(400, 50, 0, -3)

	for frame := 1; frame <= 17; frame++ {
		ev := ball.Move()
		if frame < 17 && ev != EventNone {
			t.Fatalf("unexpected %v event at frame %d (y=%f)", ev, frame, ball.Y)
		}
		if frame == 17 && ev != EventWall {
			t.Fatalf("expected wall event at frame 17, got %v (y=%f)", ev, ball.Y)
		}
	}

	if ball.Y != 0 {
		t.Errorf("expected Y clamped to 0, got %f", ball.Y)
	}
	if ball.VY != 3 {
		t.Errorf("expected VY=3 after bounce, got %f", ball.VY)
	}
}

func TestBall_Move_BottomWall(t *testing.T) {
	ball := newTestBall(400, 590, 2, 4)

	if ev := ball.Move(); ev != EventWall {
		t.Fatalf("expected wall event, got %v", ev)
	}
	if ball.Y != testCourtHeight-BallSize {
		t.Errorf("expected Y=%d, got %f", testCourtHeight-BallSize, ball.Y)
	}
	if ball.VY != -4 {
		t.Errorf("expected VY=-4, got %f", ball.VY)
	}
	if ball.VX != 2 {
		t.Errorf("expected VX unchanged, got %f", ball.VX)
	}
}

func TestBall_Move_WallEventMatchesBounds(t *testing.T) {
	maxY := float64(testCourtHeight - BallSize)
	for _, startY := range []float64{1, 4, 50, 300, 589, 590, 592.5} {
		for _, vy := range []float64{-8, -3, -0.5, 0.5, 3, 8} {
			ball := newTestBall(400, startY, 1, vy)
			preY := startY + vy
			wantWall := preY <= 0 || preY >= maxY

			ev := ball.Move()

			if (ev == EventWall) != wantWall {
				t.Errorf("y=%f vy=%f: got %v, want wall=%v", startY, vy, ev, wantWall)
			}
			if ball.Y < 0 || ball.Y > maxY {
				t.Errorf("y=%f vy=%f: ball left the court, Y=%f", startY, vy, ball.Y)
			}
		}
	}
}

func TestBall_CheckCollision_Player(t *testing.T) {
	player, ai := testPaddles()
	// Ball center at 300 matches the paddle center, so no spin.
	ball := newTestBall(15, 296.5, -5, 1)

	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Fatalf("expected paddle event, got %v", ev)
	}

	if ball.X != player.X+player.Width {
		t.Errorf("expected ball snapped to X=%f, got %f", player.X+player.Width, ball.X)
	}
	if !approxEqual(ball.VX, 5.25) {
		t.Errorf("expected VX=5.25, got %f", ball.VX)
	}
	if !approxEqual(ball.VY, 1) {
		t.Errorf("expected VY=1 for a center hit, got %f", ball.VY)
	}
	if ball.Rect().Intersects(player.Rect()) {
		t.Error("ball still overlaps the player paddle after correction")
	}
	if ball.Cooldown() != CollisionCooldown {
		t.Errorf("expected cooldown %d, got %d", CollisionCooldown, ball.Cooldown())
	}
}

func TestBall_CheckCollision_AI(t *testing.T) {
	player, ai := testPaddles()
	ball := newTestBall(776, 296.5, 5, -1)

	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Fatalf("expected paddle event, got %v", ev)
	}

	if ball.X != ai.X-BallSize {
		t.Errorf("expected ball snapped to X=%f, got %f", ai.X-BallSize, ball.X)
	}
	if !approxEqual(ball.VX, -5.25) {
		t.Errorf("expected VX=-5.25, got %f", ball.VX)
	}
	if ball.Rect().Intersects(ai.Rect()) {
		t.Error("ball still overlaps the AI paddle after correction")
	}
}

func TestBall_CheckCollision_Spin(t *testing.T) {
	tests := []struct {
		name   string
		ballY  float64
		wantVY float64
	}{
		// Paddle spans 250..350 with center 300, half height 50.
		{"center", 296.5, 0},
		{"lower half", 321.5, 1},       // offset 0.5
		{"upper half", 246.5 + 25, -1}, // center 275, offset -0.5
		{"past bottom end", 349, 2.1},  // center 352.5, offset 1.05 is not clamped
		{"past top end", 244, -2.1},    // center 247.5, offset -1.05
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, ai := testPaddles()
			ball := newTestBall(15, tt.ballY, -5, 0)

			if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
				t.Fatalf("expected paddle event, got %v", ev)
			}
			if !approxEqual(ball.VY, tt.wantVY) {
				t.Errorf("expected VY=%f, got %f", tt.wantVY, ball.VY)
			}
		})
	}
}

func TestBall_CheckCollision_ClampsSpeed(t *testing.T) {
	player, ai := testPaddles()
	ball := newTestBall(15, 340, -7.9, 7.5)

	ball.CheckCollision(&player, &ai)

	if ball.VX != MaxBallSpeed {
		t.Errorf("expected VX clamped to %f, got %f", MaxBallSpeed, ball.VX)
	}
	if ball.VY != MaxBallSpeed {
		t.Errorf("expected VY clamped to %f, got %f", MaxBallSpeed, ball.VY)
	}

	ball = newTestBall(776, 250, 7.9, -7.5)
	ball.CheckCollision(&player, &ai)

	if ball.VX != -MaxBallSpeed {
		t.Errorf("expected VX clamped to %f, got %f", -MaxBallSpeed, ball.VX)
	}
	if ball.VY != -MaxBallSpeed {
		t.Errorf("expected VY clamped to %f, got %f", -MaxBallSpeed, ball.VY)
	}
}

func TestBall_CheckCollision_Miss(t *testing.T) {
	player, ai := testPaddles()
	ball := newTestBall(400, 300, -5, 3)

	if ev := ball.CheckCollision(&player, &ai); ev != EventNone {
		t.Errorf("expected no event, got %v", ev)
	}
	if ball.VX != -5 || ball.VY != 3 {
		t.Errorf("velocity changed on a miss: (%f, %f)", ball.VX, ball.VY)
	}
	if ball.Cooldown() != 0 {
		t.Errorf("expected no cooldown after a miss, got %d", ball.Cooldown())
	}
}

func TestBall_CheckCollision_PlayerTakesPriority(t *testing.T) {
	// Both paddles overlap the ball.
	player := NewPaddle(0, 0, 50, 100)
	ai := NewPaddle(40, 0, 50, 100)
	ball := newTestBall(42, 40, -5, 0)

	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Fatalf("expected paddle event, got %v", ev)
	}
	if ball.VX <= 0 {
		t.Errorf("expected ball sent right by the player paddle, got VX=%f", ball.VX)
	}
	if ball.X != 50 {
		t.Errorf("expected ball snapped to the player's edge, got X=%f", ball.X)
	}
}

func TestBall_CheckCollision_Cooldown(t *testing.T) {
	player, ai := testPaddles()
	ball := newTestBall(15, 296.5, -5, 0)

	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Fatalf("expected initial paddle event, got %v", ev)
	}

	for i := 1; i <= CollisionCooldown; i++ {
		ball.Move()
		// Force continued overlap with the player paddle.
		ball.X, ball.Y = 15, 296.5
		if ev := ball.CheckCollision(&player, &ai); ev != EventNone {
			t.Fatalf("frame %d: expected collision suppressed, got %v", i, ev)
		}
	}

	ball.Move()
	ball.X, ball.Y = 15, 296.5
	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Errorf("expected collision detection to resume, got %v", ev)
	}
}

func TestBall_CooldownCountedByChecksOnly(t *testing.T) {
	player, ai := testPaddles()
	ball := newTestBall(15, 296.5, -5, 0)
	if ev := ball.CheckCollision(&player, &ai); ev != EventPaddle {
		t.Fatalf("expected paddle event, got %v", ev)
	}

	for i := 0; i < 3; i++ {
		ball.Move()
	}
	if ball.Cooldown() != CollisionCooldown {
		t.Errorf("expected Move to leave cooldown at %d, got %d", CollisionCooldown, ball.Cooldown())
	}

	// Far from both paddles so only the cooldown is consumed.
	ball.X, ball.Y = 400, 300
	for i := 0; i < CollisionCooldown; i++ {
		ball.CheckCollision(&player, &ai)
	}
	if ball.Cooldown() != 0 {
		t.Errorf("expected checks to drain the cooldown, got %d", ball.Cooldown())
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(400, 300, BallSize, testCourtWidth, testCourtHeight, rand.New(rand.NewSource(42)))
	player, ai := testPaddles()

	seen := map[[2]float64]bool{}
	for i := 0; i < 200; i++ {
		ball.X, ball.Y = 15, 296.5
		ball.VX, ball.VY = -7, 6
		ball.CheckCollision(&player, &ai)

		ball.Reset()

		if ball.X != 400 || ball.Y != 300 {
			t.Fatalf("expected spawn (400, 300), got (%f, %f)", ball.X, ball.Y)
		}
		if math.Abs(ball.VX) != ServeSpeedX {
			t.Fatalf("expected |VX|=%f, got %f", ServeSpeedX, ball.VX)
		}
		if math.Abs(ball.VY) != ServeSpeedY {
			t.Fatalf("expected |VY|=%f, got %f", ServeSpeedY, ball.VY)
		}
		if ball.Cooldown() != 0 {
			t.Fatalf("expected cooldown cleared, got %d", ball.Cooldown())
		}
		seen[[2]float64{ball.VX, ball.VY}] = true
	}

	if len(seen) != 4 {
		t.Errorf("expected all four serve directions over 200 resets, saw %d", len(seen))
	}
}

func TestNewBall(t *testing.T) {
	ball := NewBall(400, 300, BallSize, testCourtWidth, testCourtHeight, nil)

	if ball.MaxSpeed != MaxBallSpeed {
		t.Errorf("expected MaxSpeed=%f, got %f", MaxBallSpeed, ball.MaxSpeed)
	}
	if x, y := ball.Spawn(); x != 400 || y != 300 {
		t.Errorf("expected spawn (400, 300), got (%f, %f)", x, y)
	}
	if math.Abs(ball.VX) != ServeSpeedX || math.Abs(ball.VY) != ServeSpeedY {
		t.Errorf("expected a serve velocity, got (%f, %f)", ball.VX, ball.VY)
	}
	if ball.Rect() != (Rect{X: 400, Y: 300, W: BallSize, H: BallSize}) {
		t.Errorf("unexpected rect %+v", ball.Rect())
	}
}
