package pong

// Velocity is the per-tick displacement of the ball.
type Velocity struct {
	X float32
	Y float32
}

// Ball is the only moving entity that is not player-driven.
type Ball struct {
	Rect
	Velocity Velocity
}

// NewBall creates a w x h ball centered on the screen, heading down-right.
func NewBall(w, h float32) *Ball {
	c := GetCenter(ScreenWidth, ScreenHeight)
	return &Ball{
		Rect: NewRect(c.X, c.Y, w, h),
		Velocity: Velocity{
			X: InitBallSpeed,
			Y: InitBallSpeed,
		},
	}
}

// Update advances the ball one tick inside screen. When the ball leaves
// through a side edge it is sent back and the side that scores the point is
// returned: leaving on the left scores for the right player and vice versa.
// wall reports a bounce off the top or bottom edge.
func (b *Ball) Update(screen Rect) (scored Side, wall bool) {
	b.Move(b.Velocity.X, b.Velocity.Y)

	switch {
	case b.Left() < screen.Left():
		b.Velocity.X = abs(b.Velocity.X)
		scored = RightSide
	case b.Right() > screen.Right():
		b.Velocity.X = -abs(b.Velocity.X)
		scored = LeftSide
	}
	b.ClampX(screen.Left(), screen.Right())

	switch {
	case b.Top() < screen.Top():
		b.Velocity.Y = abs(b.Velocity.Y)
		wall = true
	case b.Bottom() > screen.Bottom():
		b.Velocity.Y = -abs(b.Velocity.Y)
		wall = true
	}
	b.ClampY(screen.Top(), screen.Bottom())

	return scored, wall
}

// Collide flips the horizontal velocity if the ball overlaps r while heading
// toward r's center. An overlap lasting several ticks flips only once.
func (b *Ball) Collide(r Rect) bool {
	if !b.Intersects(r) {
		return false
	}
	if (r.Center.X-b.Center.X)*b.Velocity.X <= 0 {
		return false
	}
	b.Velocity.X = -b.Velocity.X
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
