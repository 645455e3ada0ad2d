package pong

// Input is the human player's controls sampled for one tick.
type Input struct {
	Up   bool
	Down bool

	// PointerMoved is set when the pointer moved since the previous tick;
	// the paddle then jumps to PointerY.
	PointerMoved bool
	PointerY     float32
}

// Events describes what happened during one tick.
type Events struct {
	Scored     Side
	WallBounce bool
	PaddleHit  bool
}

// Bounced reports whether the ball changed direction this tick.
func (e Events) Bounced() bool {
	return e.Scored != NoSide || e.WallBounce || e.PaddleHit
}

// Match owns the whole game state: the ball, both paddles and the score.
type Match struct {
	Screen Rect
	Ball   *Ball
	Human  *Paddle
	CPU    *Paddle
	Score  Score
}

// NewMatch sets up a fresh match on a ScreenWidth x ScreenHeight court.
// The sizes normally come from the ball and paddle sprites.
func NewMatch(ballW, ballH, paddleW, paddleH float32) *Match {
	screen := ScreenRect(ScreenWidth, ScreenHeight)
	return &Match{
		Screen: screen,
		Ball:   NewBall(ballW, ballH),
		Human:  NewPaddle(InitPaddleShift, paddleW, paddleH, screen),
		CPU:    NewPaddle(ScreenWidth-InitPaddleShift, paddleW, paddleH, screen),
	}
}

// Step runs one tick: paddles first, then the ball, then collisions.
func (m *Match) Step(in Input) Events {
	var ev Events

	if in.Up {
		m.Human.Move(-PaddleStep)
	}
	if in.Down {
		m.Human.Move(PaddleStep)
	}
	if in.PointerMoved {
		m.Human.SetCenterY(in.PointerY)
	}
	m.CPU.Track(m.Ball)

	ev.Scored, ev.WallBounce = m.Ball.Update(m.Screen)
	m.Score.Award(ev.Scored)

	if m.Ball.Collide(m.Human.Rect) {
		ev.PaddleHit = true
	}
	if m.Ball.Collide(m.CPU.Rect) {
		ev.PaddleHit = true
	}

	return ev
}
