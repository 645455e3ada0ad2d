package pong

// Paddle is a vertical bat. The human paddle is driven through Move and
// SetCenterY, the CPU paddle through Track. Every mutation clamps the
// paddle to the screen.
type Paddle struct {
	Rect
	screen Rect
}

// NewPaddle creates a w x h paddle at horizontal center x, vertically
// centered on screen.
func NewPaddle(x, w, h float32, screen Rect) *Paddle {
	p := &Paddle{
		Rect:   NewRect(x, screen.Center.Y, w, h),
		screen: screen,
	}
	p.clamp()
	return p
}

// Move shifts the paddle vertically by dy.
func (p *Paddle) Move(dy float32) {
	p.Center.Y += dy
	p.clamp()
}

// SetCenterY places the paddle's vertical center at y.
func (p *Paddle) SetCenterY(y float32) {
	p.Center.Y = y
	p.clamp()
}

// Track follows the ball's vertical center with no delay.
func (p *Paddle) Track(b *Ball) {
	p.SetCenterY(b.Center.Y)
}

func (p *Paddle) clamp() {
	p.ClampY(p.screen.Top(), p.screen.Bottom())
}
