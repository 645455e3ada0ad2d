package pong

// Rect is an axis-aligned rectangle described by its center and size.
type Rect struct {
	Center Position
	W, H   float32
}

// NewRect returns a w x h rectangle centered on (x, y).
func NewRect(x, y, w, h float32) Rect {
	return Rect{Center: Position{X: x, Y: y}, W: w, H: h}
}

// ScreenRect returns the rectangle covering a w x h screen.
func ScreenRect(w, h int) Rect {
	c := GetCenter(w, h)
	return Rect{Center: c, W: float32(w), H: float32(h)}
}

func (r Rect) Left() float32   { return r.Center.X - r.W/2 }
func (r Rect) Right() float32  { return r.Center.X + r.W/2 }
func (r Rect) Top() float32    { return r.Center.Y - r.H/2 }
func (r Rect) Bottom() float32 { return r.Center.Y + r.H/2 }

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Move translates the rectangle in place.
func (r *Rect) Move(dx, dy float32) {
	r.Center.X += dx
	r.Center.Y += dy
}

// ClampY shifts r vertically so it lies within [top, bottom]. A rectangle
// taller than the range is pinned to top.
func (r *Rect) ClampY(top, bottom float32) {
	if r.Bottom() > bottom {
		r.Center.Y = bottom - r.H/2
	}
	if r.Top() < top {
		r.Center.Y = top + r.H/2
	}
}

// ClampX is ClampY for the horizontal axis.
func (r *Rect) ClampX(left, right float32) {
	if r.Right() > right {
		r.Center.X = right - r.W/2
	}
	if r.Left() < left {
		r.Center.X = left + r.W/2
	}
}
