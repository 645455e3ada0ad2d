package pong

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// GetCenter returns the center position of a w x h screen
func GetCenter(w, h int) Position {
	return Position{
		X: float32(w) / 2,
		Y: float32(h) / 2,
	}
}

// Side identifies one half of the court.
type Side byte

const (
	NoSide Side = iota
	LeftSide
	RightSide
)

func (s Side) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	return "none"
}

var (
	BgColor  = colornames.Black
	ObjColor = color.RGBA{120, 226, 160, 255}
)
