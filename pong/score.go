package pong

import "fmt"

// Score holds the points of both players for the current session.
type Score struct {
	Left  int
	Right int
}

// Award gives one point to side. NoSide is ignored.
func (s *Score) Award(side Side) {
	switch side {
	case LeftSide:
		s.Left++
	case RightSide:
		s.Right++
	}
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Left, s.Right)
}
