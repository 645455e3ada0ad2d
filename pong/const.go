package pong

const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

const (
	InitBallSpeed   = 3
	InitPaddleShift = 40
	PaddleStep      = 5
)
