package pong

import (
	"math/rand"
	"testing"
)

func TestCPUPaddleTracksBall(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float32
		expected float32
	}{
		{"center", 240, 240},
		{"upper half", 100, 100},
		{"lower half", 400, 400},
		{"clamped to top", 10, 30},
		{"clamped to bottom", 475, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := NewPaddle(600, 10, 60, screen)
			b := &Ball{Rect: NewRect(320, tt.ballY, 10, 10)}

			cpu.Track(b)
			if cpu.Center.Y != tt.expected {
				t.Errorf("Expected center %v, got %v", tt.expected, cpu.Center.Y)
			}
		})
	}
}

func TestHumanPaddleStaysOnScreen(t *testing.T) {
	p := NewPaddle(InitPaddleShift, 10, 60, screen)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			p.Move(float32(rng.Intn(41) - 20))
		case 1:
			p.SetCenterY(float32(rng.Intn(1000) - 250))
		case 2:
			p.Move(-PaddleStep)
		}

		if p.Top() < 0 || p.Bottom() > ScreenHeight {
			t.Fatalf("Paddle off screen after step %d: top %v bottom %v", i, p.Top(), p.Bottom())
		}
		if p.Center.Y < 0 || p.Center.Y > ScreenHeight {
			t.Fatalf("Paddle center out of range after step %d: %v", i, p.Center.Y)
		}
	}
}

func TestHumanPaddleMove(t *testing.T) {
	p := NewPaddle(InitPaddleShift, 10, 60, screen)

	p.Move(-PaddleStep)
	if p.Center.Y != 235 {
		t.Errorf("Expected center 235, got %v", p.Center.Y)
	}

	p.SetCenterY(-100)
	if p.Top() != 0 {
		t.Errorf("Expected top edge 0, got %v", p.Top())
	}
}
