package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/pkg/errors"
	"golang.org/x/image/font"

	"github.com/jtestard/simple-pong/pong"
	"github.com/jtestard/simple-pong/sprite"
)

const (
	ticksPerSecond = 60
	scoreFontSize  = 32
	scoreBaseline  = 48
)

const (
	ballFile       = "ball.png"
	paddleFile     = "paddle.png"
	backgroundFile = "background.png"
	bounceFile     = "bounce.wav"
)

var errQuit = errors.New("quit requested")

// Game is the ebiten front end of a pong.Match
type Game struct {
	match *pong.Match

	background *ebiten.Image
	ball       *ebiten.Image
	paddle     *ebiten.Image
	bounce     *sprite.Sound
	face       font.Face

	cursorY    int
	cursorSeen bool
	debug      bool
}

// NewGame loads every asset from dir and creates a new match. Any load
// failure is returned as is; the game cannot run without its media.
func NewGame(dir string, mute, debug bool) (*Game, error) {
	g := &Game{debug: debug}

	var err error
	if g.background, err = sprite.LoadImage(dir, backgroundFile); err != nil {
		return nil, err
	}
	if g.ball, err = sprite.LoadImage(dir, ballFile); err != nil {
		return nil, err
	}
	if g.paddle, err = sprite.LoadImage(dir, paddleFile); err != nil {
		return nil, err
	}
	if g.face, err = sprite.NewFace(scoreFontSize); err != nil {
		return nil, err
	}

	if !mute {
		ctx, err := sprite.NewAudioContext()
		if err != nil {
			return nil, err
		}
		if g.bounce, err = sprite.LoadSound(ctx, dir, bounceFile); err != nil {
			return nil, err
		}
	}

	bw, bh := sprite.Size(g.ball)
	pw, ph := sprite.Size(g.paddle)
	g.match = pong.NewMatch(bw, bh, pw, ph)
	return g, nil
}

func (g *Game) input() pong.Input {
	in := pong.Input{
		Up:   ebiten.IsKeyPressed(ebiten.KeyUp),
		Down: ebiten.IsKeyPressed(ebiten.KeyDown),
	}

	_, y := ebiten.CursorPosition()
	if g.cursorSeen && y != g.cursorY {
		in.PointerMoved = true
		in.PointerY = float32(y)
	}
	g.cursorY = y
	g.cursorSeen = true

	return in
}

// Update runs one tick of the match
func (g *Game) Update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	ev := g.match.Step(g.input())
	if ev.Bounced() {
		if err := g.bounce.Play(); err != nil {
			log.Printf("cannot play bounce sound: %v", err)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.Draw(screen)
}

// Draw renders the court, the ball, both paddles and the score
func (g *Game) Draw(screen *ebiten.Image) error {
	if err := screen.Fill(pong.BgColor); err != nil {
		return err
	}
	if err := sprite.DrawStretched(screen, g.background); err != nil {
		return err
	}
	if err := sprite.DrawAt(screen, g.ball, g.match.Ball.Rect); err != nil {
		return err
	}
	if err := sprite.DrawAt(screen, g.paddle, g.match.Human.Rect); err != nil {
		return err
	}
	if err := sprite.DrawAt(screen, g.paddle, g.match.CPU.Rect); err != nil {
		return err
	}

	sprite.DrawCentered(screen, g.match.Score.String(), g.face, pong.ScreenWidth/2, scoreBaseline, pong.ObjColor)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
	}
	return nil
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pong.ScreenWidth, pong.ScreenHeight
}

func main() {
	dir := flag.String("assets", "assets", "directory holding images and sounds")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "show ticks per second")
	flag.Parse()

	log.Println("loading assets...")
	g, err := NewGame(*dir, *mute, *debug)
	if err != nil {
		log.Fatalf("cannot start game: %v", err)
	}

	ebiten.SetWindowSize(pong.ScreenWidth, pong.ScreenHeight)
	ebiten.SetWindowTitle("Simple Pong")
	ebiten.SetMaxTPS(ticksPerSecond)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	log.Println("starting the game...")
	if err := ebiten.RunGame(g); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
