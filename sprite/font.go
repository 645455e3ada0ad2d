package sprite

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
)

const dpi = 72

// NewFace parses the bundled monospace font at the given point size.
func NewFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse score font")
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// DrawCentered draws s horizontally centered on cx with its baseline at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, cx-w/2, y, clr)
}
