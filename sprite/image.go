// Package sprite loads and draws the game's media: images, sounds and fonts.
package sprite

import (
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/pkg/errors"

	"github.com/jtestard/simple-pong/pong"
)

// LoadImage reads a png or jpeg file from dir.
func LoadImage(dir, name string) (*ebiten.Image, error) {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path, ebiten.FilterDefault)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load image %s", path)
	}
	return img, nil
}

// Size returns the image dimensions as floats, ready for pong.NewMatch.
func Size(img *ebiten.Image) (float32, float32) {
	w, h := img.Size()
	return float32(w), float32(h)
}

// DrawAt draws img so that it covers r.
func DrawAt(screen, img *ebiten.Image, r pong.Rect) error {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Left()), float64(r.Top()))
	return screen.DrawImage(img, op)
}

// DrawStretched draws img scaled to fill the whole screen.
func DrawStretched(screen, img *ebiten.Image) error {
	sw, sh := screen.Size()
	iw, ih := img.Size()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	return screen.DrawImage(img, op)
}
