package sprite

import (
	"io/ioutil"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/audio"
	"github.com/hajimehoshi/ebiten/audio/wav"
	"github.com/pkg/errors"
)

const sampleRate = 44100

// Sound is a short effect that can be replayed from the start.
type Sound struct {
	player *audio.Player
}

// NewAudioContext creates the single audio context of the process.
func NewAudioContext() (*audio.Context, error) {
	ctx, err := audio.NewContext(sampleRate)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open audio device")
	}
	return ctx, nil
}

// LoadSound decodes a wav file from dir.
func LoadSound(ctx *audio.Context, dir, name string) (*Sound, error) {
	path := filepath.Join(dir, name)
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load sound %s", path)
	}

	s, err := wav.Decode(ctx, audio.BytesReadSeekCloser(b))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode sound %s", path)
	}

	p, err := audio.NewPlayer(ctx, s)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create player for %s", path)
	}
	return &Sound{player: p}, nil
}

// Play restarts the effect. A nil Sound is silent.
func (s *Sound) Play() error {
	if s == nil {
		return nil
	}
	if err := s.player.Rewind(); err != nil {
		return err
	}
	return s.player.Play()
}
