// Package sound plays the background music and the sound effects tied to
// gameplay cues.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"SavingMerica/internal/config"
	"SavingMerica/internal/world"
)

const sampleRate = 44100

// Service owns the audio context, the looped music and one player per cue.
type Service struct {
	ctx     *audio.Context
	music   *audio.Player
	effects map[world.Cue]*audio.Player
	logger  *log.Logger
}

// Load decodes the music and every effect. Missing files are fatal unless
// cfg.Assets.Lenient is set; then effects become beeps and music is skipped.
func Load(cfg config.Config, logger *log.Logger) (*Service, error) {
	s := &Service{
		ctx:     audio.NewContext(sampleRate),
		effects: make(map[world.Cue]*audio.Player),
		logger:  logger,
	}

	var errs []error
	if music, err := s.loadMusic(cfg.AssetPath(cfg.Assets.Music)); err == nil {
		s.music = music
	} else if cfg.Assets.Lenient {
		logger.Warn("music unavailable, playing without it", "error", err)
	} else {
		errs = append(errs, err)
	}

	effects := []struct {
		cue  world.Cue
		file string
		freq float64 // fallback beep
		dur  float64
	}{
		{world.CueMoveUp, cfg.Assets.MoveUp, 660, 0.08},
		{world.CueMoveDown, cfg.Assets.MoveDown, 440, 0.08},
		{world.CueCollision, cfg.Assets.Collision, 240, 0.12},
		{world.CueExplosion, cfg.Assets.Explosion, 120, 0.4},
	}
	for _, fx := range effects {
		p, err := s.loadEffect(cfg.AssetPath(fx.file))
		if err != nil {
			if !cfg.Assets.Lenient {
				errs = append(errs, err)
				continue
			}
			logger.Warn("sound unavailable, using beep", "cue", fx.cue, "error", err)
			p = newBeep(s.ctx, fx.freq, fx.dur)
		}
		s.effects[fx.cue] = p
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// StartMusic loops the background track until Close.
func (s *Service) StartMusic() {
	if s.music != nil {
		s.music.Play()
	}
}

// Handle plays the sounds for a tick's cues. Movement sounds keep playing
// while the key is held instead of restarting every tick.
func (s *Service) Handle(cues []world.Cue) {
	for _, c := range cues {
		switch c {
		case world.CueStopMoves:
			s.pause(world.CueMoveUp)
			s.pause(world.CueMoveDown)
		case world.CueMoveUp, world.CueMoveDown:
			if p := s.effects[c]; p != nil && !p.IsPlaying() {
				s.play(p)
			}
		default:
			s.play(s.effects[c])
		}
	}
}

// Close stops the music and releases every player.
func (s *Service) Close() {
	if s.music != nil {
		s.music.Pause()
		_ = s.music.Close()
	}
	for _, p := range s.effects {
		_ = p.Close()
	}
}

func (s *Service) pause(c world.Cue) {
	if p := s.effects[c]; p != nil {
		p.Pause()
	}
}

func (s *Service) play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (s *Service) loadMusic(path string) (*audio.Player, error) {
	stream, err := decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := s.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music %s: %w", path, err)
	}
	s.logger.Debug("loaded music", "path", path)
	return p, nil
}

func (s *Service) loadEffect(path string) (*audio.Player, error) {
	stream, err := decode(path)
	if err != nil {
		return nil, err
	}
	p, err := s.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("sound %s: %w", path, err)
	}
	s.logger.Debug("loaded sound", "path", path)
	return p, nil
}

// stream is what every decoder returns: a seekable PCM stream of known length.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// decode reads a whole audio file and picks the decoder by extension.
func decode(path string) (stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	r := bytes.NewReader(data)

	var s stream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("sound %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	return s, nil
}

// tiny wrapper so bytes.Reader acts like a closable stream
type readSeekNopCloser struct{ *bytes.Reader }

func (r *readSeekNopCloser) Close() error { return nil }

// newBeep synthesizes a short sine beep, 16-bit stereo.
func newBeep(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	pcm := make([]byte, n*4)
	amp := 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		s := int16(v * amp * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	p, _ := ctx.NewPlayer(&readSeekNopCloser{bytes.NewReader(pcm)})
	return p
}
