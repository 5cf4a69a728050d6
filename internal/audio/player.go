package audio

import (
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// DefaultVolume is used when the volume source is absent or unreadable.
const DefaultVolume = 0.5

// VolumeSource supplies the current volume setting. It is read at playback
// time, so changes apply to the next sound.
type VolumeSource interface {
	Volume() any
}

// VolumeFunc adapts a function to VolumeSource.
type VolumeFunc func() any

func (f VolumeFunc) Volume() any {
	return f()
}

// ReadVolume parses the value supplied by src. Missing, unparseable, and NaN
// values fall back to DefaultVolume. Other values are returned as is.
func ReadVolume(src VolumeSource) float64 {
	if src == nil {
		return DefaultVolume
	}

	var raw any

	err := attempt(func() error {
		raw = src.Volume()
		return nil
	})
	if err != nil || raw == nil {
		return DefaultVolume
	}

	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}

	v, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(v) {
		return DefaultVolume
	}

	return v
}

// Player plays sounds on a backend.
type Player struct {
	backend Backend
	logger  *slog.Logger
}

// NewPlayer creates a player.
func NewPlayer(backend Backend, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}

	return &Player{
		backend: backend,
		logger:  logger,
	}
}

// Play attempts to play the sound identified by ref at the volume currently
// supplied by volume. It returns immediately; playback failures are
// swallowed.
func (p *Player) Play(ref string, volume VolumeSource) {
	vol := ReadVolume(volume)

	err := attempt(func() error {
		h, err := p.backend.NewHandle(ref)
		if err != nil {
			return err
		}

		h.SetVolume(vol)
		h.Play(continuation(p.logger, "play", func(err error) {
			if err != nil {
				p.logger.Debug("playback rejected", "sound", ref, "error", err)
			}
		}))

		return nil
	})
	if err != nil {
		p.logger.Debug("unable to play sound", "sound", ref, "error", err)
	}
}
