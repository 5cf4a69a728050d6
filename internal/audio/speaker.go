package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/patrickmn/go-cache"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

const (
	// TonePrefix marks a generated sine tone, e.g. "tone:880" or
	// "tone:660:300ms".
	TonePrefix = "tone:"

	defaultToneLength = 400 * time.Millisecond
	silenceLength     = 10 * time.Millisecond
	bufferLength      = 100 * time.Millisecond
	cacheExpiration   = 30 * time.Minute
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidTone = &apperr.Error{
		Message: "invalid tone %q: expected tone:<hz>[:<duration>]",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise speaker",
	}
)

// Speaker is a Backend that plays through the system speaker. The speaker is
// initialised lazily on first playback and shared by every handle.
type Speaker struct {
	logger *slog.Logger
	// decoded sounds keyed by path
	sounds *cache.Cache

	mu          sync.Mutex
	sampleRate  beep.SampleRate
	initialized bool
	suspended   bool
}

// NewSpeaker creates a speaker backend.
func NewSpeaker(logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Speaker{
		logger:     logger,
		sounds:     cache.New(cacheExpiration, 2*cacheExpiration),
		sampleRate: beep.SampleRate(44100),
	}
}

// NewHandle prepares ref for playback.
func (s *Speaker) NewHandle(ref string) (Handle, error) {
	switch {
	case ref == "":
		return &speakerHandle{
			speaker: s,
			stream: func(sr beep.SampleRate) (beep.Streamer, error) {
				return beep.Silence(sr.N(silenceLength)), nil
			},
		}, nil
	case strings.HasPrefix(ref, TonePrefix):
		freq, length, err := parseTone(ref)
		if err != nil {
			return nil, err
		}

		return &speakerHandle{
			speaker: s,
			volume:  1,
			stream: func(sr beep.SampleRate) (beep.Streamer, error) {
				tone, err := generators.SineTone(sr, freq)
				if err != nil {
					return nil, err
				}

				return beep.Take(sr.N(length), tone), nil
			},
		}, nil
	}

	buf, err := s.load(ref)
	if err != nil {
		return nil, err
	}

	return &speakerHandle{
		speaker: s,
		volume:  1,
		stream: func(sr beep.SampleRate) (beep.Streamer, error) {
			var st beep.Streamer = buf.Streamer(0, buf.Len())

			if buf.Format().SampleRate != sr {
				st = beep.Resample(4, buf.Format().SampleRate, sr, st)
			}

			return st, nil
		},
	}, nil
}

// NewContext returns the speaker's mixing context.
func (s *Speaker) NewContext() (Context, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	return speakerContext{s}, nil
}

// Suspend pauses all output until Resume is called.
func (s *Speaker) Suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.suspended {
		return nil
	}

	if err := speaker.Suspend(); err != nil {
		return err
	}

	s.suspended = true

	return nil
}

// Resume restarts output after Suspend.
func (s *Speaker) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.suspended {
		return nil
	}

	if err := speaker.Resume(); err != nil {
		return err
	}

	s.suspended = false

	return nil
}

// Clear stops every sound that is currently playing.
func (s *Speaker) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Clear()
	}
}

// Close stops all playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Clear()
		speaker.Close()
		s.initialized = false
		s.suspended = false
	}

	s.sounds.Flush()
}

func (s *Speaker) ensureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.sampleRate, s.sampleRate.N(bufferLength)); err != nil {
		return errSpeakerInit.Wrap(err)
	}

	s.initialized = true
	s.logger.Debug("speaker initialised", "sample_rate", s.sampleRate)

	return nil
}

func (s *Speaker) currentRate() beep.SampleRate {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sampleRate
}

// load decodes the sound file at path into a buffer.
func (s *Speaker) load(path string) (*beep.Buffer, error) {
	if v, ok := s.sounds.Get(path); ok {
		if buf, ok := v.(*beep.Buffer); ok {
			return buf, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	defer func() {
		_ = stream.Close()
	}()

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	s.sounds.Set(path, buf, cache.DefaultExpiration)

	return buf, nil
}

// parseTone parses "tone:<hz>[:<duration>]".
func parseTone(ref string) (freq float64, length time.Duration, err error) {
	parts := strings.Split(strings.TrimPrefix(ref, TonePrefix), ":")
	if len(parts) > 2 {
		return 0, 0, errInvalidTone.Fmt(ref)
	}

	freq, err = strconv.ParseFloat(parts[0], 64)
	if err != nil || freq <= 0 {
		return 0, 0, errInvalidTone.Fmt(ref)
	}

	length = defaultToneLength

	if len(parts) == 2 {
		length, err = time.ParseDuration(parts[1])
		if err != nil || length <= 0 {
			return 0, 0, errInvalidTone.Fmt(ref)
		}
	}

	return freq, length, nil
}

type speakerHandle struct {
	speaker *Speaker
	stream  func(sr beep.SampleRate) (beep.Streamer, error)
	volume  float64
}

func (h *speakerHandle) SetVolume(volume float64) {
	h.volume = volume
}

// Play initialises the speaker if needed and queues the stream. done is
// called once the stream has been handed to the speaker.
func (h *speakerHandle) Play(done func(err error)) {
	go func() {
		if err := h.speaker.ensureInitialized(); err != nil {
			done(err)
			return
		}

		st, err := h.stream(h.speaker.currentRate())
		if err != nil {
			done(err)
			return
		}

		speaker.Play(withVolume(st, h.volume))

		done(nil)
	}()
}

// withVolume scales st by a linear volume. Values at or below zero are
// silent.
func withVolume(st beep.Streamer, volume float64) beep.Streamer {
	if volume == 1 {
		return st
	}

	return &effects.Volume{
		Streamer: st,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 0)),
		Silent:   volume <= 0,
	}
}

type speakerContext struct {
	speaker *Speaker
}

func (c speakerContext) Suspended() bool {
	c.speaker.mu.Lock()
	defer c.speaker.mu.Unlock()

	return c.speaker.suspended
}

func (c speakerContext) Resume(done func(err error)) {
	go func() {
		done(c.speaker.Resume())
	}()
}
