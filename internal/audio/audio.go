// Package audio unlocks audio output and plays completion cues. Every
// operation here is best-effort: failures are logged at debug level and never
// reach the caller.
package audio

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Handle is a sound prepared for playback on an output device.
type Handle interface {
	SetVolume(volume float64)
	// Play starts playback and reports the outcome through done.
	Play(done func(err error))
}

// Context is the mixing context of an output device.
type Context interface {
	Suspended() bool
	// Resume restarts a suspended context and reports the outcome through
	// done.
	Resume(done func(err error))
}

// Backend creates handles and contexts for an output device.
type Backend interface {
	// NewHandle prepares the sound identified by ref. An empty ref yields a
	// silent handle.
	NewHandle(ref string) (Handle, error)
	NewContext() (Context, error)
}

// UnlockState records whether audio output has been unlocked. It moves from
// locked to unlocked at most once and is never reset. The host owns the
// value and shares it between components.
type UnlockState struct {
	unlocked atomic.Bool
}

// Unlocked reports whether output has been unlocked.
func (s *UnlockState) Unlocked() bool {
	return s.unlocked.Load()
}

func (s *UnlockState) markUnlocked() {
	s.unlocked.Store(true)
}

// attempt runs fn and converts a panic into an error.
func attempt(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	return fn()
}

// continuation wraps done so that a panic inside it is logged and discarded.
func continuation(logger *slog.Logger, name string, done func(error)) func(error) {
	return func(err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Debug("audio continuation panicked", "step", name, "panic", r)
			}
		}()

		done(err)
	}
}
