// Package countdown implements a countdown timer whose ticks are anchored to
// wall-clock seconds. Remaining time is derived from the absolute end time on
// every tick instead of being decremented, so delayed or coalesced wake-ups
// never accumulate into drift.
package countdown

import (
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

var errInvalidDuration = &apperr.Error{
	Message: "timer duration must be a positive number of seconds, got %d",
}

// Announcer raises the user-facing signal for a finished session.
type Announcer interface {
	Announce(mode session.Mode)
}

// Timer is a single countdown. The zero value is not usable; create one with
// New.
type Timer struct {
	clock     clockwork.Clock
	announcer Announcer
	logger    *slog.Logger

	mu      sync.Mutex
	sess    session.Session
	onTick  func(remaining int)
	onEnd   func()
	pending clockwork.Timer
	// run identifies the current run so that ticks belonging to a stopped or
	// replaced run are ignored.
	run uint64
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the clock used for scheduling and for reading the time.
func WithClock(c clockwork.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithAnnouncer sets the component invoked after a run completes.
func WithAnnouncer(a Announcer) Option {
	return func(t *Timer) {
		t.announcer = a
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// New creates an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:  clockwork.NewRealClock(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins a countdown of the given number of seconds and performs the
// first tick before returning. Starting a running timer replaces the current
// run.
func (t *Timer) Start(
	seconds int,
	mode session.Mode,
	onTick func(remaining int),
	onEnd func(),
) error {
	if seconds <= 0 {
		return errInvalidDuration.Fmt(seconds)
	}

	t.mu.Lock()
	t.cancelPending()
	t.run++
	run := t.run
	t.sess.Begin(t.clock.Now(), seconds, mode)
	t.onTick = onTick
	t.onEnd = onEnd
	t.mu.Unlock()

	t.logger.Debug("timer started", "mode", mode, "seconds", seconds)

	t.tick(run)

	return nil
}

// Stop ends the current run without completing it. It is safe to call on an
// idle timer.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.sess.Active {
		return
	}

	t.cancelPending()
	t.run++
	t.sess.Active = false

	t.logger.Debug("timer stopped", "mode", t.sess.Mode)
}

// Remaining returns the whole seconds left in the current run, or zero if the
// timer is idle.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sess.Remaining(t.clock.Now())
}

// Running reports whether a run is in progress.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sess.Active
}

// Mode returns the mode of the current or most recent run.
func (t *Timer) Mode() session.Mode {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sess.Mode
}

// cancelPending must be called with mu held.
func (t *Timer) cancelPending() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// current reports whether run is still the active run. mu must be held.
func (t *Timer) current(run uint64) bool {
	return t.sess.Active && t.run == run
}

func (t *Timer) tick(run uint64) {
	t.mu.Lock()
	if !t.current(run) {
		t.mu.Unlock()
		return
	}

	t.pending = nil
	remaining := t.sess.Remaining(t.clock.Now())
	onTick := t.onTick
	t.mu.Unlock()

	if onTick != nil {
		t.guard("tick", func() { onTick(remaining) })
	}

	t.mu.Lock()
	// onTick may have stopped or restarted the timer
	if !t.current(run) {
		t.mu.Unlock()
		return
	}

	if remaining > 0 {
		delay := timeutil.MillisToNextSecond(t.clock.Now())
		t.pending = t.clock.AfterFunc(delay, func() {
			t.tick(run)
		})
		t.mu.Unlock()

		return
	}

	t.sess.Active = false
	mode := t.sess.Mode
	onEnd := t.onEnd
	t.mu.Unlock()

	t.logger.Debug("timer completed", "mode", mode)

	if onEnd != nil {
		t.guard("end", onEnd)
	}

	if t.announcer != nil {
		t.guard("announce", func() { t.announcer.Announce(mode) })
	}
}

// guard runs fn and logs any panic instead of propagating it.
func (t *Timer) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Debug("timer callback panicked", "callback", name, "panic", r)
		}
	}()

	fn()
}
