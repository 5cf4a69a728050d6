package app

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/pomo/internal/audio"
	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/completion"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/gesture"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/session"
)

// KitOptions holds the platform services a Kit is built on. Platform may be
// nil to disable notifications.
type KitOptions struct {
	Backend  audio.Backend
	Platform notify.Platform
	Clock    clockwork.Clock
	Catalog  catalog.Catalog
	Phrases  catalog.Phrases
	Volume   audio.VolumeSource
	Logger   *slog.Logger
}

// Kit wires the countdown to its completion side effects and exposes the
// operations used by the command-line interface.
type Kit struct {
	backend       audio.Backend
	timer         *countdown.Timer
	audio         *audio.Gate
	notifications *notify.Gate
	announcer     *completion.Announcer
	gestures      *gesture.Binder
	logger        *slog.Logger
}

// NewKit builds a Kit. Creating it asks for notification permission if the
// user has not decided yet.
func NewKit(opts KitOptions) *Kit {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	unlock := &audio.UnlockState{}

	k := &Kit{
		backend:       opts.Backend,
		audio:         audio.NewGate(unlock, opts.Backend, logger),
		notifications: notify.NewGate(opts.Platform, logger),
		gestures:      gesture.New(),
		logger:        logger,
	}

	k.announcer = completion.New(completion.Config{
		Notifier: k.notifications,
		Player:   audio.NewPlayer(opts.Backend, logger),
		Catalog:  opts.Catalog,
		Phrases:  opts.Phrases,
		Volume:   opts.Volume,
		Logger:   logger,
	})

	k.timer = countdown.New(
		countdown.WithClock(clock),
		countdown.WithAnnouncer(k.announcer),
		countdown.WithLogger(logger),
	)

	return k
}

// Timer returns the countdown whose completion is announced.
func (k *Kit) Timer() *countdown.Timer {
	return k.timer
}

// UnlockAudio primes the audio output. Only the first call has an effect.
func (k *Kit) UnlockAudio() {
	k.audio.Unlock()
}

// AudioUnlocked reports whether a priming attempt has succeeded.
func (k *Kit) AudioUnlocked() bool {
	return k.audio.Unlocked()
}

// ShowNotification displays a notification if permission was granted.
func (k *Kit) ShowNotification(title, body string) {
	k.notifications.Notify(title, body)
}

// PlaySoundForMode plays a random catalog sound for mode and event.
func (k *Kit) PlaySoundForMode(mode session.Mode, event session.EventType) {
	k.announcer.PlaySoundForMode(mode, event)
}

// Announce raises the end-of-session notification and sound for mode.
func (k *Kit) Announce(mode session.Mode) {
	k.announcer.Announce(mode)
}

// Gesture records a user interaction with control. The first interaction
// with each control unlocks audio.
func (k *Kit) Gesture(control string) {
	k.gestures.Bind(control, k.UnlockAudio)()
}

// Silence stops any sound that is playing.
func (k *Kit) Silence() {
	if c, ok := k.backend.(interface{ Clear() }); ok {
		c.Clear()
	}
}
