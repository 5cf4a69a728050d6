// Package completion raises the end-of-session signal: a desktop
// notification followed by a sound picked from the catalog.
package completion

import (
	"log/slog"

	"github.com/ayoisaiah/pomo/internal/audio"
	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/session"
)

// Notifier displays a notification.
type Notifier interface {
	Notify(title, body string)
}

// Player plays a sound reference.
type Player interface {
	Play(ref string, volume audio.VolumeSource)
}

// Announcer combines a notification gate, a player, and the lookup tables.
type Announcer struct {
	notifier Notifier
	player   Player
	catalog  catalog.Catalog
	phrases  catalog.Phrases
	volume   audio.VolumeSource
	logger   *slog.Logger
}

// Config holds the collaborators of an Announcer. Catalog, Phrases, and
// Volume may be nil.
type Config struct {
	Notifier Notifier
	Player   Player
	Catalog  catalog.Catalog
	Phrases  catalog.Phrases
	Volume   audio.VolumeSource
	Logger   *slog.Logger
}

// New creates an Announcer.
func New(cfg Config) *Announcer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Announcer{
		notifier: cfg.Notifier,
		player:   cfg.Player,
		catalog:  cfg.Catalog,
		phrases:  cfg.Phrases,
		volume:   cfg.Volume,
		logger:   logger,
	}
}

// Announce notifies the user that a session in mode has ended and plays an
// end sound for it. The sound is attempted even if audio has not been
// unlocked; the output may still accept it.
func (a *Announcer) Announce(mode session.Mode) {
	title := a.phrases.Title(mode)
	body := a.phrases.Body(mode)

	if a.notifier != nil {
		a.notifier.Notify(title, body)
	}

	a.PlaySoundForMode(mode, session.End)
}

// PlaySoundForMode plays a random sound for mode and event. It does nothing
// if the catalog has no sound for them.
func (a *Announcer) PlaySoundForMode(mode session.Mode, event session.EventType) {
	ref, ok := a.catalog.Resolve(mode, event)
	if !ok {
		a.logger.Debug("no sound available", "mode", mode, "event", event)
		return
	}

	if a.player == nil {
		return
	}

	a.player.Play(ref, a.volume)
}
