// Package catalog looks up completion sounds and notification phrases for a
// timer mode.
package catalog

import (
	"math/rand/v2"

	"github.com/ayoisaiah/pomo/internal/session"
)

// Fallback notification text used when the phrase table has no entry.
const (
	DefaultTitle = "Таймер"
	DefaultBody  = "Сессия завершена"
)

// Catalog maps a mode and event to candidate sound references. Missing or
// empty entries mean no sound is available.
type Catalog map[session.Mode]map[session.EventType][]string

// Phrase is the text shown for a mode.
type Phrase struct {
	NotificationTitle string   `yaml:"notification_title"`
	Start             []string `yaml:"start"`
	End               []string `yaml:"end"`
}

// Phrases maps a mode to its phrase.
type Phrases map[session.Mode]Phrase

// Candidates returns the sound references for mode and event.
func (c Catalog) Candidates(mode session.Mode, event session.EventType) []string {
	if c == nil {
		return nil
	}

	return c[mode][event]
}

// Resolve picks one of the sounds for mode and event uniformly at random. It
// reports false if there are none.
func (c Catalog) Resolve(mode session.Mode, event session.EventType) (string, bool) {
	return c.ResolveWith(mode, event, rand.IntN)
}

// ResolveWith is like Resolve but draws the index with pick, which must
// return a value in [0, n).
func (c Catalog) ResolveWith(
	mode session.Mode,
	event session.EventType,
	pick func(n int) int,
) (string, bool) {
	set := c.Candidates(mode, event)
	if len(set) == 0 {
		return "", false
	}

	return set[pick(len(set))], true
}

// Title returns the notification title for mode.
func (p Phrases) Title(mode session.Mode) string {
	if phrase, ok := p[mode]; ok && phrase.NotificationTitle != "" {
		return phrase.NotificationTitle
	}

	return DefaultTitle
}

// Body returns the first end-of-session phrase for mode.
func (p Phrases) Body(mode session.Mode) string {
	if phrase, ok := p[mode]; ok && len(phrase.End) > 0 && phrase.End[0] != "" {
		return phrase.End[0]
	}

	return DefaultBody
}
