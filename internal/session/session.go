// Package session defines timer modes and the state of a countdown session
package session

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Mode represents the current timer phase. Lookups accept any mode name, the
// constants below are the ones shipped in the default tables.
type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
)

// Modes lists the built-in modes in cycle order.
var Modes = []Mode{Focus, ShortBreak, LongBreak}

// EventType identifies the point in a session a cue belongs to.
type EventType string

const (
	Start EventType = "start"
	End   EventType = "end"
)

// Next returns the built-in mode that follows m. Unknown modes go back to
// Focus.
func (m Mode) Next() Mode {
	for i, v := range Modes {
		if v == m {
			return Modes[(i+1)%len(Modes)]
		}
	}

	return Focus
}

// Session represents a single countdown run.
type Session struct {
	EndTime time.Time `json:"end_time"`
	Mode    Mode      `json:"mode"`
	Active  bool      `json:"active"`
}

// Begin anchors the session to an absolute end time.
func (s *Session) Begin(now time.Time, seconds int, mode Mode) {
	s.EndTime = now.Add(time.Duration(seconds) * time.Second)
	s.Mode = mode
	s.Active = true
}

// Remaining calculates the whole seconds left until the session ends. It is
// derived from the end time on every call and never drops below zero.
func (s *Session) Remaining(now time.Time) int {
	if !s.Active {
		return 0
	}

	total := timeutil.Round(s.EndTime.Sub(now).Seconds())
	if total < 0 {
		total = 0
	}

	return total
}
