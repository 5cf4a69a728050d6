package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	var s Session

	s.Begin(now, 3, Focus)

	cases := []struct {
		Name    string
		Elapsed time.Duration
		Want    int
	}{
		{"at start", 0, 3},
		{"rounds up past half", 400 * time.Millisecond, 3},
		{"rounds down past half", 600 * time.Millisecond, 2},
		{"exactly at end", 3 * time.Second, 0},
		{"clamped after end", 10 * time.Second, 0},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, s.Remaining(now.Add(tc.Elapsed)))
		})
	}
}

func TestRemainingInactive(t *testing.T) {
	now := time.Now()

	s := Session{EndTime: now.Add(time.Hour)}

	assert.Zero(t, s.Remaining(now))
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, ShortBreak, Focus.Next())
	assert.Equal(t, LongBreak, ShortBreak.Next())
	assert.Equal(t, Focus, LongBreak.Next())
	assert.Equal(t, Focus, Mode("custom").Next())
}
