package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMillisToNextSecond(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		Name   string
		Offset time.Duration
		Want   time.Duration
	}{
		{"on a boundary", 0, time.Second},
		{"just after a boundary", time.Millisecond, 999 * time.Millisecond},
		{"mid second", 300 * time.Millisecond, 700 * time.Millisecond},
		{"just before a boundary", 999 * time.Millisecond, time.Millisecond},
		{"sub-millisecond remainder", 250*time.Millisecond + 400*time.Microsecond, 750 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, MillisToNextSecond(base.Add(tc.Offset)))
		})
	}
}

func TestMillisToNextSecondBeforeEpoch(t *testing.T) {
	before := time.Date(1969, 12, 31, 23, 59, 59, 200*int(time.Millisecond), time.UTC)

	assert.Equal(t, 800*time.Millisecond, MillisToNextSecond(before))
}

func TestSecsToMinsAndSecs(t *testing.T) {
	m, s := SecsToMinsAndSecs(1501)

	assert.Equal(t, 25, m)
	assert.Equal(t, 1, s)
}
