// Package timeutil provides utility functions for working with time values.
package timeutil

import (
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// MillisToNextSecond returns the delay until the next wall-clock second
// boundary after t. A value already on a boundary waits a full second.
func MillisToNextSecond(t time.Time) time.Duration {
	ms := t.UnixMilli() % 1000
	if ms < 0 {
		ms += 1000
	}

	return time.Duration(1000-ms) * time.Millisecond
}
