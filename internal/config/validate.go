package config

import (
	"regexp"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
// The sound volume is not checked: unreadable values fall back to the
// default when a sound is played.
func (c *Config) Validate() error {
	if err := validateSessionConfig(c.Focus, "focus"); err != nil {
		return err
	}

	if err := validateSessionConfig(c.ShortBreak, "short break"); err != nil {
		return err
	}

	if err := validateSessionConfig(c.LongBreak, "long break"); err != nil {
		return err
	}

	return c.validateSessionRelationships()
}

func validateSessionConfig(sc SessionConfig, name string) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(name, minSessionDuration, maxSessionDuration)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(name, sc.Color)
	}

	return nil
}

// validateSessionRelationships validates logical relationships between sessions.
func (c *Config) validateSessionRelationships() error {
	if c.ShortBreak.Duration >= c.Focus.Duration {
		return errShortBreakTooLong.Fmt(c.ShortBreak.Duration, c.Focus.Duration)
	}

	if c.LongBreak.Duration < c.ShortBreak.Duration {
		return errLongBreakTooShort.Fmt(
			c.LongBreak.Duration,
			c.ShortBreak.Duration,
		)
	}

	return nil
}
