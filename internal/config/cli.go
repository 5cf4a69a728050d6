package config

import (
	"time"

	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus         string
	ShortBreak    string
	LongBreak     string
	Volume        string
	Catalog       string
	Phrases       string
	SessionCmd    string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:         ctx.String("focus"),
			ShortBreak:    ctx.String("short-break"),
			LongBreak:     ctx.String("long-break"),
			Volume:        ctx.String("volume"),
			Catalog:       ctx.String("catalog"),
			Phrases:       ctx.String("phrases"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"focus", opts.Focus, &c.Focus.Duration},
		{"short break", opts.ShortBreak, &c.ShortBreak.Duration},
		{"long break", opts.LongBreak, &c.LongBreak.Duration},
	}

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := parseDuration(d.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name).Wrap(err)
		}

		*d.dst = dur
	}

	if opts.Volume != "" {
		c.Sound.Volume = opts.Volume
		c.volume.Pin(opts.Volume)
	}

	if opts.Catalog != "" {
		c.Sound.Catalog = opts.Catalog
	}

	if opts.Phrases != "" {
		c.Notifications.Phrases = opts.Phrases
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers of minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, castErr := cast.ToFloat64E(s)
	if castErr != nil {
		return 0, err
	}

	return time.Duration(mins * float64(time.Minute)), nil
}
