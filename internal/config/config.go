package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomo/internal/session"
)

type (
	// Config holds all configuration settings
	Config struct {
		Focus         SessionConfig      `mapstructure:"focus"`
		ShortBreak    SessionConfig      `mapstructure:"short_break"`
		LongBreak     SessionConfig      `mapstructure:"long_break"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`

		v      *viper.Viper
		volume liveValue
	}

	// SessionConfig holds the settings of one timer mode
	SessionConfig struct {
		Duration time.Duration `mapstructure:"duration"`
		Color    string        `mapstructure:"color"`
	}

	// SoundConfig holds sound-related settings. Volume is kept as written
	// in the file and converted when a sound is played.
	SoundConfig struct {
		Volume  any    `mapstructure:"volume"`
		Catalog string `mapstructure:"catalog"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Phrases string `mapstructure:"phrases"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Session returns the settings for mode.
func (c *Config) Session(mode session.Mode) SessionConfig {
	switch mode {
	case session.ShortBreak:
		return c.ShortBreak
	case session.LongBreak:
		return c.LongBreak
	default:
		return c.Focus
	}
}

// Seconds returns the length of a mode in whole seconds.
func (c *Config) Seconds(mode session.Mode) int {
	return int(c.Session(mode).Duration / time.Second)
}

// Volume returns the current sound volume as written in the config file.
// It reflects edits made to the file after Watch is called.
func (c *Config) Volume() any {
	return c.volume.Load()
}

// ConfigFile returns the path of the file the config was read from.
func (c *Config) ConfigFile() string {
	if c.v == nil {
		return ""
	}

	return c.v.ConfigFileUsed()
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"focus=%s short_break=%s long_break=%s volume=%v",
		c.Focus.Duration,
		c.ShortBreak.Duration,
		c.LongBreak.Duration,
		c.Volume(),
	)
}
