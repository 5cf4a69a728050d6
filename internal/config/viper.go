package config

import (
	"errors"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	keyFocusDuration        = "focus.duration"
	keyFocusColor           = "focus.color"
	keyShortBreakDuration   = "short_break.duration"
	keyShortBreakColor      = "short_break.color"
	keyLongBreakDuration    = "long_break.duration"
	keyLongBreakColor       = "long_break.color"
	keySoundVolume          = "sound.volume"
	keySoundCatalog         = "sound.catalog"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationPhrases  = "notifications.phrases"
	keySessionCmd           = "settings.cmd"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)
		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		return c.load(v)
	}
}

// WithDefaults returns an Option that applies the default settings without
// touching the filesystem.
func WithDefaults() Option {
	return func(c *Config) error {
		v := viper.New()
		setDefaults(v)

		return c.load(v)
	}
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyFocusDuration, "25m")
	v.SetDefault(keyFocusColor, "#B0DB43")
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keySoundVolume, 0.5)
	v.SetDefault(keySoundCatalog, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationPhrases, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
}

func (c *Config) load(v *viper.Viper) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.v = v
	c.volume.Store(c.Sound.Volume)

	return nil
}

// Watch reloads the sound volume whenever the config file changes. It has
// no effect if the volume was overridden on the command line.
func (c *Config) Watch() {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if c.volume.Pinned() {
			return
		}

		vol := c.v.Get(keySoundVolume)
		c.volume.Store(vol)

		slog.Debug("config reloaded", slog.String("file", e.Name), slog.Any("volume", vol))
	})

	c.v.WatchConfig()
}

// liveValue holds a value that may be replaced while it is being read.
type liveValue struct {
	val    atomic.Pointer[any]
	pinned atomic.Bool
}

func (l *liveValue) Load() any {
	p := l.val.Load()
	if p == nil {
		return nil
	}

	return *p
}

func (l *liveValue) Store(v any) {
	l.val.Store(&v)
}

// Pin stores v and ignores later reloads.
func (l *liveValue) Pin(v any) {
	l.Store(v)
	l.pinned.Store(true)
}

func (l *liveValue) Pinned() bool {
	return l.pinned.Load()
}
