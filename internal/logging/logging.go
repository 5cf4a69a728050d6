// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged.
type Options struct {
	// Path of the log file. Logs are discarded if empty.
	Path  string
	Debug bool
}

// Setup installs a text logger writing to a size-rotated file as the
// default slog logger. The returned closer releases the file.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var w io.WriteCloser = nopCloser{io.Discard}

	if opts.Path != "" {
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return logger, w
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
