package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	volumeFlag = &cli.StringFlag{
		Name:    "volume",
		Aliases: []string{"vol"},
		Usage:   "Volume of completion sounds between 0 and 1 (default: 0.5)",
	}

	catalogFlag = &cli.StringFlag{
		Name:  "catalog",
		Usage: "Path to a sound catalog file",
	}

	phrasesFlag = &cli.StringFlag{
		Name:  "phrases",
		Usage: "Path to a notification phrase file",
	}

	eventFlag = &cli.StringFlag{
		Name:    "event",
		Aliases: []string{"e"},
		Usage:   "Session event whose sound is played: start or end",
		Value:   "end",
	}

	waitFlag = &cli.DurationFlag{
		Name:  "wait",
		Usage: "How long to keep the process alive while the sound plays",
		Value: 2 * time.Second,
	}
)
