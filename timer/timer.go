// Package timer is the terminal interface for the countdown timer
package timer

import (
	"log/slog"
	"os/exec"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/session"
)

// Controls that unlock audio the first time they are used.
const (
	GestureStart       = "start"
	GestureMusicToggle = "music-toggle"
)

// Host provides the countdown and the sound side effects driven by the
// interface.
type Host interface {
	Timer() *countdown.Timer
	Gesture(control string)
	PlaySoundForMode(mode session.Mode, event session.EventType)
	Silence()
}

type (
	tickMsg struct {
		run       uint64
		remaining int
	}

	endMsg struct {
		run  uint64
		mode session.Mode
	}

	sessionCmdMsg struct {
		err error
	}
)

// Timer is the bubbletea model of the countdown screen.
type Timer struct {
	host     Host
	clock    *countdown.Timer
	cfg      *config.Config
	style    style
	help     help.Model
	progress progress.Model
	events   chan tea.Msg
	err      error

	// Mode is the mode of the current or next session.
	Mode session.Mode
	// Ended is the mode of the last completed session.
	Ended     session.Mode
	remaining int
	total     int
	run       uint64
	running   bool
	finished  bool
}

// New creates the model for the first focus session.
func New(host Host, cfg *config.Config) *Timer {
	t := &Timer{
		host:     host,
		clock:    host.Timer(),
		cfg:      cfg,
		style:    newStyle(cfg),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		events:   make(chan tea.Msg, 64),
		Mode:     session.Focus,
	}

	t.reset()

	return t
}

// Run displays the timer until the user quits.
func Run(t *Timer) error {
	_, err := tea.NewProgram(t).Run()

	t.clock.Stop()

	return err
}

func (t *Timer) Init() tea.Cmd {
	return t.listen()
}

// listen waits for the next countdown event.
func (t *Timer) listen() tea.Cmd {
	return func() tea.Msg {
		return <-t.events
	}
}

func (t *Timer) reset() {
	t.total = t.cfg.Seconds(t.Mode)
	t.remaining = t.total
}

func (t *Timer) start() {
	t.host.Gesture(GestureStart)

	t.run++
	run, mode := t.run, t.Mode

	t.reset()
	t.finished = false

	err := t.clock.Start(t.total, mode, func(remaining int) {
		t.events <- tickMsg{run: run, remaining: remaining}
	}, func() {
		t.events <- endMsg{run: run, mode: mode}
	})
	if err != nil {
		t.err = err
		return
	}

	t.running = true
}

func (t *Timer) stop() {
	if !t.running {
		return
	}

	t.clock.Stop()
	t.host.Silence()

	t.run++
	t.running = false
	t.reset()
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) tea.Cmd {
	if sessionCmd == "" {
		return nil
	}

	return func() tea.Msg {
		cmdSlice, err := shellquote.Split(sessionCmd)
		if err != nil {
			return sessionCmdMsg{err: errParseSessionCmd.Wrap(err)}
		}

		if len(cmdSlice) == 0 {
			return sessionCmdMsg{}
		}

		err = exec.Command(cmdSlice[0], cmdSlice[1:]...).Run()
		if err != nil {
			slog.Debug("session command failed", slog.Any("error", err))

			return sessionCmdMsg{err: errRunSessionCmd.Fmt(sessionCmd).Wrap(err)}
		}

		return sessionCmdMsg{}
	}
}
