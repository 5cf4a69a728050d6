package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/session"
)

// handleTick records the remaining time reported by the countdown.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.run == t.run {
		t.remaining = msg.remaining
	}

	return t, t.listen()
}

// handleEnd moves on to the next mode once a session completes. The
// notification and sound have already been raised by the countdown.
func (t *Timer) handleEnd(msg endMsg) (tea.Model, tea.Cmd) {
	if msg.run != t.run {
		return t, t.listen()
	}

	slog.Info("session completed", slog.String("mode", string(msg.mode)))

	t.running = false
	t.finished = true
	t.Ended = msg.mode
	t.Mode = msg.mode.Next()
	t.reset()

	return t, tea.Batch(t.listen(), runSessionCmd(t.cfg.Settings.Cmd))
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.start):
		if !t.running {
			t.start()
		}

	case key.Matches(msg, defaultKeymap.stop):
		t.stop()

	case key.Matches(msg, defaultKeymap.cue):
		t.host.Gesture(GestureMusicToggle)
		t.host.PlaySoundForMode(t.Mode, session.Start)

	case key.Matches(msg, defaultKeymap.mode):
		if !t.running {
			t.Mode = t.Mode.Next()
			t.finished = false
			t.reset()
		}

	case key.Matches(msg, defaultKeymap.quit):
		t.clock.Stop()

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case endMsg:
		return t.handleEnd(msg)

	case sessionCmdMsg:
		t.err = msg.err

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
