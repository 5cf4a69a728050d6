package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	m, s := timeutil.SecsToMinsAndSecs(t.remaining)

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (t *Timer) sessionPromptView() string {
	var s strings.Builder

	title := "Your focus session is complete"
	msg := "It's time to take a well-deserved break!"

	if t.Ended != session.Focus {
		title = "Your break is over"
		msg = "It's time to refocus and get back to work!"
	}

	s.WriteString(t.style.Main.Render(title))
	s.WriteString("\n\n" + t.style.Secondary.Render(msg))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.start,
		defaultKeymap.mode,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.Modes[t.Mode].String())

	if !t.running {
		s.WriteString(t.style.Hint.Render("[Stopped]"))
	}

	var percent float64
	if t.total > 0 {
		percent = float64(t.remaining) / float64(t.total)
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(t.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(1 - percent))
	s.WriteString(t.sessionHelpView())

	if t.err != nil {
		s.WriteString("\n\n" + t.style.Secondary.Render(t.err.Error()))
	}

	return s.String()
}

func (t *Timer) sessionHelpView() string {
	if t.running {
		return "\n\n" + t.help.ShortHelpView([]key.Binding{
			defaultKeymap.stop,
			defaultKeymap.cue,
			defaultKeymap.quit,
		})
	}

	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.start,
		defaultKeymap.mode,
		defaultKeymap.cue,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	if t.finished {
		return t.style.Base.Render(t.sessionPromptView())
	}

	return t.style.Base.Render(t.timerView())
}
