package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Modes     map[session.Mode]lipgloss.Style
}

var modeLabels = map[session.Mode]string{
	session.Focus:      "[Focus]",
	session.ShortBreak: "[Short break]",
	session.LongBreak:  "[Long break]",
}

func newStyle(cfg *config.Config) style {
	secondary := lipgloss.Color("#7D7D7D")
	main := lipgloss.Color("#FFFFFF")

	if !cfg.Display.DarkTheme {
		secondary = lipgloss.Color("#5C5C5C")
		main = lipgloss.Color("#000000")
	}

	s := style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(secondary).Italic(true).PaddingLeft(1),
		Modes:     make(map[session.Mode]lipgloss.Style, len(session.Modes)),
	}

	for _, mode := range session.Modes {
		s.Modes[mode] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Session(mode).Color)).
			SetString(modeLabels[mode])
	}

	return s
}
