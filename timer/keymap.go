package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start key.Binding
	stop  key.Binding
	cue   key.Binding
	mode  key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	cue: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "play cue"),
	),
	mode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next mode"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
