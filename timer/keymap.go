package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	reset      key.Binding
	settings   key.Binding
	quit       key.Binding
}

type settingsKeymap struct {
	nextProfile   key.Binding
	prevProfile   key.Binding
	goalUp        key.Binding
	goalDown      key.Binding
	volumeUp      key.Binding
	volumeDown    key.Binding
	sound         key.Binding
	notifications key.Binding
	autoBreaks    key.Binding
	autoWork      key.Binding
	save          key.Binding
	close         key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var defaultSettingsKeymap = settingsKeymap{
	nextProfile: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next profile"),
	),
	prevProfile: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous profile"),
	),
	goalUp: key.NewBinding(
		key.WithKeys("up", "+"),
		key.WithHelp("↑/↓", "daily goal"),
	),
	goalDown: key.NewBinding(
		key.WithKeys("down", "-"),
	),
	volumeUp: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("←/→", "volume"),
	),
	volumeDown: key.NewBinding(
		key.WithKeys("left"),
	),
	sound: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sound"),
	),
	notifications: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "notifications"),
	),
	autoBreaks: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "auto-start breaks"),
	),
	autoWork: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "auto-start work"),
	),
	save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}
