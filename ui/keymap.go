package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Pause    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Step     key.Binding
	SeekBack key.Binding
	SeekFwd  key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Pause: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "pause/resume"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "prev page"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "cursor up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "cursor down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "chart sensor"),
	),
	Step: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "step frame (paused replay)"),
	),
	SeekBack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "replay -10"),
	),
	SeekFwd: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "replay +10"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextPage, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextPage, k.PrevPage, k.Pause},
		{k.Step, k.SeekBack, k.SeekFwd},
		{k.Help, k.Quit},
	}
}
