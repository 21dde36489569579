package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the session bindings. Which ones apply depends on the phase.
type keyMap struct {
	Submit  key.Binding
	Skip    key.Binding
	End     key.Binding
	Save    key.Binding
	Discard key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log set"),
		),
		Skip: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("s", "skip rest"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end session"),
		),
		Save: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "save"),
		),
		Discard: key.NewBinding(
			key.WithKeys("d", "n"),
			key.WithHelp("d", "discard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "discard and quit"),
		),
	}
}

// phaseKeys implements help.KeyMap for one phase.
type phaseKeys []key.Binding

func (p phaseKeys) ShortHelp() []key.Binding  { return p }
func (p phaseKeys) FullHelp() [][]key.Binding { return [][]key.Binding{p} }
