package tasklist

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Options key.Binding
	Add     key.Binding
	Quit    key.Binding

	Edit   key.Binding
	Delete key.Binding
	Close  key.Binding

	Submit key.Binding
	Cancel key.Binding

	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Options: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "options"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a/+", "add"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// bindings adapts a flat set of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) helpFor(m mode) help.KeyMap {
	switch m {
	case modeInput:
		return bindings{k.Submit, k.Cancel}
	case modeOptions:
		return bindings{k.Edit, k.Delete, k.Close}
	default:
		return bindings{k.Up, k.Down, k.Options, k.Add, k.Quit}
	}
}

// LegendGroup is the set of bindings active in one part of the screen.
type LegendGroup struct {
	Name     string
	Bindings []key.Binding
}

// Legend lists the screen's bindings grouped by where they apply.
func Legend() []LegendGroup {
	k := defaultKeys()
	return []LegendGroup{
		{Name: "List", Bindings: k.helpFor(modeList).ShortHelp()},
		{Name: "Task options", Bindings: k.helpFor(modeOptions).ShortHelp()},
		{Name: "New task", Bindings: k.helpFor(modeInput).ShortHelp()},
	}
}
