package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// keyMap holds every binding the TUI reacts to.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Wait    key.Binding
	Undo    key.Binding
	Restart key.Binding
	Trace   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Wait: key.NewBinding(
			key.WithKeys(" ", "space", "."),
			key.WithHelp("space", "wait"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "u", "backspace"),
			key.WithHelp("z", "undo"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Wait, k.Undo, k.Restart},
		{k.Trace, k.Help, k.Quit},
	}
}

// gameKey maps a key press to the level input it stands for.
func (k keyMap) gameKey(msg tea.KeyMsg) (types.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return types.KeyUp, true
	case key.Matches(msg, k.Down):
		return types.KeyDown, true
	case key.Matches(msg, k.Left):
		return types.KeyLeft, true
	case key.Matches(msg, k.Right):
		return types.KeyRight, true
	case key.Matches(msg, k.Wait):
		return types.KeyWait, true
	case key.Matches(msg, k.Undo):
		return types.KeyUndo, true
	case key.Matches(msg, k.Restart):
		return types.KeyRestart, true
	}
	return 0, false
}
