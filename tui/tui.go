package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rschwa6308/Momo-Is-You/engine"
	"github.com/rschwa6308/Momo-Is-You/engine/events"
	"github.com/rschwa6308/Momo-Is-You/types"
)

const (
	logSize  = 100 // messages kept
	logLines = 4   // messages shown under the board
)

// Model is the Bubble Tea model for playing one level.
type Model struct {
	level *engine.Level
	name  string

	keys keyMap
	help help.Model
	log  *Log

	width    int
	trace    bool
	quitting bool
}

// New creates a TUI model wired to the given level.
func New(level *engine.Level, name string) Model {
	m := Model{
		level: level,
		name:  name,
		keys:  defaultKeyMap(),
		help:  help.New(),
		log:   NewLog(logSize),
	}
	m.log.Push(fmt.Sprintf("%d rule(s) in force. Press ? for keys.", len(level.Rules())))
	return m
}

// Run starts the Bubble Tea program.
func Run(level *engine.Level, name string) error {
	p := tea.NewProgram(New(level, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. There is nothing to load.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Trace):
			m.trace = !m.trace
			if m.trace {
				m.log.Push("[Trace output enabled.]")
			} else {
				m.log.Push("[Trace output disabled.]")
			}

		default:
			if k, ok := m.keys.gameKey(msg); ok {
				m.play(k)
			}
		}
	}
	return m, nil
}

// play feeds one key to the level and logs the outcome.
func (m Model) play(k types.Key) {
	if m.level.HasWon() {
		m.log.Push("[The level is complete. Press q to quit.]")
		return
	}

	res := m.level.ProcessInput(k)
	if m.trace {
		m.log.Push(fmt.Sprintf("[trace] %s: changed=%v won=%v events=%d",
			k, res.Changed, res.Won, len(res.Events)))
		for _, e := range res.Events {
			m.log.Push("[trace]   " + events.Describe(e))
		}
	}

	switch {
	case res.Won:
		m.log.Push("You win!")
	case !res.Changed && k == types.KeyUndo:
		m.log.Push("Nothing to undo.")
	case !res.Changed && k == types.KeyRestart:
		m.log.Push("Already at the start.")
	case !res.Changed:
		m.log.Push("Nothing happens.")
	}
}

// View renders the title, board, message log, status bar and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	if m.name != "" {
		sb.WriteString(styleTitle.Render(m.name))
		sb.WriteString("\n")
	}
	sb.WriteString(renderBoard(m.level.Board()))
	sb.WriteString("\n")
	if m.level.HasWon() {
		sb.WriteString(styleWin.Render("*** You win! ***"))
		sb.WriteString("\n")
	}
	n := logLines
	if m.trace {
		n *= 3
	}
	for _, line := range m.log.Lines(n) {
		sb.WriteString(renderLogLine(line))
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderStatusBar())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderLogLine styles a log message by its prefix.
func renderLogLine(line string) string {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return styleTrace.Render(line)
	case strings.HasPrefix(line, "["):
		return styleSystem.Render(line)
	case strings.HasPrefix(line, "You win!"):
		return styleWin.Render(line)
	default:
		return line
	}
}
