package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// level name, turn, undo depth, rule count and whether the level is won.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | Rules: %d", m.name, len(m.level.Rules()))
	right := fmt.Sprintf("Undo: %d | T:%d ", m.level.HistoryLen(), m.level.Turn())
	if m.level.HasWon() {
		right = "WON | " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	if m.width > 0 {
		return styleStatusBar.Width(m.width).Render(bar)
	}
	return styleStatusBar.Render(bar)
}
