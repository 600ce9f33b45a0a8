package tui

import (
	"strings"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// renderTile draws one cell. Only the top entity is shown; a trailing "+"
// marks a stack.
func renderTile(cell types.Cell) string {
	if len(cell) == 0 {
		return styleEmpty.Render(".")
	}
	top := cell[len(cell)-1]
	label := entityLabel(top)
	if len(cell) > 1 {
		label += "+"
	}
	return entityStyle(top).Render(label)
}

// renderBoard draws the whole board inside a border.
func renderBoard(b types.Board) string {
	rows := make([]string, len(b))
	for y, row := range b {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(renderTile(cell))
		}
		rows[y] = sb.String()
	}
	return styleBoard.Render(strings.Join(rows, "\n"))
}
