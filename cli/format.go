package cli

import (
	"fmt"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/loader"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// FormatBoard renders the board one row per line using level-file
// keystrings, with each column padded to its widest cell.
func FormatBoard(b types.Board) string {
	tiles := make([][]string, len(b))
	var widths []int
	for y, row := range b {
		tiles[y] = make([]string, len(row))
		for x, cell := range row {
			t := formatCell(cell)
			tiles[y][x] = t
			for len(widths) <= x {
				widths = append(widths, 0)
			}
			if len(t) > widths[x] {
				widths[x] = len(t)
			}
		}
	}

	var sb strings.Builder
	for _, row := range tiles {
		for x, t := range row {
			if x > 0 {
				sb.WriteString(" ")
			}
			if x == len(row)-1 {
				sb.WriteString(t)
			} else {
				fmt.Fprintf(&sb, "%-*s", widths[x], t)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatCell(cell types.Cell) string {
	if len(cell) == 0 {
		return loader.EmptyTile
	}
	return formatCellKeys(cell, loader.KeyDelimiter)
}

func formatCellKeys(es []types.Entity, sep string) string {
	keys := make([]string, len(es))
	for i, e := range es {
		if k, ok := loader.KeyFor(e); ok {
			keys[i] = k
		} else {
			keys[i] = e.String()
		}
	}
	return strings.Join(keys, sep)
}

// keystringLines lists every level-file keystring, one line per token kind.
func keystringLines() []string {
	var objects, nouns, verbs, props []types.Entity
	for _, o := range types.Objects() {
		objects = append(objects, o.Entity())
	}
	for _, n := range types.Nouns() {
		nouns = append(nouns, n.Entity())
	}
	for _, v := range types.Verbs() {
		verbs = append(verbs, v.Entity())
	}
	for _, a := range types.Adjectives() {
		props = append(props, a.Entity())
	}
	return []string{
		"  objects:     " + formatCellKeys(objects, " "),
		"  nouns:       " + formatCellKeys(nouns, " "),
		"  verbs:       " + formatCellKeys(verbs, " "),
		"  properties:  " + formatCellKeys(props, " "),
	}
}
