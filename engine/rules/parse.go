package rules

import (
	"sort"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// axis is a scan direction: horizontal runs along rows, vertical down columns.
type axis struct{ dx, dy int }

var scanAxes = []axis{{dx: 1, dy: 0}, {dx: 0, dy: 1}}

// Parse clears the store, re-seeds implicit rules, and adds a rule for every
// sentence on the board matching one of patterns (DefaultPatterns if nil).
// Returns the rules found on the board, in scan order, duplicates included.
//
// Windows are scanned horizontally then vertically. A window is a candidate
// only if every cell in it holds at least one text token; when a cell holds
// several, every combination is tried. Stacking order is not used to pick
// a "visible" token.
func Parse(b types.Board, s *Store, patterns []Pattern) []Rule {
	if patterns == nil {
		patterns = DefaultPatterns
	}
	s.Reset()

	var found []Rule
	for _, n := range windowLengths(patterns) {
		for _, ax := range scanAxes {
			eachWindow(b, n, ax, func(texts [][]types.Entity) {
				product(texts, func(tokens []types.Entity) {
					for _, p := range patterns {
						if !p.Matches(tokens) {
							continue
						}
						r, ok := ruleFromTokens(tokens)
						if !ok {
							continue
						}
						s.Add(r.Subject, r.Verb, r.Complement)
						found = append(found, r)
					}
				})
			})
		}
	}
	return found
}

// windowLengths returns the distinct pattern lengths, longest first.
func windowLengths(patterns []Pattern) []int {
	seen := map[int]bool{}
	var out []int
	for _, p := range patterns {
		if len(p) == 0 || seen[len(p)] {
			continue
		}
		seen[len(p)] = true
		out = append(out, len(p))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// eachWindow calls fn for every candidate window of length n along ax.
// texts[i] holds the text tokens of the i-th cell of the window.
func eachWindow(b types.Board, n int, ax axis, fn func(texts [][]types.Entity)) {
	w, h := state.Width(b), state.Height(b)
	maxX, maxY := w-ax.dx*(n-1), h-ax.dy*(n-1)
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			texts := make([][]types.Entity, n)
			candidate := true
			for i := 0; i < n; i++ {
				cell := b[y+ax.dy*i][x+ax.dx*i]
				texts[i] = textTokens(cell)
				if len(texts[i]) == 0 {
					candidate = false
					break
				}
			}
			if candidate {
				fn(texts)
			}
		}
	}
}

func textTokens(cell types.Cell) []types.Entity {
	var out []types.Entity
	for _, e := range cell {
		if e.IsText() {
			out = append(out, e)
		}
	}
	return out
}

// product calls fn with every combination picking one token per offset.
// The slice passed to fn is reused between calls.
func product(alternatives [][]types.Entity, fn func([]types.Entity)) {
	tokens := make([]types.Entity, len(alternatives))
	var rec func(i int)
	rec = func(i int) {
		if i == len(alternatives) {
			fn(tokens)
			return
		}
		for _, e := range alternatives[i] {
			tokens[i] = e
			rec(i + 1)
		}
	}
	rec(0)
}
