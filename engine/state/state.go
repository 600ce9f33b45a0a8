// Package state validates boards and provides the cell-level mutations
// every resolver goes through.
package state

import (
	"errors"
	"fmt"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// Construction errors. They are wrapped with position context; use errors.Is.
var (
	ErrEmptyBoard     = errors.New("invalid board shape: board cannot be empty")
	ErrNotRectangular = errors.New("invalid board shape: board must be rectangular")
	ErrInvalidEntity  = errors.New("invalid board contents: board can only contain entities")
)

// Validate checks that the board is non-empty, rectangular and holds only
// valid entities.
func Validate(b types.Board) error {
	if len(b) == 0 || len(b[0]) == 0 {
		return ErrEmptyBoard
	}
	width := len(b[0])
	for y, row := range b {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrNotRectangular)
		}
	}
	for y, row := range b {
		for x, cell := range row {
			for _, e := range cell {
				if !e.Valid() {
					return fmt.Errorf("cell (%d,%d) holds %v: %w", x, y, e, ErrInvalidEntity)
				}
			}
		}
	}
	return nil
}

// Width returns the number of columns.
func Width(b types.Board) int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func Height(b types.Board) int {
	return len(b)
}

// InBounds reports whether p addresses a cell of b.
func InBounds(b types.Board, p types.Position) bool {
	return p.Y >= 0 && p.Y < len(b) && p.X >= 0 && p.X < Width(b)
}

// At returns the live cell at p. Callers must check bounds first.
func At(b types.Board, p types.Position) types.Cell {
	return b[p.Y][p.X]
}

// Append stacks entities on top of the cell at p.
func Append(b types.Board, p types.Position, es ...types.Entity) {
	b[p.Y][p.X] = append(b[p.Y][p.X], es...)
}

// Remove deletes the first occurrence of e from the cell at p.
// Returns false if the cell does not hold e.
func Remove(b types.Board, p types.Position, e types.Entity) bool {
	cell := b[p.Y][p.X]
	for i, c := range cell {
		if c == e {
			b[p.Y][p.X] = append(cell[:i:i], cell[i+1:]...)
			return true
		}
	}
	return false
}

// Move relocates one occurrence of e from one cell to another.
func Move(b types.Board, e types.Entity, from, to types.Position) bool {
	if !Remove(b, from, e) {
		return false
	}
	Append(b, to, e)
	return true
}

// Contains reports whether the cell holds e.
func Contains(cell types.Cell, e types.Entity) bool {
	for _, c := range cell {
		if c == e {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of a cell so callers can iterate while mutating.
func Snapshot(cell types.Cell) types.Cell {
	if len(cell) == 0 {
		return nil
	}
	out := make(types.Cell, len(cell))
	copy(out, cell)
	return out
}

// Clone returns a deep copy of the board.
func Clone(b types.Board) types.Board {
	out := make(types.Board, len(b))
	for y, row := range b {
		out[y] = make([]types.Cell, len(row))
		for x, cell := range row {
			out[y][x] = Snapshot(cell)
		}
	}
	return out
}

// Equal reports structural equality: same shape and the same entities in
// the same stacking order in every cell. Empty and nil cells are equal.
func Equal(a, b types.Board) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if len(a[y][x]) != len(b[y][x]) {
				return false
			}
			for i := range a[y][x] {
				if a[y][x][i] != b[y][x][i] {
					return false
				}
			}
		}
	}
	return true
}

// Empty returns a width×height board with no entities.
func Empty(width, height int) types.Board {
	b := make(types.Board, height)
	for y := range b {
		b[y] = make([]types.Cell, width)
	}
	return b
}

// Each visits every cell in row-major order: left to right within a row,
// rows top to bottom.
func Each(b types.Board, fn func(p types.Position, cell types.Cell)) {
	for y, row := range b {
		for x, cell := range row {
			fn(types.Position{X: x, Y: y}, cell)
		}
	}
}

// Count returns how many entities satisfy pred.
func Count(b types.Board, pred func(types.Entity) bool) int {
	n := 0
	Each(b, func(_ types.Position, cell types.Cell) {
		for _, e := range cell {
			if pred(e) {
				n++
			}
		}
	})
	return n
}
