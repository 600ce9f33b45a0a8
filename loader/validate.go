package loader

import (
	"fmt"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// MaxSide is the largest width or height a level may have.
const MaxSide = 256

// validateBoard records every shape and content problem of b in ve.
// Warnings flag boards that load but cannot be played or won.
func validateBoard(b types.Board, ve *ValidationError) {
	if len(b) == 0 || len(b[0]) == 0 {
		ve.Errors = append(ve.Errors, state.ErrEmptyBoard.Error())
		return
	}

	width := len(b[0])
	if width > MaxSide || len(b) > MaxSide {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"board is %dx%d, at most %d cells per side", width, len(b), MaxSide))
		return
	}
	for y, row := range b {
		if len(row) != width {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"row %d has %d cells, want %d", y+1, len(row), width))
		}
		for x, cell := range row {
			for _, e := range cell {
				if !e.Valid() {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"cell (%d,%d) holds invalid entity %v", x, y, e))
				}
			}
		}
	}
	if len(ve.Errors) > 0 {
		return
	}

	// Warnings: missing words needed to play.
	if !hasEntity(b, types.AdjYou.Entity()) {
		ve.Warnings = append(ve.Warnings, "no YOU text: nothing can ever move")
	}
	if !hasEntity(b, types.AdjWin.Entity()) {
		ve.Warnings = append(ve.Warnings, "no WIN text: the level cannot be won")
	}
}

func hasEntity(b types.Board, want types.Entity) bool {
	return state.Count(b, func(e types.Entity) bool { return e == want }) > 0
}

// Validate checks a decoded board the same way ParseLevel does. Returns
// the warnings and, if any error was found, a *ValidationError.
func Validate(b types.Board) ([]string, error) {
	ve := &ValidationError{}
	validateBoard(b, ve)
	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}
