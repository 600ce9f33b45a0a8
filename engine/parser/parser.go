// Package parser converts typed commands into level keys.
// Intentionally dumb: no grammar, just aliases and an optional repeat count.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// ErrUnknownCommand is returned for a word that names no key.
var ErrUnknownCommand = errors.New("unknown command")

// MaxRepeat caps the count in commands like "right 5".
const MaxRepeat = 100

var keyAliases = map[string]types.Key{
	// Movement: words, compass points, WASD and vi keys.
	"up":    types.KeyUp,
	"north": types.KeyUp,
	"n":     types.KeyUp,
	"w":     types.KeyUp,
	"k":     types.KeyUp,

	"down":  types.KeyDown,
	"south": types.KeyDown,
	"s":     types.KeyDown,
	"j":     types.KeyDown,

	"left": types.KeyLeft,
	"west": types.KeyLeft,
	"a":    types.KeyLeft,
	"h":    types.KeyLeft,

	"right": types.KeyRight,
	"east":  types.KeyRight,
	"e":     types.KeyRight,
	"d":     types.KeyRight,
	"l":     types.KeyRight,

	// Turn control
	"wait": types.KeyWait,
	"pass": types.KeyWait,
	"idle": types.KeyWait,
	".":    types.KeyWait,

	"undo": types.KeyUndo,
	"back": types.KeyUndo,
	"u":    types.KeyUndo,
	"z":    types.KeyUndo,

	"restart": types.KeyRestart,
	"reset":   types.KeyRestart,
	"r":       types.KeyRestart,
}

// Filler words that may precede a direction ("go left", "move up").
var fillers = map[string]bool{
	"go": true, "move": true, "walk": true, "step": true, "push": true,
}

// Parse converts a command line into the keys to feed the level, in order.
// Words are separated by whitespace or commas. A number after a key repeats
// it, so "right 3 up" is right, right, right, up. An empty line yields no
// keys and no error.
func Parse(input string) ([]types.Key, error) {
	words := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var keys []types.Key
	for _, w := range words {
		if fillers[w] {
			continue
		}
		if n, err := strconv.Atoi(w); err == nil {
			if len(keys) == 0 {
				return nil, fmt.Errorf("count %d has no command to repeat: %w", n, ErrUnknownCommand)
			}
			if n < 1 || n > MaxRepeat {
				return nil, fmt.Errorf("count %d out of range 1..%d", n, MaxRepeat)
			}
			last := keys[len(keys)-1]
			for j := 1; j < n; j++ {
				keys = append(keys, last)
			}
			continue
		}
		k, ok := keyAliases[w]
		if !ok {
			return nil, fmt.Errorf("%q: %w", w, ErrUnknownCommand)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Aliases returns every accepted word for key, shortest first.
func Aliases(key types.Key) []string {
	var out []string
	for w, k := range keyAliases {
		if k == key {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
