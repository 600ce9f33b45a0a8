package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// Level text format: one line per row, cells separated by TileDelimiter,
// entities within a cell by KeyDelimiter, EmptyTile for an empty cell.
const (
	TileDelimiter = "|"
	KeyDelimiter  = ","
	EmptyTile     = "_"
	Ext           = ".lvl"
)

// ErrBadExtension is returned when writing a level to a path without Ext.
var ErrBadExtension = errors.New("level files must end with " + Ext)

// keystrings maps each entity to its short file token. Object tokens end
// in an asterisk; text tokens are the word, cut to four letters.
var keystrings = []struct {
	key    string
	entity types.Entity
}{
	{"MOM*", types.ObjMomo.Entity()},
	{"WAL*", types.ObjWall.Entity()},
	{"ROC*", types.ObjRock.Entity()},
	{"FLA*", types.ObjFlag.Entity()},
	{"WAT*", types.ObjWater.Entity()},

	{"MOMO", types.NounMomo.Entity()},
	{"WALL", types.NounWall.Entity()},
	{"ROCK", types.NounRock.Entity()},
	{"FLAG", types.NounFlag.Entity()},
	{"WATE", types.NounWater.Entity()},

	{"IS", types.VerbIs.Entity()},
	{"HAS", types.VerbHas.Entity()},

	{"YOU", types.AdjYou.Entity()},
	{"WIN", types.AdjWin.Entity()},
	{"STOP", types.AdjStop.Entity()},
	{"PUSH", types.AdjPush.Entity()},
	{"DEFE", types.AdjDefeat.Entity()},
	{"SINK", types.AdjSink.Entity()},
}

var (
	keyToEntity = map[string]types.Entity{}
	entityToKey = map[types.Entity]string{}
)

func init() {
	for _, ks := range keystrings {
		keyToEntity[ks.key] = ks.entity
		entityToKey[ks.entity] = ks.key
	}
}

// EntityFor returns the entity a keystring names.
func EntityFor(key string) (types.Entity, bool) {
	e, ok := keyToEntity[strings.ToUpper(strings.TrimSpace(key))]
	return e, ok
}

// KeyFor returns the keystring for an entity.
func KeyFor(e types.Entity) (string, bool) {
	k, ok := entityToKey[e]
	return k, ok
}

// ParseLevel decodes a board from the level text format. Every unknown
// keystring and shape problem is reported in one *ValidationError.
// Trailing blank lines are ignored.
func ParseLevel(r io.Reader) (types.Board, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	ve := &ValidationError{}
	board := make(types.Board, 0, len(lines))
	for y, line := range lines {
		tiles := strings.Split(line, TileDelimiter)
		row := make([]types.Cell, len(tiles))
		for x, tile := range tiles {
			cell, err := parseTile(tile)
			if err != nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf("line %d, cell %d: %v", y+1, x+1, err))
				continue
			}
			row[x] = cell
		}
		board = append(board, row)
	}

	validateBoard(board, ve)
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return board, nil
}

func parseTile(tile string) (types.Cell, error) {
	tile = strings.TrimSpace(tile)
	if tile == EmptyTile {
		return types.Cell{}, nil
	}
	if tile == "" {
		return nil, errors.New("empty tile, use " + EmptyTile)
	}
	var cell types.Cell
	for _, key := range strings.Split(tile, KeyDelimiter) {
		e, ok := EntityFor(key)
		if !ok {
			return nil, fmt.Errorf("unknown keystring %q", key)
		}
		cell = append(cell, e)
	}
	return cell, nil
}

// WriteLevel encodes a board in the level text format. Rows are joined
// with newlines and there is no trailing newline.
func WriteLevel(w io.Writer, b types.Board) error {
	rows := make([]string, len(b))
	for y, row := range b {
		tiles := make([]string, len(row))
		for x, cell := range row {
			tile, err := formatTile(cell)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			tiles[x] = tile
		}
		rows[y] = strings.Join(tiles, TileDelimiter)
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

func formatTile(cell types.Cell) (string, error) {
	if len(cell) == 0 {
		return EmptyTile, nil
	}
	keys := make([]string, len(cell))
	for i, e := range cell {
		k, ok := KeyFor(e)
		if !ok {
			return "", fmt.Errorf("no keystring for %v", e)
		}
		keys[i] = k
	}
	return strings.Join(keys, KeyDelimiter), nil
}

// ReadLevelFile reads and decodes a .lvl file.
func ReadLevelFile(path string) (types.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level %s: %w", path, err)
	}
	defer f.Close()
	b, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return b, nil
}

// WriteLevelFile encodes b into path, which must end in Ext. An existing
// file is overwritten.
func WriteLevelFile(path string, b types.Board) error {
	if !strings.HasSuffix(path, Ext) {
		return fmt.Errorf("%q: %w", path, ErrBadExtension)
	}
	var sb strings.Builder
	if err := WriteLevel(&sb, b); err != nil {
		return fmt.Errorf("encoding level %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing level %s: %w", path, err)
	}
	return nil
}
