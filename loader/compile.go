package loader

import (
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

type opKind int

const (
	opPlace opKind = iota
	opSentence
	opFill
	opBorder
)

// op is one board-building call recorded while the script runs.
type op struct {
	kind   opKind
	x1, y1 int
	x2, y2 int
	down   bool
	keys   []string
	where  string
}

// collector accumulates the script's calls. Ops are applied in call order
// once the script finishes, so Level may come after them.
type collector struct {
	level  *lua.LTable
	ops    []op
	errors []string
}

func (c *collector) add(L *lua.LState, o op) {
	o.where = L.Where(1)
	c.ops = append(c.ops, o)
}

func (c *collector) errorf(L *lua.LState, format string, args ...any) {
	c.errors = append(c.errors, L.Where(1)+" "+fmt.Sprintf(format, args...))
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStringList returns the string elements of an array-like table.
func getStringList(tbl *lua.LTable) []string {
	var out []string
	for i := 1; i <= tbl.Len(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile turns the collected calls into a validated board.
func compile(c *collector) (types.Board, error) {
	ve := &ValidationError{Errors: c.errors}
	if c.level == nil {
		ve.Errors = append(ve.Errors, "Level { ... } is required")
		return nil, ve
	}

	b, err := baseBoard(c.level)
	if err != nil {
		var inner *ValidationError
		if errors.As(err, &inner) {
			ve.Errors = append(ve.Errors, inner.Errors...)
		} else {
			ve.Errors = append(ve.Errors, err.Error())
		}
		return nil, ve
	}

	for _, o := range c.ops {
		applyOp(b, o, ve)
	}

	validateBoard(b, ve)
	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return b, nil
}

// baseBoard builds the starting board from Level's rows or size.
func baseBoard(level *lua.LTable) (types.Board, error) {
	if rows := getTable(level, "rows"); rows != nil {
		return ParseLevel(strings.NewReader(strings.Join(getStringList(rows), "\n")))
	}
	w, h := getInt(level, "width"), getInt(level, "height")
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("level needs rows or a positive width and height, got %dx%d", w, h)
	}
	if w > MaxSide || h > MaxSide {
		return nil, fmt.Errorf("level is %dx%d, at most %d cells per side", w, h, MaxSide)
	}
	return state.Empty(w, h), nil
}

func applyOp(b types.Board, o op, ve *ValidationError) {
	fail := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, o.where+" "+fmt.Sprintf(format, args...))
	}

	entities := make([]types.Entity, len(o.keys))
	for i, k := range o.keys {
		e, ok := EntityFor(k)
		if !ok {
			fail("unknown keystring %q", k)
			return
		}
		entities[i] = e
	}

	put := func(p types.Position, es ...types.Entity) {
		if !state.InBounds(b, p) {
			fail("(%d,%d) is off the %dx%d board", p.X, p.Y, state.Width(b), state.Height(b))
			return
		}
		state.Append(b, p, es...)
	}

	switch o.kind {
	case opPlace:
		put(types.Position{X: o.x1, Y: o.y1}, entities...)
	case opSentence:
		dir := types.Right
		if o.down {
			dir = types.Down
		}
		p := types.Position{X: o.x1, Y: o.y1}
		for _, e := range entities {
			put(p, e)
			p = p.Add(dir)
		}
	case opFill:
		x1, x2 := minMax(o.x1, o.x2)
		y1, y2 := minMax(o.y1, o.y2)
		w, h := state.Width(b), state.Height(b)
		if x1 < 0 || y1 < 0 || x2 >= w || y2 >= h {
			fail("fill (%d,%d)-(%d,%d) runs off the %dx%d board", x1, y1, x2, y2, w, h)
			x1, y1 = max(x1, 0), max(y1, 0)
			x2, y2 = min(x2, w-1), min(y2, h-1)
		}
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				put(types.Position{X: x, Y: y}, entities...)
			}
		}
	case opBorder:
		w, h := state.Width(b), state.Height(b)
		state.Each(b, func(p types.Position, _ types.Cell) {
			if p.X == 0 || p.Y == 0 || p.X == w-1 || p.Y == h-1 {
				put(p, entities...)
			}
		})
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
