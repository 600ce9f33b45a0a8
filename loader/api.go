package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the level-building functions as globals.
// Coordinates are zero-based with (0,0) at the top left.
//
//	Level { width = 11, height = 7 }
//	Level { rows = { "MOMO|IS|YOU", "_|_|_" } }
//	Place(x, y, "MOM*", ...)
//	Sentence(x, y, "right", "WALL", "IS", "STOP")
//	Fill(x1, y1, x2, y2, "WAL*")
//	Border("WAL*")
func registerAPI(L *lua.LState, coll *collector) {
	// Level { ... } sets the board size, or its starting rows.
	L.SetGlobal("Level", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		if coll.level != nil {
			coll.errorf(L, "Level declared twice")
			return 0
		}
		coll.level = tbl
		return 0
	}))

	// Place(x, y, key...) stacks entities on one cell, in argument order.
	L.SetGlobal("Place", L.NewFunction(func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		keys := stringArgs(L, 3)
		if len(keys) == 0 {
			L.ArgError(3, "at least one keystring expected")
		}
		coll.add(L, op{kind: opPlace, x1: x, y1: y, keys: keys})
		return 0
	}))

	// Sentence(x, y, dir, word...) lays words out in consecutive cells.
	L.SetGlobal("Sentence", L.NewFunction(func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		dir := L.CheckString(3)
		if dir != "right" && dir != "down" {
			L.ArgError(3, `direction must be "right" or "down"`)
		}
		words := stringArgs(L, 4)
		if len(words) == 0 {
			L.ArgError(4, "at least one word expected")
		}
		coll.add(L, op{kind: opSentence, x1: x, y1: y, down: dir == "down", keys: words})
		return 0
	}))

	// Fill(x1, y1, x2, y2, key) places key on every cell of the rectangle.
	L.SetGlobal("Fill", L.NewFunction(func(L *lua.LState) int {
		x1, y1 := L.CheckInt(1), L.CheckInt(2)
		x2, y2 := L.CheckInt(3), L.CheckInt(4)
		key := L.CheckString(5)
		coll.add(L, op{kind: opFill, x1: x1, y1: y1, x2: x2, y2: y2, keys: []string{key}})
		return 0
	}))

	// Border(key) places key on every edge cell.
	L.SetGlobal("Border", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		coll.add(L, op{kind: opBorder, keys: []string{key}})
		return 0
	}))
}

// stringArgs returns every argument from position from onward as strings.
func stringArgs(L *lua.LState, from int) []string {
	var out []string
	for i := from; i <= L.GetTop(); i++ {
		out = append(out, L.CheckString(i))
	}
	return out
}
