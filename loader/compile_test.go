package loader

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

func mustRun(t *testing.T, src string) types.Board {
	t.Helper()
	b, err := RunScript("test.lua", src)
	if err != nil {
		t.Fatalf("RunScript() error: %v", err)
	}
	return b
}

func TestRunScript_SizedBoard(t *testing.T) {
	b := mustRun(t, `
		Level { width = 5, height = 3 }
		Sentence(0, 0, "right", "MOMO", "IS", "YOU")
		Sentence(4, 0, "down", "FLAG", "IS", "WIN")
		Place(1, 2, "MOM*")
		Place(3, 1, "ROC*", "FLA*")
	`)
	if state.Width(b) != 5 || state.Height(b) != 3 {
		t.Fatalf("size = %dx%d, want 5x3", state.Width(b), state.Height(b))
	}
	checks := []struct {
		x, y int
		want types.Entity
	}{
		{0, 0, types.NounMomo.Entity()},
		{1, 0, types.VerbIs.Entity()},
		{2, 0, types.AdjYou.Entity()},
		{4, 0, types.NounFlag.Entity()},
		{4, 1, types.VerbIs.Entity()},
		{4, 2, types.AdjWin.Entity()},
		{1, 2, types.ObjMomo.Entity()},
	}
	for _, c := range checks {
		if !state.Contains(b[c.y][c.x], c.want) {
			t.Errorf("(%d,%d) = %v, want %v", c.x, c.y, b[c.y][c.x], c.want)
		}
	}
	if got := b[1][3]; len(got) != 2 || got[0] != types.ObjRock.Entity() || got[1] != types.ObjFlag.Entity() {
		t.Errorf("stacked cell = %v", got)
	}
}

func TestRunScript_RowsAndLoops(t *testing.T) {
	b := mustRun(t, `
		Level { rows = {
			"MOMO|IS|YOU|_",
			"_|_|_|_",
			"_|_|_|_",
		} }
		for x = 0, 3 do
			Place(x, 2, "WAL*")
		end
	`)
	if state.Height(b) != 3 || state.Width(b) != 4 {
		t.Fatalf("size = %dx%d", state.Width(b), state.Height(b))
	}
	if n := state.Count(b, func(e types.Entity) bool { return e == types.ObjWall.Entity() }); n != 4 {
		t.Errorf("walls = %d, want 4", n)
	}
}

func TestRunScript_FillAndBorder(t *testing.T) {
	b := mustRun(t, `
		Level { width = 4, height = 4 }
		Border("WAL*")
		Fill(2, 2, 1, 1, "WAT*")
	`)
	wall := types.ObjWall.Entity()
	water := types.ObjWater.Entity()
	if n := state.Count(b, func(e types.Entity) bool { return e == wall }); n != 12 {
		t.Errorf("border walls = %d, want 12", n)
	}
	if n := state.Count(b, func(e types.Entity) bool { return e == water }); n != 4 {
		t.Errorf("water = %d, want 4", n)
	}
}

func TestRunScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no level", `Place(0, 0, "MOM*")`, "Level { ... } is required"},
		{"no size", `Level {}`, "positive width and height"},
		{"twice", "Level { width = 1, height = 1 }\nLevel { width = 1, height = 1 }", "declared twice"},
		{"unknown key", "Level { width = 2, height = 1 }\nPlace(0, 0, \"NOPE\")", `unknown keystring "NOPE"`},
		{"off board", "Level { width = 2, height = 1 }\nPlace(5, 0, \"MOM*\")", "off the 2x1 board"},
		{"sentence off board", "Level { width = 2, height = 1 }\nSentence(0, 0, \"right\", \"MOMO\", \"IS\", \"YOU\")", "(2,0) is off"},
		{"bad rows", `Level { rows = { "MOM*|XYZ" } }`, `unknown keystring "XYZ"`},
		{"fill off board", "Level { width = 3, height = 3 }\nFill(0, 0, 3000, 3000, \"WAL*\")", "fill (0,0)-(3000,3000) runs off the 3x3 board"},
		{"fill negative corner", "Level { width = 3, height = 3 }\nFill(-1, 0, 1, 1, \"WAL*\")", "fill (-1,0)-(1,1) runs off"},
		{"huge level", "Level { width = 4000, height = 4000 }", "level is 4000x4000, at most 256 cells per side"},
		{"wide level", "Level { width = 257, height = 1 }", "at most 256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunScript("test.lua", tt.src)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestRunScript_FillOffBoardReportsOnce(t *testing.T) {
	_, err := RunScript("fill.lua", "Level { width = 3, height = 3 }\nFill(0, 0, 3000, 3000, \"WAL*\")")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(ve.Errors) != 1 {
		t.Errorf("got %d errors, want 1: %v", len(ve.Errors), ve.Errors[:min(len(ve.Errors), 3)])
	}
	if !strings.Contains(ve.Errors[0], "fill.lua:2") {
		t.Errorf("error %q should carry the call location", ve.Errors[0])
	}
}

func TestRunScript_MaxSideAccepted(t *testing.T) {
	b := mustRun(t, fmt.Sprintf("Level { width = %d, height = 2 }\nFill(0, 0, %d, 1, \"WAT*\")", MaxSide, MaxSide-1))
	if state.Width(b) != MaxSide {
		t.Errorf("width = %d, want %d", state.Width(b), MaxSide)
	}
	if n := state.Count(b, func(e types.Entity) bool { return e == types.ObjWater.Entity() }); n != 2*MaxSide {
		t.Errorf("water = %d, want %d", n, 2*MaxSide)
	}
}

func TestRunScript_ErrorsCarryLocation(t *testing.T) {
	_, err := RunScript("where.lua", "Level { width = 1, height = 1 }\n\nPlace(3, 3, \"MOM*\")")
	if err == nil || !strings.Contains(err.Error(), "where.lua:3") {
		t.Errorf("error = %v, want location where.lua:3", err)
	}
}

func TestRunScript_LuaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `Level {`},
		{"bad direction", "Level { width = 3, height = 1 }\nSentence(0, 0, \"up\", \"MOMO\")"},
		{"place without keys", "Level { width = 3, height = 1 }\nPlace(0, 0)"},
		{"runtime", `error("boom")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunScript("test.lua", tt.src); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunScript_Sandboxed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no os", `os.exit(1)`},
		{"no io", `io.open("x")`},
		{"no dofile", `dofile("x.lua")`},
		{"no require", `require("x")`},
		{"no random", `math.random()`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunScript("test.lua", tt.src); err == nil {
				t.Error("sandbox let the call through")
			}
		})
	}
}

func TestRunScript_SafeLibs(t *testing.T) {
	b := mustRun(t, `
		local w = math.max(2, 3)
		Level { width = w, height = string.len("ab") }
		local words = { "WALL", "IS", "STOP" }
		Sentence(0, 0, "right", unpack(words))
	`)
	if state.Width(b) != 3 || state.Height(b) != 2 {
		t.Errorf("size = %dx%d, want 3x2", state.Width(b), state.Height(b))
	}
}
