// Package loader reads level boards from .lvl text files and from Lua level
// scripts, and writes boards back out as .lvl text. The Lua VM is discarded
// once the board is built.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// ScriptExt is the extension of Lua level scripts.
const ScriptExt = ".lua"

// Level is one level discovered in a directory.
type Level struct {
	Name  string // file name without extension
	Path  string
	Board types.Board
}

// Load reads every .lvl and .lua file in dir, sorted by name. A level
// whose name appears as both wins as the .lvl file.
func Load(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading level directory %s: %w", dir, err)
	}

	byName := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != Ext && ext != ScriptExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if prev, ok := byName[name]; ok && filepath.Ext(prev) == Ext {
			continue
		}
		byName[name] = e.Name()
	}
	if len(byName) == 0 {
		return nil, fmt.Errorf("no %s or %s files found in %s", Ext, ScriptExt, dir)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, byName[name])
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, Level{Name: name, Path: path, Board: b})
	}
	return levels, nil
}

// Find returns the level called name.
func Find(levels []Level, name string) (Level, bool) {
	for _, l := range levels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}

// Names lists level names in order.
func Names(levels []Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Name
	}
	return out
}

// LoadFile reads one level, choosing the decoder by extension.
func LoadFile(path string) (types.Board, error) {
	switch filepath.Ext(path) {
	case Ext:
		return ReadLevelFile(path)
	case ScriptExt:
		return RunScriptFile(path)
	default:
		return nil, fmt.Errorf("%s: unknown level file type", path)
	}
}

// RunScriptFile executes a Lua level script and builds its board.
func RunScriptFile(path string) (types.Board, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	b, err := RunScript(filepath.Base(path), string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// RunScript executes Lua level source in a sandboxed VM and builds the
// board it describes. name is used in error messages only.
func RunScript(name, src string) (types.Board, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	return compile(coll)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the script.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring", "require",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Levels must be the same every time they load.
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("random", lua.LNil)
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
}
