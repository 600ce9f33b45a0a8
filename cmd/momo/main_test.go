package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rschwa6308/Momo-Is-You/config"
)

const (
	firstLevel  = "MOMO|IS|YOU\nFLAG|IS|WIN\nMOM*|_|FLA*"
	secondLevel = "MOMO|IS|YOU\nMOM*|_|_"
	scriptLevel = `Level { width = 3, height = 3 }
Sentence(0, 0, "right", "MOMO", "IS", "YOU")
Sentence(0, 1, "right", "FLAG", "IS", "WIN")
Place(0, 2, "MOM*")
Place(2, 2, "FLA*")
`
)

func writeLevels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a_first.lvl":  firstLevel,
		"b_second.lvl": secondLevel,
		"c_script.lua": scriptLevel,
		"notes.txt":    "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testConfig(dir string) config.Config {
	return config.Config{LevelsDir: dir, LogLevel: "error"}
}

func TestPickLevel(t *testing.T) {
	dir := writeLevels(t)
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"default is first", "", "a_first"},
		{"by name", "b_second", "b_second"},
		{"lua by name", "c_script", "c_script"},
		{"direct file", filepath.Join(dir, "b_second.lvl"), "b_second"},
		{"direct script", filepath.Join(dir, "c_script.lua"), "c_script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := pickLevel(dir, tt.arg)
			if err != nil {
				t.Fatalf("pickLevel(%q) error: %v", tt.arg, err)
			}
			if lvl.Name != tt.want {
				t.Errorf("Name = %q, want %q", lvl.Name, tt.want)
			}
			if len(lvl.Board) == 0 {
				t.Error("board should not be empty")
			}
		})
	}
}

func TestPickLevel_Errors(t *testing.T) {
	dir := writeLevels(t)

	_, err := pickLevel(dir, "missing")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "a_first, b_second, c_script") {
		t.Errorf("error should list the levels: %v", err)
	}

	if _, err := pickLevel(t.TempDir(), ""); err == nil {
		t.Error("expected error for an empty directory")
	}
	if _, err := pickLevel(dir, filepath.Join(dir, "nope.lvl")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestCommand_List(t *testing.T) {
	dir := writeLevels(t)
	var out bytes.Buffer
	cmd := newCommand(testConfig(dir))
	cmd.Writer = &out

	if err := cmd.Run(context.Background(), []string{"momo", "--list"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := out.String(); got != "a_first\nb_second\nc_script\n" {
		t.Errorf("--list output = %q", got)
	}
}

func TestCommand_Script(t *testing.T) {
	dir := writeLevels(t)
	script := filepath.Join(t.TempDir(), "moves.txt")
	if err := os.WriteFile(script, []byte("# walk to the flag\nright 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newCommand(testConfig(dir))
	cmd.Writer = &out
	err := cmd.Run(context.Background(), []string{"momo", "--levels", dir, "--script", script, "c_script"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"[Level: c_script]", "right 2", "You win!"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCommand_BadLogLevel(t *testing.T) {
	dir := writeLevels(t)
	cmd := newCommand(testConfig(dir))
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(context.Background(), []string{"momo", "--log-level", "loud", "--list"})
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestCommand_MissingScript(t *testing.T) {
	dir := writeLevels(t)
	cmd := newCommand(testConfig(dir))
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(context.Background(), []string{"momo", "--script", filepath.Join(dir, "none.txt")})
	if err == nil || !strings.Contains(err.Error(), "opening script") {
		t.Errorf("expected script open error, got %v", err)
	}
}
