package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

const sampleLevel = `MOMO|IS|YOU|_
_|_|_|WAL*
MOM*|ROC*,FLA*|_|WAL*
FLAG|IS|WIN|WAT*`

func TestParseLevel(t *testing.T) {
	b, err := ParseLevel(strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	if state.Width(b) != 4 || state.Height(b) != 4 {
		t.Fatalf("size = %dx%d, want 4x4", state.Width(b), state.Height(b))
	}

	want := types.Cell{types.ObjRock.Entity(), types.ObjFlag.Entity()}
	if diff := cmp.Diff(want, b[2][1]); diff != "" {
		t.Errorf("stacked cell mismatch (-want +got):\n%s", diff)
	}
	if b[0][0][0] != types.NounMomo.Entity() || b[0][1][0] != types.VerbIs.Entity() {
		t.Errorf("first row = %v", b[0])
	}
	if len(b[1][0]) != 0 {
		t.Errorf("empty tile decoded as %v", b[1][0])
	}
}

func TestParseLevel_TolerantWhitespace(t *testing.T) {
	src := "MOM*| _ |wal*\r\n\n\n"
	b, err := ParseLevel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	if state.Height(b) != 1 || state.Width(b) != 3 {
		t.Errorf("size = %dx%d, want 3x1", state.Width(b), state.Height(b))
	}
	if b[0][2][0] != types.ObjWall.Entity() {
		t.Errorf("lowercase keystring decoded as %v", b[0][2])
	}
}

func TestParseLevel_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty file", "", "empty"},
		{"unknown keystring", "MOM*|BOGUS", `unknown keystring "BOGUS"`},
		{"blank tile", "MOM*||_", "empty tile"},
		{"ragged rows", "_|_\n_", "row 2 has 1 cells, want 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(strings.NewReader(tt.src))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestParseLevel_ReportsEveryProblem(t *testing.T) {
	_, err := ParseLevel(strings.NewReader("XX|YY\nZZ|_"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(ve.Errors), ve.Errors)
	}
}

func TestWriteLevel_RoundTrip(t *testing.T) {
	b, err := ParseLevel(strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := WriteLevel(&sb, b); err != nil {
		t.Fatalf("WriteLevel() error: %v", err)
	}
	if sb.String() != sampleLevel {
		t.Errorf("WriteLevel() =\n%s\nwant\n%s", sb.String(), sampleLevel)
	}
}

func TestWriteLevel_InvalidEntity(t *testing.T) {
	b := types.Board{{{types.Entity{}}}}
	if err := WriteLevel(&strings.Builder{}, b); err == nil {
		t.Error("expected an error for an entity without a keystring")
	}
}

func TestKeystrings_Bijective(t *testing.T) {
	var all []types.Entity
	for _, o := range types.Objects() {
		all = append(all, o.Entity())
	}
	for _, n := range types.Nouns() {
		all = append(all, n.Entity())
	}
	for _, a := range types.Adjectives() {
		all = append(all, a.Entity())
	}
	for _, v := range types.Verbs() {
		all = append(all, v.Entity())
	}

	seen := map[string]bool{}
	for _, e := range all {
		k, ok := KeyFor(e)
		if !ok {
			t.Errorf("no keystring for %v", e)
			continue
		}
		if len(k) > 4 {
			t.Errorf("keystring %q longer than 4", k)
		}
		if seen[k] {
			t.Errorf("keystring %q used twice", k)
		}
		seen[k] = true
		if back, _ := EntityFor(k); back != e {
			t.Errorf("EntityFor(%q) = %v, want %v", k, back, e)
		}
	}
}

func TestLevelFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.lvl")

	b, err := ParseLevel(strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteLevelFile(path, b); err != nil {
		t.Fatalf("WriteLevelFile() error: %v", err)
	}
	got, err := ReadLevelFile(path)
	if err != nil {
		t.Fatalf("ReadLevelFile() error: %v", err)
	}
	if !state.Equal(b, got) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(b, got))
	}
}

func TestWriteLevelFile_RequiresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.txt")
	err := WriteLevelFile(path, types.Board{{nil}})
	if !errors.Is(err, ErrBadExtension) {
		t.Errorf("error = %v, want ErrBadExtension", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file should not have been written")
	}
}

func TestReadLevelFile_Missing(t *testing.T) {
	_, err := ReadLevelFile(filepath.Join(t.TempDir(), "nope.lvl"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
