package cli

import (
	"testing"

	"github.com/rschwa6308/Momo-Is-You/types"
)

func TestFormatBoard(t *testing.T) {
	b := types.Board{
		{{types.NounMomo.Entity()}, {types.VerbIs.Entity()}, {types.AdjYou.Entity()}},
		{{types.ObjRock.Entity(), types.ObjFlag.Entity()}, {}, {types.ObjWall.Entity()}},
	}
	want := "" +
		"MOMO      IS YOU\n" +
		"ROC*,FLA* _  WAL*\n"
	if got := FormatBoard(b); got != want {
		t.Errorf("FormatBoard() =\n%q\nwant\n%q", got, want)
	}
}

func TestKeystringLines(t *testing.T) {
	lines := keystringLines()
	want := []string{
		"  objects:     MOM* WAL* ROC* FLA* WAT*",
		"  nouns:       MOMO WALL ROCK FLAG WATE",
		"  verbs:       IS HAS",
		"  properties:  YOU WIN STOP PUSH DEFE SINK",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
