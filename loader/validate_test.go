package loader

import (
	"strings"
	"testing"

	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

func TestValidate_Playable(t *testing.T) {
	b := types.Board{{
		{types.NounMomo.Entity()}, {types.VerbIs.Entity()}, {types.AdjYou.Entity()},
		{types.AdjWin.Entity()},
	}}
	warnings, err := Validate(b)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestValidate_Warnings(t *testing.T) {
	warnings, err := Validate(types.Board{{{types.ObjMomo.Entity()}}})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	assertContains(t, warnings, "no YOU text")
	assertContains(t, warnings, "no WIN text")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		board types.Board
		want  string
	}{
		{"empty", types.Board{}, "empty"},
		{"no columns", types.Board{{}}, "empty"},
		{"ragged", types.Board{{nil, nil}, {nil}}, "row 2"},
		{"invalid entity", types.Board{{{types.Entity{Kind: 7}}}}, "invalid entity"},
		{"too wide", state.Empty(MaxSide+1, 1), "at most 256 cells per side"},
		{"too tall", state.Empty(1, MaxSide+1), "is 1x257"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.board)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			assertContains(t, ve.Errors, tt.want)
			if !strings.Contains(ve.Error(), tt.want) {
				t.Errorf("Error() = %q, missing %q", ve.Error(), tt.want)
			}
		})
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}
