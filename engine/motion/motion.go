// Package motion moves every YOU entity one step, pushing chains of PUSH
// entities ahead of it and stopping at STOP entities and the board edge.
package motion

import (
	"github.com/rschwa6308/Momo-Is-You/engine/events"
	"github.com/rschwa6308/Momo-Is-You/engine/rules"
	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// Mover is an entity and the cell it started the turn in.
type Mover struct {
	Entity types.Entity
	At     types.Position
}

// step is one queued single-cell move.
type step struct {
	entity   types.Entity
	from, to types.Position
}

// Yous returns every YOU entity in row-major order, stacking order within
// a cell.
func Yous(b types.Board, s *rules.Store) []Mover {
	var out []Mover
	state.Each(b, func(p types.Position, cell types.Cell) {
		for _, e := range cell {
			if s.Is(e, types.AdjYou) {
				out = append(out, Mover{Entity: e, At: p})
			}
		}
	})
	return out
}

// Resolve moves every YOU entity in dir, mutating b. Each mover's chain is
// scanned and committed before the next mover is considered, so later
// chains see the board as earlier chains left it. Returns true iff at
// least one chain moved.
func Resolve(b types.Board, s *rules.Store, dir types.Direction, rec *events.Recorder) bool {
	yous := Yous(b, s)
	if len(yous) == 0 {
		return false
	}

	changed := false
	for _, you := range yous {
		// An earlier chain may have pushed this mover out of its cell.
		if !state.Contains(state.At(b, you.At), you.Entity) {
			continue
		}
		chain, ok := scan(b, s, you, dir)
		if !ok {
			rec.Block(you.Entity, you.At, dir)
			continue
		}
		for _, st := range chain {
			if state.Move(b, st.entity, st.from, st.to) {
				rec.Move(st.entity, st.from, st.to)
			}
		}
		changed = true
	}
	return changed
}

// scan walks from the mover's target cell along dir and returns the moves
// of the whole push-chain, mover first. ok is false if the chain runs into
// the board edge or a STOP entity before reaching a cell without PUSH.
func scan(b types.Board, s *rules.Store, you Mover, dir types.Direction) (chain []step, ok bool) {
	target := you.At.Add(dir)
	chain = []step{{entity: you.Entity, from: you.At, to: target}}

	for p := target; ; p = p.Add(dir) {
		if !walkable(b, s, p) {
			return nil, false
		}
		pushed := false
		for _, e := range state.At(b, p) {
			if s.Is(e, types.AdjPush) {
				chain = append(chain, step{entity: e, from: p, to: p.Add(dir)})
				pushed = true
			}
		}
		if !pushed {
			return chain, true
		}
	}
}

// walkable reports whether p is on the board and holds no STOP entity.
func walkable(b types.Board, s *rules.Store, p types.Position) bool {
	if !state.InBounds(b, p) {
		return false
	}
	return !s.AnyIs(state.At(b, p), types.AdjStop)
}
