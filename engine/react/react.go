// Package react applies the rules that fire on contact: DEFEAT, WIN, SINK
// and NOUN IS NOUN transformation. Destruction spawns HAS contents.
package react

import (
	"github.com/rschwa6308/Momo-Is-You/engine/events"
	"github.com/rschwa6308/Momo-Is-You/engine/rules"
	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// Outcome reports what a reactive pass did.
type Outcome struct {
	Changed bool
	Won     bool
}

// Resolve runs one reactive pass over the board, mutating it. Cells are
// visited row-major and entities in stacking order, iterating a snapshot of
// each cell taken before the cell is processed. An entity already removed
// by an earlier reaction in the same cell is skipped.
func Resolve(b types.Board, s *rules.Store, rec *events.Recorder) Outcome {
	var out Outcome
	state.Each(b, func(p types.Position, _ types.Cell) {
		for _, e := range state.Snapshot(state.At(b, p)) {
			if !state.Contains(state.At(b, p), e) {
				continue
			}
			if react(b, s, p, e, rec, &out) {
				out.Changed = true
			}
		}
	})
	return out
}

// react applies every reactive rule to one entity. Returns true iff the
// board changed.
func react(b types.Board, s *rules.Store, p types.Position, e types.Entity, rec *events.Recorder, out *Outcome) bool {
	changed := false

	if s.Is(e, types.AdjYou) {
		if s.AnyIs(state.At(b, p), types.AdjDefeat) {
			Destroy(b, s, p, e, "defeat", rec)
			changed = true
		}
		// Checked even when defeat fired: both look at the live cell.
		if s.AnyIs(state.At(b, p), types.AdjWin) {
			out.Won = true
			rec.Win(e, p)
		}
	}

	if s.Is(e, types.AdjSink) && state.Contains(state.At(b, p), e) && len(state.At(b, p)) > 1 {
		for _, victim := range state.Snapshot(state.At(b, p)) {
			Destroy(b, s, p, victim, "sink", rec)
		}
		changed = true
	}

	if state.Contains(state.At(b, p), e) {
		if into := transformTargets(s, e); len(into) > 0 {
			state.Remove(b, p, e)
			state.Append(b, p, into...)
			rec.Transform(e, p, into)
			changed = true
		}
	}

	return changed
}

// transformTargets returns the objects named by the noun complements of the
// entity's IS rule, in noun order.
func transformTargets(s *rules.Store, e types.Entity) []types.Entity {
	set, ok := s.RuleFor(e, types.VerbIs)
	if !ok {
		return nil
	}
	var into []types.Entity
	for _, c := range set.Sorted() {
		if n, ok := c.AsNoun(); ok {
			into = append(into, n.Object().Entity())
		}
	}
	return into
}

// Destroy removes one occurrence of e from the cell at p, then appends the
// objects named by its HAS rule to the same cell. Returns false if the cell
// did not hold e.
func Destroy(b types.Board, s *rules.Store, p types.Position, e types.Entity, cause string, rec *events.Recorder) bool {
	if !state.Remove(b, p, e) {
		return false
	}
	rec.Destroy(e, p, cause)

	set, ok := s.RuleFor(e, types.VerbHas)
	if !ok {
		return true
	}
	for _, c := range set.Sorted() {
		n, ok := c.AsNoun()
		if !ok {
			continue
		}
		spawn := n.Object().Entity()
		state.Append(b, p, spawn)
		rec.Spawn(spawn, p)
	}
	return true
}
