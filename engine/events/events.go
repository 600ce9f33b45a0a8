// Package events records what happened during a turn so front ends can
// show a trace. Recording is optional: a nil *Recorder drops everything.
package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// Event types.
const (
	Moved       = "moved"
	Blocked     = "blocked"
	Destroyed   = "destroyed"
	Spawned     = "spawned"
	Transformed = "transformed"
	Won         = "won"
	RulesParsed = "rules_parsed"
	Undone      = "undone"
	Restarted   = "restarted"
)

// Recorder accumulates events in emission order.
type Recorder struct {
	events []types.Event
}

// Emit appends an event. Safe to call on a nil Recorder.
func (r *Recorder) Emit(typ string, data map[string]any) {
	if r == nil {
		return
	}
	r.events = append(r.events, types.Event{Type: typ, Data: data})
}

// Events returns everything recorded so far.
func (r *Recorder) Events() []types.Event {
	if r == nil {
		return nil
	}
	return r.events
}

// Count returns how many events of typ were recorded.
func (r *Recorder) Count(typ string) int {
	n := 0
	for _, e := range r.Events() {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// Move records an entity moving one cell.
func (r *Recorder) Move(e types.Entity, from, to types.Position) {
	r.Emit(Moved, map[string]any{"entity": e, "from": from, "to": to})
}

// Block records a push-chain that could not move.
func (r *Recorder) Block(e types.Entity, at types.Position, dir types.Direction) {
	r.Emit(Blocked, map[string]any{"entity": e, "at": at, "direction": dir})
}

// Destroy records an entity being destroyed.
func (r *Recorder) Destroy(e types.Entity, at types.Position, cause string) {
	r.Emit(Destroyed, map[string]any{"entity": e, "at": at, "cause": cause})
}

// Spawn records an entity appearing from a HAS rule.
func (r *Recorder) Spawn(e types.Entity, at types.Position) {
	r.Emit(Spawned, map[string]any{"entity": e, "at": at})
}

// Transform records an entity turning into others.
func (r *Recorder) Transform(e types.Entity, at types.Position, into []types.Entity) {
	r.Emit(Transformed, map[string]any{"entity": e, "at": at, "into": into})
}

// Win records a YOU entity touching a WIN entity.
func (r *Recorder) Win(e types.Entity, at types.Position) {
	r.Emit(Won, map[string]any{"entity": e, "at": at})
}

// Describe renders an event as its type followed by sorted key=value pairs.
func Describe(e types.Event) string {
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := append(make([]string, 0, len(keys)+1), e.Type)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Data[k]))
	}
	return strings.Join(parts, " ")
}
