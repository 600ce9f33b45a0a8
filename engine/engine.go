// Package engine provides the Level state machine that wires together rule
// parsing, motion, reactive rules and undo history into a single turn.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rschwa6308/Momo-Is-You/engine/events"
	"github.com/rschwa6308/Momo-Is-You/engine/motion"
	"github.com/rschwa6308/Momo-Is-You/engine/react"
	"github.com/rschwa6308/Momo-Is-You/engine/rules"
	"github.com/rschwa6308/Momo-Is-You/engine/state"
	"github.com/rschwa6308/Momo-Is-You/types"
)

// Level holds the current board, the rules derived from it and the undo
// history. It is not safe for concurrent use.
type Level struct {
	board    types.Board
	store    *rules.Store
	patterns []rules.Pattern
	history  []types.Board
	won      bool
	turn     int
	log      *slog.Logger
}

// Option configures a Level.
type Option func(*Level)

// WithLogger sets the logger used for per-phase debug output.
func WithLogger(l *slog.Logger) Option {
	return func(lv *Level) {
		if l != nil {
			lv.log = l
		}
	}
}

// WithPatterns replaces the sentence patterns the parser accepts.
func WithPatterns(ps ...rules.Pattern) Option {
	return func(lv *Level) {
		lv.patterns = ps
	}
}

// New validates the board, takes a deep copy of it and parses the initial
// rules. The caller's board is never touched again.
func New(b types.Board, opts ...Option) (*Level, error) {
	if err := state.Validate(b); err != nil {
		return nil, fmt.Errorf("new level: %w", err)
	}
	l := &Level{
		board: state.Clone(b),
		store: rules.NewStore(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.parse(nil)
	l.log.Debug("level ready",
		"width", l.Width(), "height", l.Height(), "rules", l.store.Len())
	return l, nil
}

// ProcessInput runs one turn for key and reports what happened. Unknown
// keys are ignored. Rules are reparsed again after reactions that changed
// the board, so text sunk or destroyed this turn already stops counting.
func (l *Level) ProcessInput(key types.Key) types.Result {
	rec := &events.Recorder{}
	l.turn++
	l.log.Debug("process_input", "turn", l.turn, "key", key.String())

	var changed bool
	switch key {
	case types.KeyUndo:
		changed = l.undo(rec)
	case types.KeyRestart:
		changed = l.restart(rec)
	case types.KeyUp, types.KeyDown, types.KeyLeft, types.KeyRight, types.KeyWait:
		changed = l.step(key, rec)
	default:
		l.log.Debug("ignored key", "key", int(key))
	}

	return types.Result{
		Changed: changed,
		Won:     l.won,
		Events:  rec.Events(),
	}
}

// step runs a movement or wait turn.
func (l *Level) step(key types.Key, rec *events.Recorder) bool {
	before := state.Clone(l.board)
	changed := false

	if dir, ok := key.Direction(); ok {
		changed = motion.Resolve(l.board, l.store, dir, rec)
		l.log.Debug("motion", "direction", dir.String(), "changed", changed,
			"moved", rec.Count(events.Moved), "blocked", rec.Count(events.Blocked))
	}

	if l.proactive(rec) {
		changed = true
	}

	if changed {
		l.parse(rec)
	}

	out := react.Resolve(l.board, l.store, rec)
	l.log.Debug("react", "changed", out.Changed, "won", out.Won,
		"destroyed", rec.Count(events.Destroyed), "transformed", rec.Count(events.Transformed))
	if out.Changed {
		changed = true
		// Destruction and transformation may have moved text around.
		l.parse(rec)
	}
	if out.Won {
		l.won = true
	}

	if changed {
		l.history = append(l.history, before)
	}
	return changed
}

// proactive is the hook for rules that act on their own each turn, such as
// MOVE. No such verb exists yet so it never changes the board.
func (l *Level) proactive(*events.Recorder) bool {
	return false
}

func (l *Level) undo(rec *events.Recorder) bool {
	if len(l.history) == 0 {
		return false
	}
	last := len(l.history) - 1
	l.board = l.history[last]
	l.history = l.history[:last]
	l.parse(rec)
	rec.Emit(events.Undone, map[string]any{"depth": len(l.history)})
	l.log.Debug("undo", "depth", len(l.history))
	return true
}

func (l *Level) restart(rec *events.Recorder) bool {
	if len(l.history) == 0 {
		return false
	}
	l.board = l.history[0]
	l.history = nil
	l.parse(rec)
	rec.Emit(events.Restarted, nil)
	l.log.Debug("restart")
	return true
}

// parse rebuilds the rule store from the current board.
func (l *Level) parse(rec *events.Recorder) {
	found := rules.Parse(l.board, l.store, l.patterns)
	rec.Emit(events.RulesParsed, map[string]any{"count": len(found)})
	if l.log.Enabled(context.Background(), slog.LevelDebug) {
		for _, r := range found {
			l.log.Debug("parse_rules", "rule", r.String())
		}
	}
}

// Board returns a deep copy of the current board.
func (l *Level) Board() types.Board {
	return state.Clone(l.board)
}

// Width returns the number of columns.
func (l *Level) Width() int { return state.Width(l.board) }

// Height returns the number of rows.
func (l *Level) Height() int { return state.Height(l.board) }

// HasWon reports whether a YOU entity has ever touched a WIN entity. The
// flag is never cleared, not even by Undo or Restart.
func (l *Level) HasWon() bool { return l.won }

// Rules lists the rules currently in force, implicit ones included.
func (l *Level) Rules() []rules.Rule { return l.store.Rules() }

// Holds reports whether "e verb complement" is currently a rule.
func (l *Level) Holds(e types.Entity, verb types.Verb, complement types.Entity) bool {
	return l.store.Holds(e, verb, complement)
}

// HistoryLen returns how many turns can be undone.
func (l *Level) HistoryLen() int { return len(l.history) }

// Turn returns how many inputs have been processed.
func (l *Level) Turn() int { return l.turn }
