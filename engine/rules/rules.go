// Package rules holds the rule store derived from board text and the
// sentence scanner that rebuilds it.
package rules

import (
	"fmt"
	"sort"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// Subject is the left-hand side of a rule: an object class, or the abstract
// Text class shared by every word token.
type Subject struct {
	Text   bool
	Object types.Object
}

// TextSubject is the shared subject for every noun, adjective and verb token.
var TextSubject = Subject{Text: true}

// ObjectSubject returns the subject for an object class.
func ObjectSubject(o types.Object) Subject {
	return Subject{Object: o}
}

// SubjectOf normalises an entity to the subject its rules are stored under.
// Text tokens fall back to TextSubject; objects use their own identity.
func SubjectOf(e types.Entity) Subject {
	if e.IsText() {
		return TextSubject
	}
	o, _ := e.AsObject()
	return ObjectSubject(o)
}

func (s Subject) String() string {
	if s.Text {
		return "TEXT"
	}
	return s.Object.String()
}

// Rule is one (subject, verb, complement) sentence.
type Rule struct {
	Subject    Subject
	Verb       types.Verb
	Complement types.Entity
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s", r.Subject, r.Verb, r.Complement)
}

// Set is a set of complements. Treat sets returned by Store as read-only.
type Set map[types.Entity]struct{}

// Has reports membership.
func (s Set) Has(e types.Entity) bool {
	_, ok := s[e]
	return ok
}

// Sorted returns the members ordered by kind then value.
func (s Set) Sorted() []types.Entity {
	out := make([]types.Entity, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return entityLess(out[i], out[j]) })
	return out
}

type key struct {
	subject Subject
	verb    types.Verb
}

// ImplicitRules are present before any board scan.
var ImplicitRules = []Rule{
	{Subject: TextSubject, Verb: types.VerbIs, Complement: types.AdjPush.Entity()},
}

// Store maps (subject, verb) to a set of complements. It is a derived view
// of the board and is rebuilt from scratch, never patched.
type Store struct {
	rules map[key]Set
}

// NewStore returns a store seeded with the implicit rules.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset clears every rule and re-seeds the implicit ones.
func (s *Store) Reset() {
	s.rules = make(map[key]Set)
	for _, r := range ImplicitRules {
		s.Add(r.Subject, r.Verb, r.Complement)
	}
}

// Add inserts complement into the set for (subject, verb). Idempotent.
func (s *Store) Add(subject Subject, verb types.Verb, complement types.Entity) {
	if s.rules == nil {
		s.rules = make(map[key]Set)
	}
	k := key{subject: subject, verb: verb}
	set, ok := s.rules[k]
	if !ok {
		set = Set{}
		s.rules[k] = set
	}
	set[complement] = struct{}{}
}

// RuleFor returns the complements for the entity's subject and verb.
// Returns nil, false if no rule exists.
func (s *Store) RuleFor(e types.Entity, verb types.Verb) (Set, bool) {
	set, ok := s.rules[key{subject: SubjectOf(e), verb: verb}]
	if !ok || len(set) == 0 {
		return nil, false
	}
	return set, true
}

// Holds reports whether "e verb complement" is currently a rule.
func (s *Store) Holds(e types.Entity, verb types.Verb, complement types.Entity) bool {
	set, ok := s.RuleFor(e, verb)
	if !ok {
		return false
	}
	return set.Has(complement)
}

// Is is shorthand for Holds(e, IS, adjective).
func (s *Store) Is(e types.Entity, adj types.Adjective) bool {
	return s.Holds(e, types.VerbIs, adj.Entity())
}

// AnyIs reports whether any entity in the cell is the adjective.
func (s *Store) AnyIs(cell types.Cell, adj types.Adjective) bool {
	for _, e := range cell {
		if s.Is(e, adj) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct rules, implicit ones included.
func (s *Store) Len() int {
	n := 0
	for _, set := range s.rules {
		n += len(set)
	}
	return n
}

// Rules lists every rule ordered by subject, verb, then complement.
func (s *Store) Rules() []Rule {
	var out []Rule
	for k, set := range s.rules {
		for c := range set {
			out = append(out, Rule{Subject: k.subject, Verb: k.verb, Complement: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Subject != b.Subject {
			return subjectLess(a.Subject, b.Subject)
		}
		if a.Verb != b.Verb {
			return a.Verb < b.Verb
		}
		return entityLess(a.Complement, b.Complement)
	})
	return out
}

func subjectLess(a, b Subject) bool {
	if a.Text != b.Text {
		return !a.Text
	}
	return a.Object < b.Object
}

func entityLess(a, b types.Entity) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Value < b.Value
}
