package rules

import (
	"strings"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// Class is a token class a pattern slot may require.
type Class uint8

const (
	ClassNoun Class = iota + 1
	ClassAdjective
	ClassVerb
	ClassComplement
	ClassText
)

// Contains reports whether e is an instance of the class.
func (c Class) Contains(e types.Entity) bool {
	switch c {
	case ClassNoun:
		return e.Kind == types.KindNoun
	case ClassAdjective:
		return e.Kind == types.KindAdjective
	case ClassVerb:
		return e.Kind == types.KindVerb
	case ClassComplement:
		return e.IsComplement()
	case ClassText:
		return e.IsText()
	}
	return false
}

func (c Class) String() string {
	switch c {
	case ClassNoun:
		return "Noun"
	case ClassAdjective:
		return "Adjective"
	case ClassVerb:
		return "Verb"
	case ClassComplement:
		return "Complement"
	case ClassText:
		return "Text"
	}
	return "?"
}

// Slot is one positional constraint of a pattern: either an exact token
// or any member of a class.
type Slot struct {
	Exact types.Entity
	Class Class
}

// Exact returns a slot that only accepts e.
func Exact(e types.Entity) Slot { return Slot{Exact: e} }

// AnyOf returns a slot that accepts any member of c.
func AnyOf(c Class) Slot { return Slot{Class: c} }

// Accepts reports whether e satisfies the slot.
func (s Slot) Accepts(e types.Entity) bool {
	if s.Class != 0 {
		return s.Class.Contains(e)
	}
	return s.Exact == e
}

func (s Slot) String() string {
	if s.Class != 0 {
		return s.Class.String()
	}
	return s.Exact.String()
}

// Pattern is an accepted sentence shape. The first slot must only accept
// nouns and the second only verbs: matches become (object, verb, complement).
type Pattern []Slot

// Matches reports whether tokens satisfy every slot positionally.
func (p Pattern) Matches(tokens []types.Entity) bool {
	if len(tokens) != len(p) {
		return false
	}
	for i, slot := range p {
		if !slot.Accepts(tokens[i]) {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DefaultPatterns are the sentence shapes the engine recognises:
// "NOUN IS complement" and "NOUN HAS NOUN".
var DefaultPatterns = []Pattern{
	{AnyOf(ClassNoun), Exact(types.VerbIs.Entity()), AnyOf(ClassComplement)},
	{AnyOf(ClassNoun), Exact(types.VerbHas.Entity()), AnyOf(ClassNoun)},
}

// ruleFromTokens converts a matched token tuple into a rule.
func ruleFromTokens(tokens []types.Entity) (Rule, bool) {
	if len(tokens) < 3 {
		return Rule{}, false
	}
	noun, ok := tokens[0].AsNoun()
	if !ok {
		return Rule{}, false
	}
	verb, ok := tokens[1].AsVerb()
	if !ok {
		return Rule{}, false
	}
	return Rule{
		Subject:    ObjectSubject(noun.Object()),
		Verb:       verb,
		Complement: tokens[len(tokens)-1],
	}, true
}
