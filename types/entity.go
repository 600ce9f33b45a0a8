package types

import (
	"fmt"
	"strings"
)

// Entity constructors.

func (o Object) Entity() Entity    { return Entity{Kind: KindObject, Value: uint8(o)} }
func (n Noun) Entity() Entity      { return Entity{Kind: KindNoun, Value: uint8(n)} }
func (a Adjective) Entity() Entity { return Entity{Kind: KindAdjective, Value: uint8(a)} }
func (v Verb) Entity() Entity      { return Entity{Kind: KindVerb, Value: uint8(v)} }

var objectNames = [...]string{"", "MOMO", "WALL", "ROCK", "FLAG", "WATER"}
var adjectiveNames = [...]string{"", "YOU", "WIN", "STOP", "PUSH", "DEFEAT", "SINK"}
var verbNames = [...]string{"", "IS", "HAS"}

// Objects lists every Object identity in declaration order.
func Objects() []Object {
	return []Object{ObjMomo, ObjWall, ObjRock, ObjFlag, ObjWater}
}

// Nouns lists every Noun in declaration order.
func Nouns() []Noun {
	return []Noun{NounMomo, NounWall, NounRock, NounFlag, NounWater}
}

// Adjectives lists every Adjective in declaration order.
func Adjectives() []Adjective {
	return []Adjective{AdjYou, AdjWin, AdjStop, AdjPush, AdjDefeat, AdjSink}
}

// Verbs lists every Verb in declaration order.
func Verbs() []Verb {
	return []Verb{VerbIs, VerbHas}
}

func (o Object) Valid() bool    { return o >= ObjMomo && o <= ObjWater }
func (n Noun) Valid() bool      { return n >= NounMomo && n <= NounWater }
func (a Adjective) Valid() bool { return a >= AdjYou && a <= AdjSink }
func (v Verb) Valid() bool      { return v >= VerbIs && v <= VerbHas }

func (o Object) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Object(%d)", uint8(o))
	}
	return objectNames[o]
}

func (n Noun) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Noun(%d)", uint8(n))
	}
	return objectNames[n]
}

func (a Adjective) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Adjective(%d)", uint8(a))
	}
	return adjectiveNames[a]
}

func (v Verb) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Verb(%d)", uint8(v))
	}
	return verbNames[v]
}

// Object returns the Object class a noun names.
// Nouns and objects share declaration order, so the mapping is positional.
func (n Noun) Object() Object {
	if !n.Valid() {
		return 0
	}
	return Object(n)
}

// Noun returns the noun naming this object class.
func (o Object) Noun() Noun {
	if !o.Valid() {
		return 0
	}
	return Noun(o)
}

// Valid reports whether the entity's kind and value are inside the closed set.
func (e Entity) Valid() bool {
	switch e.Kind {
	case KindObject:
		return Object(e.Value).Valid()
	case KindNoun:
		return Noun(e.Value).Valid()
	case KindAdjective:
		return Adjective(e.Value).Valid()
	case KindVerb:
		return Verb(e.Value).Valid()
	}
	return false
}

// IsText reports whether the entity is a word token (noun, adjective or verb).
func (e Entity) IsText() bool {
	return e.Kind == KindNoun || e.Kind == KindAdjective || e.Kind == KindVerb
}

// IsComplement reports whether the entity may fill the third slot of a sentence.
func (e Entity) IsComplement() bool {
	return e.Kind == KindNoun || e.Kind == KindAdjective
}

// AsObject returns the object identity if the entity is an Object.
func (e Entity) AsObject() (Object, bool) {
	return Object(e.Value), e.Kind == KindObject
}

// AsNoun returns the noun if the entity is a Noun.
func (e Entity) AsNoun() (Noun, bool) {
	return Noun(e.Value), e.Kind == KindNoun
}

// AsAdjective returns the adjective if the entity is an Adjective.
func (e Entity) AsAdjective() (Adjective, bool) {
	return Adjective(e.Value), e.Kind == KindAdjective
}

// AsVerb returns the verb if the entity is a Verb.
func (e Entity) AsVerb() (Verb, bool) {
	return Verb(e.Value), e.Kind == KindVerb
}

// String renders objects in lower case and text tokens in upper case,
// e.g. "momo" for the piece and "MOMO" for the word.
func (e Entity) String() string {
	switch e.Kind {
	case KindObject:
		o := Object(e.Value)
		if !o.Valid() {
			return o.String()
		}
		return strings.ToLower(o.String())
	case KindNoun:
		return Noun(e.Value).String()
	case KindAdjective:
		return Adjective(e.Value).String()
	case KindVerb:
		return Verb(e.Value).String()
	}
	return fmt.Sprintf("Entity(%d,%d)", e.Kind, e.Value)
}

// Delta returns the unit displacement for a direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Add returns the position displaced by d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction returns the movement direction for directional keys.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyWait:
		return "wait"
	case KeyUndo:
		return "undo"
	case KeyRestart:
		return "restart"
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}
