// Package types defines the shared data structures for the Momo engine:
// the closed entity taxonomy, boards, input keys and turn results.
package types

// Kind tags which token family an Entity belongs to.
type Kind uint8

const (
	KindObject Kind = iota + 1
	KindNoun
	KindAdjective
	KindVerb
)

// Object is the identity of a physical game piece.
type Object uint8

const (
	ObjMomo Object = iota + 1
	ObjWall
	ObjRock
	ObjFlag
	ObjWater
)

// Noun is a text token naming an Object class.
type Noun uint8

const (
	NounMomo Noun = iota + 1
	NounWall
	NounRock
	NounFlag
	NounWater
)

// Adjective is a property text token.
type Adjective uint8

const (
	AdjYou Adjective = iota + 1
	AdjWin
	AdjStop
	AdjPush
	AdjDefeat
	AdjSink
)

// Verb is a copula text token.
type Verb uint8

const (
	VerbIs Verb = iota + 1
	VerbHas
)

// Entity is a token that can occupy a board cell. Value holds the Object,
// Noun, Adjective or Verb selected by Kind. The zero Entity is invalid.
type Entity struct {
	Kind  Kind
	Value uint8
}

// Cell is the ordered stack of entities on one board square.
// Insertion order is draw order only.
type Cell []Entity

// Board is a rectangular grid addressed Board[y][x], (0,0) top-left.
type Board [][]Cell

// Position is an x,y board coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is one of the four orthogonal movement directions.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Key is an abstract input event fed to the level state machine.
type Key uint8

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeyWait
	KeyUndo
	KeyRestart
)

// Event records one observable thing that happened during a turn.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single ProcessInput call.
type Result struct {
	Changed bool
	Won     bool
	Events  []Event
}
