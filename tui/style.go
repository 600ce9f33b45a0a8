package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rschwa6308/Momo-Is-You/types"
)

// tileWidth fits the longest word token plus a stack marker.
const tileWidth = 7

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleBoard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTile = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center)

	styleText = styleTile.
			Bold(true).
			Background(lipgloss.Color("235"))

	styleEmpty = styleTile.
			Foreground(lipgloss.Color("238"))

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// objectColors gives each physical object, and the noun naming it, a colour.
var objectColors = map[types.Object]lipgloss.Color{
	types.ObjMomo:  lipgloss.Color("213"),
	types.ObjWall:  lipgloss.Color("245"),
	types.ObjRock:  lipgloss.Color("137"),
	types.ObjFlag:  lipgloss.Color("220"),
	types.ObjWater: lipgloss.Color("39"),
}

var adjectiveColors = map[types.Adjective]lipgloss.Color{
	types.AdjYou:    lipgloss.Color("213"),
	types.AdjWin:    lipgloss.Color("220"),
	types.AdjStop:   lipgloss.Color("65"),
	types.AdjPush:   lipgloss.Color("137"),
	types.AdjDefeat: lipgloss.Color("160"),
	types.AdjSink:   lipgloss.Color("39"),
}

// objectGlyphs are the map symbols for physical objects.
var objectGlyphs = map[types.Object]string{
	types.ObjMomo:  "@",
	types.ObjWall:  "#",
	types.ObjRock:  "o",
	types.ObjFlag:  "F",
	types.ObjWater: "~",
}

// entityStyle picks the style for the entity drawn on top of a cell.
func entityStyle(e types.Entity) lipgloss.Style {
	if o, ok := e.AsObject(); ok {
		return styleTile.Foreground(objectColors[o])
	}
	if n, ok := e.AsNoun(); ok {
		return styleText.Foreground(objectColors[n.Object()])
	}
	if a, ok := e.AsAdjective(); ok {
		return styleText.Foreground(adjectiveColors[a])
	}
	return styleText.Foreground(lipgloss.Color("255"))
}

// entityLabel is the text drawn for an entity: a glyph for objects and the
// word itself for text.
func entityLabel(e types.Entity) string {
	if o, ok := e.AsObject(); ok {
		if g, ok := objectGlyphs[o]; ok {
			return g
		}
	}
	return e.String()
}
