package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerDef defines the player's appearance and starting stats.
type PlayerDef struct {
	Name    string `json:"name"`
	Glyph   string `json:"glyph"`
	Color   string `json:"color"`
	HP      int    `json:"hp"`
	Defense int    `json:"defense"`
	Power   int    `json:"power"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	return glyphRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PlayerDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorWhite)
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}
