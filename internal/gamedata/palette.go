package gamedata

import "github.com/gdamore/tcell/v2"

// Palette holds the tile background colors and the corpse appearance.
type Palette struct {
	DarkWall    string `json:"darkWall"`
	LightWall   string `json:"lightWall"`
	DarkGround  string `json:"darkGround"`
	LightGround string `json:"lightGround"`
	CorpseGlyph string `json:"corpseGlyph"`
	CorpseColor string `json:"corpseColor"`
}

// LoadPalette loads colors from the embedded palette.json file.
func LoadPalette() (*Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p := MustLoad[Palette]("palette.json")
	return &p
}

// TileColor picks one of the four background colors.
func (p *Palette) TileColor(visible, wall bool) tcell.Color {
	switch {
	case !visible && wall:
		return colorOr(p.DarkWall, tcell.ColorDarkGray)
	case !visible:
		return colorOr(p.DarkGround, tcell.ColorBlack)
	case wall:
		return colorOr(p.LightWall, tcell.ColorOlive)
	default:
		return colorOr(p.LightGround, tcell.ColorYellow)
	}
}

// CorpseRune returns the glyph drawn for dead entities.
func (p *Palette) CorpseRune() rune {
	return glyphRune(p.CorpseGlyph)
}

// CorpseTCellColor returns the color drawn for dead entities.
func (p *Palette) CorpseTCellColor() tcell.Color {
	return colorOr(p.CorpseColor, tcell.ColorDarkRed)
}
