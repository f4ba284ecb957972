package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster species loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name (e.g., "orc")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "O")
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	HP          int    `json:"hp"`          // Starting and maximum hit points
	Defense     int    `json:"defense"`     // Subtracted from incoming power
	Power       int    `json:"power"`       // Attack strength
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	return glyphRune(m.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	return colorOr(m.Color, tcell.ColorWhite)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

// glyphRune returns the first rune of a glyph string, or '?' if empty.
func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}

// colorOr parses a hex color, falling back on error.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
