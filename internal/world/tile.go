// Package world provides the tile grid and dungeon generation.
package world

// Tile is the terrain state of a single map cell.
type Tile struct {
	Blocked     bool // Entities cannot stand here
	BlocksSight bool // Stops field of view
	Explored    bool // Has been seen at least once; never reset within a level
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// Empty returns a passable, transparent tile.
func Empty() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsWall reports whether the tile is drawn as a wall.
func (t Tile) IsWall() bool {
	return t.BlocksSight
}

// Rune returns the tile's debug display character.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}
