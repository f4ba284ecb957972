package world

import (
	"fmt"
	"strings"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Point is an integer map coordinate.
type Point struct {
	X, Y int
}

// Grid is a fixed-size 2D array of tiles addressed by (x, y).
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid of the given size filled with walls.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall()
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index panics on out-of-range coordinates; callers own bounds validity.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the tile at (x, y).
func (g *Grid) Get(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

// Set replaces the tile at (x, y).
func (g *Grid) Set(x, y int, t Tile) {
	g.tiles[g.index(x, y)] = t
}

// Explore marks the tile at (x, y) as explored.
func (g *Grid) Explore(x, y int) {
	g.tiles[g.index(x, y)].Explored = true
}

// IsBlocked reports whether the terrain at (x, y) blocks movement.
func (g *Grid) IsBlocked(x, y int) bool {
	return !g.Get(x, y).IsPassable()
}

// BlocksSight reports whether the terrain at (x, y) blocks field of view.
func (g *Grid) BlocksSight(x, y int) bool {
	return g.Get(x, y).BlocksSight
}

// String renders the grid as rows of '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.Get(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
