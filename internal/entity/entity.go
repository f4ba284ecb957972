// Package entity provides the player, monsters and corpses sharing a level.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// DeathKind selects the death transformation applied when a fighter's hp
// drops to zero.
type DeathKind int

const (
	DeathPlayer DeathKind = iota
	DeathMonster
)

// String returns a human-readable death kind.
func (k DeathKind) String() string {
	switch k {
	case DeathPlayer:
		return "player"
	case DeathMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// AIKind selects an automatic behavior.
type AIKind int

const (
	// AIChase walks toward the visible player and attacks when adjacent.
	AIChase AIKind = iota
)

// String returns a human-readable behavior name.
func (k AIKind) String() string {
	switch k {
	case AIChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Fighter is the combat capability.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathKind
}

// AI marks an entity that acts automatically every turn.
type AI struct {
	Kind AIKind
}

// Entity is anything with a position on the map: the player, a monster or a
// corpse. Capabilities are optional and nil when absent.
type Entity struct {
	X, Y    int
	Glyph   rune
	Color   tcell.Color
	Name    string
	Blocks  bool // Other blocking entities cannot enter this tile
	Alive   bool
	Fighter *Fighter
	AI      *AI
}

// New creates an entity without capabilities. It starts not alive.
func New(x, y int, glyph rune, name string, color tcell.Color, blocks bool) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
	}
}

// NewPlayer creates the player entity from its definition.
func NewPlayer(def *gamedata.PlayerDef, x, y int) Entity {
	e := New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), true)
	e.Alive = true
	e.Fighter = &Fighter{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
		OnDeath: DeathPlayer,
	}
	return e
}

// NewMonster creates a living, chasing monster from a species definition.
func NewMonster(def *gamedata.MonsterDef, x, y int) Entity {
	e := New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), true)
	e.Alive = true
	e.Fighter = &Fighter{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
		OnDeath: DeathMonster,
	}
	e.AI = &AI{Kind: AIChase}
	return e
}

// Pos returns the entity's current x, y coordinates.
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity to (x, y).
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// DistanceTo returns the Euclidean distance to (x, y).
func (e *Entity) DistanceTo(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CanFight reports whether the entity can take part in combat.
func (e *Entity) CanFight() bool {
	return e.Fighter != nil && e.Alive
}
