package entity

import "fmt"

// PlayerID is the arena index reserved for the player.
const PlayerID = 0

// Arena owns every entity of a level, addressed by integer id. The player is
// always inserted first. Pointers returned by Get and Pair stay valid until
// the next Add.
type Arena struct {
	entities []Entity
}

// NewArena creates an arena holding player at PlayerID.
func NewArena(player Entity) *Arena {
	return &Arena{entities: []Entity{player}}
}

// Add appends an entity and returns its id.
func (a *Arena) Add(e Entity) int {
	a.entities = append(a.entities, e)
	return len(a.entities) - 1
}

// Len returns the number of entities.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Get returns the entity with the given id. Out-of-range ids panic.
func (a *Arena) Get(id int) *Entity {
	return &a.entities[id]
}

// Player returns the player entity.
func (a *Arena) Player() *Entity {
	return &a.entities[PlayerID]
}

// All returns the backing slice in id order. Callers must not append to it.
func (a *Arena) All() []Entity {
	return a.entities
}

// Pair returns independent pointers to two distinct entities by splitting
// the arena at the larger index. Equal ids panic.
func (a *Arena) Pair(i, j int) (*Entity, *Entity) {
	if i == j {
		panic(fmt.Sprintf("entity: Pair(%d, %d) requires distinct ids", i, j))
	}
	if i < j {
		head, tail := a.entities[:j], a.entities[j:]
		return &head[i], &tail[0]
	}
	head, tail := a.entities[:i], a.entities[i:]
	return &tail[0], &head[j]
}

// FighterAt returns the id of a living fighter standing on (x, y).
func (a *Arena) FighterAt(x, y int) (int, bool) {
	for id := range a.entities {
		e := &a.entities[id]
		if e.CanFight() && e.X == x && e.Y == y {
			return id, true
		}
	}
	return 0, false
}
