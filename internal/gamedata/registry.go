package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownMonster is returned by Subset for an id with no definition.
var ErrUnknownMonster = errors.New("unknown monster")

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// SpawnRandom selects a random monster definition using weighted probability.
// With equal weights the choice is uniform.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Unreachable while totalWeight matches the definitions
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Subset returns a registry restricted to the given species, keeping their
// spawn weights. Duplicate ids count once.
func (r *MonsterRegistry) Subset(ids []string) (*MonsterRegistry, error) {
	picked := make([]MonsterDef, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		def := r.GetByID(id)
		if def == nil {
			return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownMonster, id, strings.Join(r.IDs(), ", "))
		}
		seen[id] = true
		picked = append(picked, *def)
	}
	if len(picked) == 0 {
		return nil, errors.New("empty monster subset")
	}
	return NewMonsterRegistry(picked), nil
}

// IDs returns the species ids in table order.
func (r *MonsterRegistry) IDs() []string {
	ids := make([]string, 0, len(r.monsters))
	for _, def := range r.All() {
		ids = append(ids, def.ID)
	}
	return ids
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster species in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
