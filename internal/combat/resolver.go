// Package combat resolves melee attacks and death transitions.
package combat

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/logging"
)

// Corpse is the appearance every dead entity takes.
type Corpse struct {
	Glyph rune
	Color tcell.Color
}

// Result contains the outcome of one attack.
type Result struct {
	Attacker string
	Target   string
	Damage   int  // hp removed from the target; 0 for a no-effect attack
	Killed   bool // The target died from this attack
	Messages []string
}

// Resolver applies the power-minus-defense rule and dispatches death
// transformations by the fighter's death tag.
type Resolver struct {
	corpse Corpse
	log    logrus.FieldLogger
}

// NewResolver creates a resolver. log may be nil.
func NewResolver(corpse Corpse, log logrus.FieldLogger) *Resolver {
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{
		corpse: corpse,
		log:    log.WithField("component", "combat"),
	}
}

// Attack resolves attacker hitting target. Both must be distinct entities
// with a Fighter; otherwise nothing happens.
func (r *Resolver) Attack(attacker, target *entity.Entity) Result {
	result := Result{Attacker: attacker.Name, Target: target.Name}

	if attacker.Fighter == nil || target.Fighter == nil {
		r.log.WithFields(logrus.Fields{
			"attacker": attacker.Name,
			"target":   target.Name,
		}).Warn("Attack ignored: missing fighter.")
		return result
	}

	hpBefore := target.Fighter.HP
	defense := target.Fighter.Defense
	damage := attacker.Fighter.Power - defense

	if damage > 0 {
		result.Damage = damage
		result.Messages = append(result.Messages,
			fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, target.Name, damage))
		if msg, died := r.TakeDamage(target, damage); died {
			result.Killed = true
			result.Messages = append(result.Messages, msg)
		}
	} else {
		result.Messages = append(result.Messages,
			fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, target.Name))
	}

	r.log.WithFields(logrus.Fields{
		"attacker":  result.Attacker,
		"target":    result.Target,
		"power":     attacker.Fighter.Power,
		"defense":   defense,
		"damage":    result.Damage,
		"hp_before": hpBefore,
		"hp_after":  hpBefore - result.Damage,
		"killed":    result.Killed,
	}).Info("Attack resolved.")

	return result
}

// TakeDamage subtracts a positive amount from the target's hp. The first
// time hp drops to zero or below on a living entity, its death
// transformation runs and TakeDamage returns the death message and true.
func (r *Resolver) TakeDamage(target *entity.Entity, damage int) (string, bool) {
	if target.Fighter == nil || damage <= 0 {
		return "", false
	}
	target.Fighter.HP -= damage
	if target.Fighter.HP > 0 || !target.Alive {
		return "", false
	}
	return r.Die(target), true
}

// Die applies the death transformation selected by the fighter's tag.
func (r *Resolver) Die(e *entity.Entity) string {
	kind := entity.DeathMonster
	if e.Fighter != nil {
		kind = e.Fighter.OnDeath
	}
	transform, ok := deathTransforms[kind]
	if !ok {
		transform = monsterDeath
	}

	msg := transform(e, r.corpse)
	r.log.WithFields(logrus.Fields{
		"entity":     e.Name,
		"death_kind": kind.String(),
	}).Info("Entity died.")
	return msg
}

// deathTransforms maps each death tag to its transformation.
var deathTransforms = map[entity.DeathKind]func(*entity.Entity, Corpse) string{
	entity.DeathPlayer:  playerDeath,
	entity.DeathMonster: monsterDeath,
}

// playerDeath keeps the player's fighter so its stats stay inspectable.
func playerDeath(e *entity.Entity, corpse Corpse) string {
	e.Alive = false
	e.Glyph = corpse.Glyph
	e.Color = corpse.Color
	return "You died!"
}

// monsterDeath turns a monster into an inert, walkable corpse.
func monsterDeath(e *entity.Entity, corpse Corpse) string {
	msg := fmt.Sprintf("%s is dead!", e.Name)
	e.Alive = false
	e.Glyph = corpse.Glyph
	e.Color = corpse.Color
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
	return msg
}
