// Package spatial answers occupancy questions and moves entities over the
// tile grid.
package spatial

import (
	"math"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// IsBlocked reports whether (x, y) is blocked by terrain or by any blocking
// entity standing on it.
func IsBlocked(grid *world.Grid, entities []entity.Entity, x, y int) bool {
	if grid.IsBlocked(x, y) {
		return true
	}
	for i := range entities {
		if entities[i].Blocks && entities[i].X == x && entities[i].Y == y {
			return true
		}
	}
	return false
}

// MoveBy moves entity id by (dx, dy) unless the destination is blocked.
// A blocked move is a silent no-op; the result reports whether it moved.
func MoveBy(grid *world.Grid, arena *entity.Arena, id, dx, dy int) bool {
	e := arena.Get(id)
	x, y := e.X+dx, e.Y+dy
	if IsBlocked(grid, arena.All(), x, y) {
		return false
	}
	e.SetPos(x, y)
	return true
}

// MoveTowards steps entity id one tile toward (targetX, targetY). Being on
// the target already is a no-op.
func MoveTowards(grid *world.Grid, arena *entity.Arena, id, targetX, targetY int) bool {
	dx, dy := StepTowards(arena.Get(id), targetX, targetY)
	if dx == 0 && dy == 0 {
		return false
	}
	return MoveBy(grid, arena, id, dx, dy)
}

// StepTowards returns the unit step (round(dx/d), round(dy/d)) from e toward
// the target, or (0, 0) when e is already there.
func StepTowards(e *entity.Entity, targetX, targetY int) (int, int) {
	dx := float64(targetX - e.X)
	dy := float64(targetY - e.Y)
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return 0, 0
	}
	return int(math.Round(dx / distance)), int(math.Round(dy / distance))
}
