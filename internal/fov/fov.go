package fov

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/logging"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Map holds the set of tiles visible from the last computed viewpoint.
type Map struct {
	visible mapset.Set[world.Point]
	origin  world.Point
	log     logrus.FieldLogger
}

// NewMap creates an empty visibility map. log may be nil.
func NewMap(log logrus.FieldLogger) *Map {
	if log == nil {
		log = logging.Discard()
	}
	return &Map{
		visible: mapset.New[world.Point](),
		log:     log.WithField("component", "fov"),
	}
}

// Recompute replaces the visible set with the tiles seen from origin within
// radius and marks every one of them explored on grid. A radius <= 0 means
// unlimited. lightWalls controls whether opaque tiles bordering the lit area
// are themselves visible.
func (m *Map) Recompute(ctx context.Context, grid *world.Grid, origin world.Point, radius int, lightWalls bool, algo Algorithm) {
	_, span := telemetry.Tracer("fov").Start(ctx, "fov.recompute")
	defer span.End()

	if radius <= 0 {
		radius = max(grid.Width(), grid.Height())
	}

	m.visible = mapset.New[world.Point]()
	m.origin = origin
	m.visible.Put(origin)

	switch algo {
	case Shadowcast:
		for _, o := range octants {
			m.castLight(grid, origin.X, origin.Y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3], lightWalls)
		}
	default:
		m.castRays(grid, origin, radius, lightWalls)
	}

	m.visible.Each(func(p world.Point) {
		grid.Explore(p.X, p.Y)
	})

	span.SetAttributes(
		attribute.String("fov.algorithm", algo.String()),
		attribute.Int("fov.radius", radius),
		attribute.Int("fov.visible_tiles", m.Count()),
	)
	m.log.WithFields(logrus.Fields{
		"origin_x":      origin.X,
		"origin_y":      origin.Y,
		"algorithm":     algo.String(),
		"visible_tiles": m.Count(),
	}).Debug("FOV recomputed.")
}

// IsVisible reports whether (x, y) was visible at the last Recompute.
func (m *Map) IsVisible(x, y int) bool {
	return m.visible.Has(world.Point{X: x, Y: y})
}

// Origin returns the viewpoint of the last Recompute.
func (m *Map) Origin() world.Point {
	return m.origin
}

// Count returns the number of visible tiles.
func (m *Map) Count() int {
	return m.visible.Size()
}

// castRays walks a Bresenham line from origin to every cell on the square
// perimeter of the radius, stopping at the first opaque tile.
func (m *Map) castRays(grid *world.Grid, origin world.Point, radius int, lightWalls bool) {
	radiusSq := radius * radius
	x0, y0 := origin.X-radius, origin.Y-radius
	x1, y1 := origin.X+radius, origin.Y+radius

	for x := x0; x <= x1; x++ {
		m.castRay(grid, origin, x, y0, radiusSq, lightWalls)
		m.castRay(grid, origin, x, y1, radiusSq, lightWalls)
	}
	for y := y0 + 1; y < y1; y++ {
		m.castRay(grid, origin, x0, y, radiusSq, lightWalls)
		m.castRay(grid, origin, x1, y, radiusSq, lightWalls)
	}
}

func (m *Map) castRay(grid *world.Grid, origin world.Point, tx, ty, radiusSq int, lightWalls bool) {
	bresenham(origin.X, origin.Y, tx, ty, func(x, y int) bool {
		if x == origin.X && y == origin.Y {
			return true
		}
		if !grid.InBounds(x, y) {
			return false
		}
		dx, dy := x-origin.X, y-origin.Y
		if dx*dx+dy*dy > radiusSq {
			return false
		}
		if grid.BlocksSight(x, y) {
			if lightWalls {
				m.visible.Put(world.Point{X: x, Y: y})
			}
			return false
		}
		m.visible.Put(world.Point{X: x, Y: y})
		return true
	})
}

// bresenham visits the cells of the line from (x0, y0) to (x1, y1) in order
// until visit returns false.
func bresenham(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if !visit(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
