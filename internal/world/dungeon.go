package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

// ErrInvalidRange is returned when a random range cannot be drawn from.
var ErrInvalidRange = errors.New("invalid random range")

const (
	// Reference generation parameters
	DefaultMaxRooms    = 25
	DefaultRoomMinSize = 5
	DefaultRoomMaxSize = 11
)

// Params controls dungeon generation.
type Params struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts; failed attempts are not retried
	RoomMinSize int
	RoomMaxSize int // Clamped so rooms keep a 1-tile margin inside the grid
}

// DefaultParams returns the reference 80x45 layout parameters.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// RoomFunc is called once for every accepted room, right after it and its
// tunnel are carved. index is the room's position in acceptance order.
type RoomFunc func(grid *Grid, index int, room Rect)

// generator holds transient state for one Generate call.
type generator struct {
	params Params
	grid   *Grid
	rng    *rand.Rand
	rooms  []Rect
	onRoom RoomFunc
}

// Generate carves non-overlapping rooms connected by L-shaped tunnels into a
// fresh wall-filled grid. It returns the grid and the center of the first
// accepted room. onRoom may be nil.
func Generate(ctx context.Context, rng *rand.Rand, params Params, onRoom RoomFunc) (*Grid, Point, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	g := &generator{
		params: params,
		grid:   NewGrid(params.Width, params.Height),
		rng:    rng,
		onRoom: onRoom,
	}

	start, err := g.placeRooms()
	if err != nil {
		span.RecordError(err)
		return nil, Point{}, err
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", params.Width),
		attribute.Int("dungeon.height", params.Height),
		attribute.Int("dungeon.room_count", len(g.rooms)),
		attribute.Int("dungeon.start_x", start.X),
		attribute.Int("dungeon.start_y", start.Y),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g.grid, start, nil
}

// placeRooms runs MaxRooms placement attempts.
func (g *generator) placeRooms() (Point, error) {
	var start Point

	maxW := min(g.params.RoomMaxSize, g.params.Width-2)
	maxH := min(g.params.RoomMaxSize, g.params.Height-2)

	for i := 0; i < g.params.MaxRooms; i++ {
		w, err := randRange(g.rng, g.params.RoomMinSize, maxW)
		if err != nil {
			return Point{}, fmt.Errorf("room width: %w", err)
		}
		h, err := randRange(g.rng, g.params.RoomMinSize, maxH)
		if err != nil {
			return Point{}, fmt.Errorf("room height: %w", err)
		}

		x, err := randRange(g.rng, 1, g.params.Width-w-1)
		if err != nil {
			return Point{}, fmt.Errorf("room x: %w", err)
		}
		y, err := randRange(g.rng, 1, g.params.Height-h-1)
		if err != nil {
			return Point{}, fmt.Errorf("room y: %w", err)
		}

		room := NewRect(x, y, w, h)
		if g.overlapsAny(room) {
			continue
		}

		CarveRoom(g.grid, room)

		newX, newY := room.Center()
		if len(g.rooms) == 0 {
			start = Point{X: newX, Y: newY}
		} else {
			prevX, prevY := g.rooms[len(g.rooms)-1].Center()
			g.carveCorridor(prevX, prevY, newX, newY)
		}

		if g.onRoom != nil {
			g.onRoom(g.grid, len(g.rooms), room)
		}
		g.rooms = append(g.rooms, room)
	}

	return start, nil
}

// overlapsAny reports whether room intersects a previously accepted room.
func (g *generator) overlapsAny(room Rect) bool {
	for _, other := range g.rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveCorridor joins two points with an L-shaped tunnel, choosing the leg
// order with a coin toss.
func (g *generator) carveCorridor(x1, y1, x2, y2 int) {
	if g.rng.Intn(2) == 0 {
		CarveHorizontalTunnel(g.grid, x1, x2, y1)
		CarveVerticalTunnel(g.grid, y1, y2, x2)
	} else {
		CarveVerticalTunnel(g.grid, y1, y2, x1)
		CarveHorizontalTunnel(g.grid, x1, x2, y2)
	}
}

// CarveRoom sets the open interior (X1+1..X2-1, Y1+1..Y2-1) of room to empty.
func CarveRoom(grid *Grid, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			grid.Set(x, y, Empty())
		}
	}
}

// CarveHorizontalTunnel carves row y from x1 to x2 inclusive.
func CarveHorizontalTunnel(grid *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, Empty())
	}
}

// CarveVerticalTunnel carves column x from y1 to y2 inclusive.
func CarveVerticalTunnel(grid *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, Empty())
	}
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	return lo + rng.Intn(hi-lo+1), nil
}
