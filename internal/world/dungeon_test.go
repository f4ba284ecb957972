package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func generateRooms(t *testing.T, seed int64, params Params) (*Grid, Point, []Rect) {
	t.Helper()
	var rooms []Rect
	grid, start, err := Generate(context.Background(), rand.New(rand.NewSource(seed)), params,
		func(_ *Grid, index int, room Rect) {
			if index != len(rooms) {
				t.Fatalf("room index %d, want %d", index, len(rooms))
			}
			rooms = append(rooms, room)
		})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return grid, start, rooms
}

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)

	d1, start1, rooms1 := generateRooms(t, seed, DefaultParams())
	d2, start2, rooms2 := generateRooms(t, seed, DefaultParams())

	if start1 != start2 {
		t.Fatalf("Start mismatch: %v != %v", start1, start2)
	}

	if len(rooms1) != len(rooms2) {
		t.Fatalf("Room count mismatch: %d != %d", len(rooms1), len(rooms2))
	}

	for i := range rooms1 {
		if rooms1[i] != rooms2[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, rooms1[i], rooms2[i])
		}
	}

	// Verify tiles are identical
	for y := 0; y < d1.Height(); y++ {
		for x := 0; x < d1.Width(); x++ {
			if d1.Get(x, y) != d2.Get(x, y) {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, d1.Get(x, y), d2.Get(x, y))
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	d1, _, _ := generateRooms(t, 12345, DefaultParams())
	d2, _, _ := generateRooms(t, 54321, DefaultParams())

	if d1.String() == d2.String() {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestDungeonRoomsNeverIntersect(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		_, _, rooms := generateRooms(t, seed, DefaultParams())

		if len(rooms) == 0 || len(rooms) > DefaultMaxRooms {
			t.Fatalf("seed %d: room count %d outside (0, %d]", seed, len(rooms), DefaultMaxRooms)
		}

		for i := range rooms {
			for j := range rooms {
				if i != j && rooms[i].Intersects(rooms[j]) {
					t.Fatalf("seed %d: rooms %d and %d intersect: %+v %+v", seed, i, j, rooms[i], rooms[j])
				}
			}
		}
	}
}

func TestDungeonRoomsKeepMargin(t *testing.T) {
	params := DefaultParams()
	for seed := int64(1); seed <= 20; seed++ {
		grid, _, rooms := generateRooms(t, seed, params)

		for _, room := range rooms {
			if room.X1 < 1 || room.Y1 < 1 || room.X2 > params.Width-1 || room.Y2 > params.Height-1 {
				t.Errorf("seed %d: room %+v violates the 1-tile margin", seed, room)
			}
		}

		// The outer frame is never carved.
		for x := 0; x < grid.Width(); x++ {
			if !grid.IsBlocked(x, 0) || !grid.IsBlocked(x, grid.Height()-1) {
				t.Fatalf("seed %d: border carved at column %d", seed, x)
			}
		}
		for y := 0; y < grid.Height(); y++ {
			if !grid.IsBlocked(0, y) || !grid.IsBlocked(grid.Width()-1, y) {
				t.Fatalf("seed %d: border carved at row %d", seed, y)
			}
		}
	}
}

func TestDungeonStartIsFirstRoomCenter(t *testing.T) {
	grid, start, rooms := generateRooms(t, 7, DefaultParams())

	cx, cy := rooms[0].Center()
	if start.X != cx || start.Y != cy {
		t.Errorf("start = %v, want center of first room (%d,%d)", start, cx, cy)
	}
	if grid.IsBlocked(start.X, start.Y) {
		t.Error("start position should be carved")
	}
}

func TestDungeonRoomsAreConnected(t *testing.T) {
	grid, start, rooms := generateRooms(t, 99, DefaultParams())

	// Flood fill from the start; every room center must be reachable.
	seen := make(map[Point]bool)
	queue := []Point{start}
	seen[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !grid.InBounds(n.X, n.Y) || seen[n] || grid.IsBlocked(n.X, n.Y) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	for i, room := range rooms {
		x, y := room.Center()
		if !seen[Point{X: x, Y: y}] {
			t.Errorf("room %d center (%d,%d) unreachable from start", i, x, y)
		}
	}
}

func TestDungeonClampsOversizedRooms(t *testing.T) {
	params := Params{Width: 12, Height: 10, MaxRooms: 5, RoomMinSize: 3, RoomMaxSize: 100}
	_, _, rooms := generateRooms(t, 3, params)

	if len(rooms) == 0 {
		t.Fatal("expected at least one room")
	}
	for _, room := range rooms {
		if room.X2 > params.Width-1 || room.Y2 > params.Height-1 {
			t.Errorf("room %+v does not fit %dx%d", room, params.Width, params.Height)
		}
	}
}

func TestDungeonInvalidRange(t *testing.T) {
	params := Params{Width: 6, Height: 6, MaxRooms: 1, RoomMinSize: 8, RoomMaxSize: 10}
	_, _, err := Generate(context.Background(), rand.New(rand.NewSource(1)), params, nil)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Generate() error = %v, want ErrInvalidRange", err)
	}
}

func TestDungeonZeroRooms(t *testing.T) {
	params := DefaultParams()
	params.MaxRooms = 0
	grid, start, rooms := generateRooms(t, 1, params)

	if len(rooms) != 0 {
		t.Errorf("rooms = %d, want 0", len(rooms))
	}
	if start != (Point{}) {
		t.Errorf("start = %v, want zero value", start)
	}
	if grid.String() != NewGrid(params.Width, params.Height).String() {
		t.Error("grid should stay all walls")
	}
}

func TestCarveRoomScenario(t *testing.T) {
	grid := NewGrid(10, 10)
	CarveRoom(grid, Rect{X1: 1, Y1: 1, X2: 4, Y2: 4})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x <= 3 && y >= 2 && y <= 3
			if grid.IsBlocked(x, y) == inside {
				t.Errorf("tile (%d,%d) blocked=%v, want %v", x, y, grid.IsBlocked(x, y), !inside)
			}
		}
	}
}

func TestCarveTunnelsInclusive(t *testing.T) {
	tests := []struct {
		name   string
		carve  func(g *Grid)
		points []Point
	}{
		{"horizontal forward", func(g *Grid) { CarveHorizontalTunnel(g, 2, 5, 3) }, []Point{{2, 3}, {3, 3}, {4, 3}, {5, 3}}},
		{"horizontal reverse", func(g *Grid) { CarveHorizontalTunnel(g, 5, 2, 3) }, []Point{{2, 3}, {3, 3}, {4, 3}, {5, 3}}},
		{"vertical forward", func(g *Grid) { CarveVerticalTunnel(g, 1, 3, 6) }, []Point{{6, 1}, {6, 2}, {6, 3}}},
		{"vertical reverse", func(g *Grid) { CarveVerticalTunnel(g, 3, 1, 6) }, []Point{{6, 1}, {6, 2}, {6, 3}}},
		{"single tile", func(g *Grid) { CarveHorizontalTunnel(g, 4, 4, 4) }, []Point{{4, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(8, 8)
			tt.carve(grid)

			carved := 0
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					if !grid.IsBlocked(x, y) {
						carved++
					}
				}
			}
			if carved != len(tt.points) {
				t.Errorf("carved %d tiles, want %d", carved, len(tt.points))
			}
			for _, p := range tt.points {
				if grid.IsBlocked(p.X, p.Y) {
					t.Errorf("tile %v should be carved", p)
				}
			}
		})
	}
}
