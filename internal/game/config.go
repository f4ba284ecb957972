package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// DefaultMaxRoomMonsters is the most monsters rolled per room.
	DefaultMaxRoomMonsters = 3
	// DefaultTorchRadius is the player's sight radius.
	DefaultTorchRadius = 10
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width           int
	Height          int
	MaxRooms        int
	RoomMinSize     int
	RoomMaxSize     int
	MaxRoomMonsters int

	TorchRadius  int
	LightWalls   bool
	FOVAlgorithm string // "basic" or "shadowcast"
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:           world.DefaultWidth,
		Height:          world.DefaultHeight,
		MaxRooms:        world.DefaultMaxRooms,
		RoomMinSize:     world.DefaultRoomMinSize,
		RoomMaxSize:     world.DefaultRoomMaxSize,
		MaxRoomMonsters: DefaultMaxRoomMonsters,
		TorchRadius:     DefaultTorchRadius,
		LightWalls:      true,
		FOVAlgorithm:    fov.Basic.String(),
	}
}

// Validate reports configuration that would make generation or play
// impossible. Such errors are fatal at startup.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.RoomMinSize < 3:
		return fmt.Errorf("%w: room min size %d is below 3", ErrInvalidConfig, c.RoomMinSize)
	case c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("%w: room max size %d is below min size %d", ErrInvalidConfig, c.RoomMaxSize, c.RoomMinSize)
	case c.RoomMinSize > min(c.Width, c.Height)-2:
		return fmt.Errorf("%w: room min size %d does not fit a %dx%d map", ErrInvalidConfig, c.RoomMinSize, c.Width, c.Height)
	case c.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d is below 1", ErrInvalidConfig, c.MaxRooms)
	case c.MaxRoomMonsters < 0:
		return fmt.Errorf("%w: max room monsters %d is negative", ErrInvalidConfig, c.MaxRoomMonsters)
	case c.TorchRadius < 1:
		return fmt.Errorf("%w: torch radius %d is below 1", ErrInvalidConfig, c.TorchRadius)
	}
	if _, err := fov.ParseAlgorithm(c.FOVAlgorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params returns the dungeon generation parameters.
func (c Config) Params() world.Params {
	return world.Params{
		Width:       c.Width,
		Height:      c.Height,
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}

// ApplyEnv overrides fields from TORCHCRAWL_* environment variables.
func (c Config) ApplyEnv() (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"TORCHCRAWL_MAX_ROOMS", &c.MaxRooms},
		{"TORCHCRAWL_ROOM_MIN_SIZE", &c.RoomMinSize},
		{"TORCHCRAWL_ROOM_MAX_SIZE", &c.RoomMaxSize},
		{"TORCHCRAWL_MAX_ROOM_MONSTERS", &c.MaxRoomMonsters},
		{"TORCHCRAWL_TORCH_RADIUS", &c.TorchRadius},
	}
	for _, f := range ints {
		v, ok := os.LookupEnv(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = n
	}

	if v, ok := os.LookupEnv("TORCHCRAWL_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: TORCHCRAWL_SEED=%q: %w", ErrInvalidConfig, v, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("TORCHCRAWL_LIGHT_WALLS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%w: TORCHCRAWL_LIGHT_WALLS=%q: %w", ErrInvalidConfig, v, err)
		}
		c.LightWalls = b
	}
	if v, ok := os.LookupEnv("TORCHCRAWL_FOV"); ok {
		c.FOVAlgorithm = v
	}
	return c, nil
}
