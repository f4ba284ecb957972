package game

//go:generate mockgen -destination=mock/mock_interfaces.go -package=gamemock github.com/samdwyer/torchcrawl/internal/game Renderer,InputSource

import (
	"context"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// View is the read-only snapshot handed to a Renderer once per turn.
type View struct {
	Grid       *world.Grid
	Visibility *fov.Map
	Entities   []entity.Entity // id order; the player is Entities[entity.PlayerID]
	Player     entity.Entity
	Messages   []string // oldest first
	Mode       DisplayMode
	Turn       int
}

// Renderer draws a View.
type Renderer interface {
	Render(view View) error
}

// InputSource yields one command per call, blocking until one is available.
type InputSource interface {
	NextCommand(ctx context.Context) (Command, error)
}
