package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/torchcrawl/internal/combat"
	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/logging"
	"github.com/samdwyer/torchcrawl/internal/spatial"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Game holds the entire game state. It owns the grid and the entity arena
// for the lifetime of a level and is not safe for concurrent use.
type Game struct {
	cfg       Config
	algorithm fov.Algorithm
	seed      int64
	rng       *rand.Rand
	log       logrus.FieldLogger
	tracer    trace.Tracer

	species  *gamedata.MonsterRegistry
	player   *gamedata.PlayerDef
	resolver *combat.Resolver

	grid       *world.Grid
	arena      *entity.Arena
	visibility *fov.Map
	messages   *MessageLog
	mode       DisplayMode
	turn       int

	// Dirty check for visibility: the player position of the last recompute.
	fovOrigin  world.Point
	fovValid   bool
	recomputes int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) { g.log = log }
}

// WithTracer sets the tracer used for turn spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Game) { g.tracer = tracer }
}

// WithRand sets the random source, overriding Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithSpecies sets the monster table. The default is the embedded one.
func WithSpecies(species *gamedata.MonsterRegistry) Option {
	return func(g *Game) { g.species = species }
}

// New validates cfg, loads game data and builds the first level.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algorithm, err := fov.ParseAlgorithm(cfg.FOVAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g := &Game{
		cfg:       cfg,
		algorithm: algorithm,
		messages:  NewMessageLog(MessageLogSize),
		mode:      DisplayNormal,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.log == nil {
		g.log = logging.Discard()
	}
	g.log = g.log.WithField("component", "game")
	if g.tracer == nil {
		g.tracer = telemetry.Tracer("game")
	}
	if g.rng == nil {
		g.seed = cfg.Seed
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	if g.species == nil {
		if g.species, err = gamedata.LoadMonsterRegistry(); err != nil {
			return nil, fmt.Errorf("load monsters: %w", err)
		}
	}
	if g.player, err = gamedata.LoadPlayer(); err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	g.resolver = combat.NewResolver(combat.Corpse{
		Glyph: palette.CorpseRune(),
		Color: palette.CorpseTCellColor(),
	}, g.log)

	if err := g.NewLevel(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// NewLevel discards the current level and builds a fresh one from new
// random draws. The player starts at the center of the first room.
func (g *Game) NewLevel(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "level.new")
	defer span.End()

	arena := entity.NewArena(entity.NewPlayer(g.player, 0, 0))
	monsters := 0
	grid, start, err := world.Generate(ctx, g.rng, g.cfg.Params(), func(grid *world.Grid, index int, room world.Rect) {
		if index == 0 {
			arena.Player().SetPos(room.Center())
		}
		monsters += g.placeMonsters(grid, arena, room)
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("generate level: %w", err)
	}
	arena.Player().SetPos(start.X, start.Y)

	g.grid = grid
	g.arena = arena
	g.visibility = fov.NewMap(g.log)
	g.fovValid = false
	g.refreshVisibility(ctx)

	span.SetAttributes(
		attribute.Int("level.monsters", monsters),
		attribute.Int("level.start_x", start.X),
		attribute.Int("level.start_y", start.Y),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     g.seed,
		"monsters": monsters,
		"start_x":  start.X,
		"start_y":  start.Y,
	}).Info("Level generated.")
	return nil
}

// placeMonsters rolls up to MaxRoomMonsters monsters into the room's
// interior. A roll landing on a blocked tile places nothing.
func (g *Game) placeMonsters(grid *world.Grid, arena *entity.Arena, room world.Rect) int {
	placed := 0
	count := g.rng.Intn(g.cfg.MaxRoomMonsters + 1)
	for range count {
		x := room.X1 + 1 + g.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + g.rng.Intn(room.Y2-room.Y1-1)
		if spatial.IsBlocked(grid, arena.All(), x, y) {
			continue
		}
		def := g.species.SpawnRandom(g.rng)
		if def == nil {
			continue
		}
		arena.Add(entity.NewMonster(def, x, y))
		placed++
	}
	return placed
}

// refreshVisibility recomputes the field of view only when the player has
// moved since the last recompute.
func (g *Game) refreshVisibility(ctx context.Context) {
	p := g.arena.Player()
	origin := world.Point{X: p.X, Y: p.Y}
	if g.fovValid && origin == g.fovOrigin {
		return
	}
	g.visibility.Recompute(ctx, g.grid, origin, g.cfg.TorchRadius, g.cfg.LightWalls, g.algorithm)
	g.fovOrigin = origin
	g.fovValid = true
	g.recomputes++
}

// Step resolves one player command and, when it consumed a turn while the
// player is alive, runs every AI entity once.
func (g *Game) Step(ctx context.Context, cmd Command) PlayerAction {
	playerCtx, span := g.tracer.Start(ctx, "turn.player",
		trace.WithAttributes(attribute.String("turn.command", cmd.String())))
	action, damage := g.resolvePlayerAction(cmd)
	span.SetAttributes(
		attribute.String("turn.action", action.String()),
		attribute.Int("turn.damage", damage),
	)
	span.End()

	if action != TookTurn {
		return action
	}
	g.turn++
	g.refreshVisibility(playerCtx)

	if g.arena.Player().Alive {
		g.runAI(ctx)
	}
	return action
}

// resolvePlayerAction applies cmd without running any AI. It also reports
// the damage the player dealt.
func (g *Game) resolvePlayerAction(cmd Command) (PlayerAction, int) {
	switch cmd {
	case CmdQuit:
		return Exit, 0
	case CmdToggleDisplay:
		g.mode = g.mode.Toggle()
		return DidntTakeTurn, 0
	}

	dx, dy, ok := cmd.Delta()
	if !ok || !g.arena.Player().Alive {
		return DidntTakeTurn, 0
	}
	return TookTurn, g.playerMoveOrAttack(dx, dy)
}

// playerMoveOrAttack attacks a fighter standing on the destination, or
// moves there. A blocked move is still a consumed turn.
func (g *Game) playerMoveOrAttack(dx, dy int) int {
	p := g.arena.Player()
	x, y := p.X+dx, p.Y+dy

	if id, ok := g.arena.FighterAt(x, y); ok && id != entity.PlayerID {
		player, target := g.arena.Pair(entity.PlayerID, id)
		result := g.resolver.Attack(player, target)
		g.record(result)
		return result.Damage
	}

	if !spatial.MoveBy(g.grid, g.arena, entity.PlayerID, dx, dy) {
		g.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("Player bumped into something.")
	}
	return 0
}

// aiBehaviors maps an AI tag to its turn. The result reports an attack.
var aiBehaviors = map[entity.AIKind]func(g *Game, id int) bool{
	entity.AIChase: (*Game).chase,
}

// runAI gives every entity with an AI one turn, in id order.
func (g *Game) runAI(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "turn.ai")
	defer span.End()

	actors, attacks := 0, 0
	for id := range g.arena.Len() {
		e := g.arena.Get(id)
		if e.AI == nil {
			continue
		}
		behavior, ok := aiBehaviors[e.AI.Kind]
		if !ok {
			g.log.WithField("ai", e.AI.Kind.String()).Warn("No behavior for AI kind.")
			continue
		}
		actors++
		if behavior(g, id) {
			attacks++
		}
	}

	span.SetAttributes(
		attribute.Int("turn.ai_actors", actors),
		attribute.Int("turn.ai_attacks", attacks),
	)
}

// chase closes in on the player and attacks once adjacent. A monster that
// is not in the player's view does nothing.
func (g *Game) chase(id int) bool {
	monster := g.arena.Get(id)
	if !g.visibility.IsVisible(monster.X, monster.Y) {
		return false
	}

	player := g.arena.Player()
	if monster.DistanceTo(player.X, player.Y) >= 2.0 {
		spatial.MoveTowards(g.grid, g.arena, id, player.X, player.Y)
		return false
	}
	if !player.CanFight() {
		return false
	}

	attacker, target := g.arena.Pair(id, entity.PlayerID)
	g.record(g.resolver.Attack(attacker, target))
	return true
}

// record appends an attack's outcome lines to the message log.
func (g *Game) record(result combat.Result) {
	for _, msg := range result.Messages {
		g.messages.Add(msg)
	}
}

// Run drives the turn loop until a quit command, an input or render error,
// or ctx cancellation.
func (g *Game) Run(ctx context.Context, renderer Renderer, input InputSource) error {
	g.log.WithField("seed", g.seed).Info("Game started.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderer.Render(g.View()); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		cmd, err := input.NextCommand(ctx)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if g.Step(ctx, cmd) == Exit {
			g.log.WithField("turn", g.turn).Info("Game ended.")
			return nil
		}
	}
}

// View returns the snapshot a Renderer draws.
func (g *Game) View() View {
	return View{
		Grid:       g.grid,
		Visibility: g.visibility,
		Entities:   g.arena.All(),
		Player:     *g.arena.Player(),
		Messages:   g.messages.Lines(),
		Mode:       g.mode,
		Turn:       g.turn,
	}
}

// Grid returns the current level's tiles.
func (g *Game) Grid() *world.Grid { return g.grid }

// Arena returns the current level's entities.
func (g *Game) Arena() *entity.Arena { return g.arena }

// Visibility returns the current field of view.
func (g *Game) Visibility() *fov.Map { return g.visibility }

// Mode returns the display mode.
func (g *Game) Mode() DisplayMode { return g.mode }

// Turn returns how many turns the player has taken.
func (g *Game) Turn() int { return g.turn }

// Seed returns the seed the random source was built from, or 0 when one
// was supplied with WithRand.
func (g *Game) Seed() int64 { return g.seed }

// PlayerDead reports whether the player has died.
func (g *Game) PlayerDead() bool { return !g.arena.Player().Alive }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages.Lines() }
