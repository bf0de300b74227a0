// Package game provides the main game loop: it turns terminal input into
// commands, applies them to the world and narrates the results.
package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/warquest/internal/gamedata"
	"github.com/samdwyer/warquest/internal/telemetry"
	"github.com/samdwyer/warquest/internal/ui"
	"github.com/samdwyer/warquest/internal/world"
)

// Announcements shown in the system log when a session starts.
var announcements = []string{
	"Connected to WarQuest!",
	"Daily login bonus: 5,000,000,000 WarBucks.",
}

// Settings describes the world a game is played in.
type Settings struct {
	Rows     int
	Cols     int
	MapText  string
	Chrome   string
	Registry *gamedata.EntityRegistry
	Logger   *zap.Logger
}

// Game holds the entire state of one play session.
type Game struct {
	screen  *ui.Screen
	world   *world.World
	ui      *ui.UI
	chrome  string
	logger  *zap.Logger
	session uuid.UUID
	running bool
}

// New creates a game drawing to screen. It fails when the screen cannot
// fit the world and the message area below it.
func New(screen *ui.Screen, s Settings) (*Game, error) {
	width, height := screen.Size()
	if width < s.Cols || height < s.Rows+uiRows {
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, s.Cols, s.Rows+uiRows)
	}

	layout, err := newLayout(s.Cols, s.Rows)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	tiles := world.NewTileMap(s.Rows, s.Cols, s.MapText)
	player, roster, err := s.Registry.Spawn(tiles)
	if err != nil {
		return nil, fmt.Errorf("spawn entities: %w", err)
	}

	session := uuid.New()
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Game{
		screen:  screen,
		world:   world.New(tiles, player, roster),
		ui:      layout,
		chrome:  s.Chrome,
		logger:  logger.With(zap.String("session", session.String())),
		session: session,
		running: true,
	}, nil
}

// Session returns the id of this play session.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// World returns the game world.
func (g *Game) World() *world.World {
	return g.world
}

// UI returns the message area.
func (g *Game) UI() *ui.UI {
	return g.ui
}

// Running reports whether the game is still accepting commands.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main game loop until the player quits or input ends.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.Start()
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.String()),
		attribute.Int("world.rows", g.world.Tiles().Rows()),
		attribute.Int("world.cols", g.world.Tiles().Cols()),
		attribute.Int("world.entities", len(g.world.Entities())),
	)
	initSpan.End()

	for g.running {
		if err := ctx.Err(); err != nil {
			g.logger.Info("session cancelled", zap.Error(err))
			return nil
		}

		g.Render()

		// Blocks until the next event.
		g.handleInput(ctx)
	}

	g.logger.Info("session ended")
	return nil
}

// Start draws the chrome and greets the player. It is called once before
// the first command.
func (g *Game) Start() {
	g.ui.RenderChrome(g.screen, g.chrome)
	g.ui.Redraw(g.screen)
	for _, msg := range announcements {
		g.narrate(RegionSystem, msg)
	}
	g.narrate(RegionSystem, "Session "+g.session.String())
	g.logger.Info("session started",
		zap.Int("entities", len(g.world.Entities())),
		zap.Stringer("player", g.world.Player().Position),
	)
}

// Render repaints the world and flushes the screen.
func (g *Game) Render() {
	g.world.Render(g.screen)
	g.screen.Show()
}

// Handle applies a single command.
func (g *Game) Handle(ctx context.Context, cmd Command) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.command")
	defer span.End()
	span.SetAttributes(attribute.String("command", cmd.Kind.String()))

	switch cmd.Kind {
	case CommandMove:
		moved := g.world.MovePlayer(cmd.Direction)
		pos := g.world.Player().Position
		span.SetAttributes(
			attribute.String("move.direction", cmd.Direction.String()),
			attribute.Bool("move.accepted", moved),
			attribute.Int("player.col", pos.Col),
			attribute.Int("player.row", pos.Row),
		)
		g.logger.Debug("move",
			zap.Stringer("direction", cmd.Direction),
			zap.Bool("accepted", moved),
			zap.Stringer("player", pos),
		)
		if moved {
			g.narrate(RegionCombat, fmt.Sprintf("You head %s.", cmd.Direction))
		} else {
			g.narrate(RegionCombat, fmt.Sprintf("You can't go %s.", cmd.Direction))
		}

	case CommandHail:
		target := g.world.ClosestEntity()
		if target.Kind == world.KindPlayer {
			g.narrate(RegionCombat, "There is nobody to hail.")
			return
		}
		span.SetAttributes(attribute.String("hail.target", target.Name))
		g.logger.Debug("hail", zap.String("target", target.Name), zap.Stringer("at", target.Position))
		g.narrate(RegionCombat, fmt.Sprintf("%s: %s", target.Name, target.Hail()))

	case CommandQuit:
		g.running = false
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		// The screen was finalized underneath us; there is no more input.
		g.running = false
	case *tcell.EventKey:
		g.Handle(ctx, keyToCommand(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) narrate(region, text string) {
	if err := g.ui.Print(g.screen, region, text); err != nil {
		g.logger.Warn("narration dropped", zap.String("region", region), zap.Error(err))
	}
}
