package engine

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/config"
	"github.com/lixenwraith/hitbox/render"
)

// GameContext holds the per-session state the frame loop hands to the game
type GameContext struct {
	Config config.Config

	Screen tcell.Screen
	Width  int
	Height int

	// Registry is cleared at the start of every frame
	Registry *collision.Registry
	Canvas   *render.Canvas

	frame uint64
	log   *slog.Logger
}

// NewGameContext creates a context bound to screen
func NewGameContext(screen tcell.Screen, cfg config.Config) *GameContext {
	log := slog.Default().With("area", "engine")
	reg := collision.NewRegistry(collision.WithLogger(log.With("area", "registry")))

	width, height := screen.Size()
	return &GameContext{
		Config:   cfg,
		Screen:   screen,
		Width:    width,
		Height:   height,
		Registry: reg,
		Canvas:   render.NewCanvas(screen, reg),
		log:      log,
	}
}

// Frame returns the number of completed frames
func (g *GameContext) Frame() uint64 {
	return g.frame
}

// HandleResize refreshes cached screen dimensions
func (g *GameContext) HandleResize() {
	g.Screen.Sync()
	g.Width, g.Height = g.Screen.Size()
	g.log.Debug("resize", "width", g.Width, "height", g.Height)
}
