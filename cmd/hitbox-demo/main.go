package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitbox/audio"
	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/config"
	"github.com/lixenwraith/hitbox/core"
	"github.com/lixenwraith/hitbox/engine"
	"github.com/lixenwraith/hitbox/logging"
	"github.com/lixenwraith/hitbox/scene"
)

var (
	sceneFlag = flag.String("scene", "", "Scene file (default: $HITBOX_SCENE or scenes/arena.yaml)")
	debugFlag = flag.Bool("debug", false, "Write debug log to the log directory")
	muteFlag  = flag.Bool("mute", false, "Disable collision cues")
)

// Game moves a player glyph over a scene and reports what it touches
type Game struct {
	scene  *scene.Scene
	sound  *audio.SoundManager
	px, py int

	hit     collision.Collision
	lastHit collision.Collision
	log     *slog.Logger
}

// NewGame places the player at the first probe of the scene, or the top-left interior cell
func NewGame(s *scene.Scene, sound *audio.SoundManager) *Game {
	g := &Game{
		scene:   s,
		sound:   sound,
		px:      2,
		py:      2,
		hit:     collision.NewCollision(),
		lastHit: collision.NewCollision(),
		log:     slog.Default().With("area", "demo"),
	}
	if len(s.Probes) > 0 {
		g.px, g.py = s.Probes[0].Box.Pos.Cell()
	}
	return g
}

// Update draws the scene then the player; the player's collision comes from drawing it last
func (g *Game) Update(ctx *engine.GameContext) {
	for _, hb := range g.scene.Boxes {
		ctx.Canvas.Box(hb)
	}

	g.hit = ctx.Canvas.Char('@', g.px, g.py, collision.LightYellow)

	// Cue only on a change of what is being touched
	if g.hit.Any() && g.hit.String() != g.lastHit.String() {
		g.sound.PlayCollision(g.hit)
		g.log.Debug("hit", "frame", ctx.Frame(), "x", g.px, "y", g.py, "tags", g.hit.String())
	}
	g.lastHit = g.hit

	ctx.Canvas.HUD(ctx.Height-1, ctx.Frame(), g.hit)
}

// HandleEvent moves the player with arrow keys or hjkl; Esc, q or Ctrl-C quits
func (g *Game) HandleEvent(ctx *engine.GameContext, ev tcell.Event) error {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}

	dx, dy := 0, 0
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.ErrQuit
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyUp:
		dy = -1
	case tcell.KeyDown:
		dy = 1
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return engine.ErrQuit
		case 'h':
			dx = -1
		case 'l':
			dx = 1
		case 'k':
			dy = -1
		case 'j':
			dy = 1
		}
	}

	g.px = min(max(g.px+dx, 0), ctx.Width-1)
	g.py = min(max(g.py+dy, 0), ctx.Height-2) // last row is the HUD
	return nil
}

func main() {
	flag.Parse()

	cfg := config.Load()
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}
	path := cfg.ScenePath
	if *sceneFlag != "" {
		path = *sceneFlag
	}
	if path == "" {
		path = "scenes/arena.yaml"
	}

	logFile, err := logging.Setup(logging.Params{Debug: cfg.Debug, Dir: cfg.LogDir, Process: "hitbox-demo"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	s, err := scene.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer func() { core.HandleCrash(recover()) }()

	sound := audio.NewSoundManager(audio.FromConfig(cfg))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the demo runs without sound
		slog.Warn("audio initialization failed", "error", err)
	}
	defer sound.Cleanup()

	ctx := engine.NewGameContext(screen, cfg)
	slog.Info("starting", "scene", path, "boxes", len(s.Boxes), "tick", cfg.TickInterval)

	if err := engine.NewLoop(ctx, NewGame(s, sound)).Run(context.Background()); err != nil {
		slog.Error("loop stopped", "error", err)
	}
}
