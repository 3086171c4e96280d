// Package engine runs the fixed-rate frame loop that owns the hit-box registry
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hitbox/core"
)

// ErrQuit is returned by Game.HandleEvent to end the loop cleanly
var ErrQuit = errors.New("quit")

// Game is the host driven by Loop
type Game interface {
	// Update draws the frame; every primitive drawn registers its hit boxes
	Update(ctx *GameContext)
	// HandleEvent reacts to input between frames
	HandleEvent(ctx *GameContext, ev tcell.Event) error
}

// Loop serialises input handling and frame steps onto one goroutine
// The registry is not locked, so nothing else may touch it while Run is active
type Loop struct {
	ctx  *GameContext
	game Game
}

// NewLoop creates a loop for game
func NewLoop(ctx *GameContext, game Game) *Loop {
	return &Loop{ctx: ctx, game: game}
}

// Step runs one frame: clear registry and screen, update, promote staged boxes, show
func (l *Loop) Step() {
	c := l.ctx
	c.Registry.Clear()
	c.Screen.Clear()

	l.game.Update(c)

	// Boxes the game staged directly on the registry join the live set before the frame ends
	c.Registry.ConcatTmpHitBoxes()
	c.Screen.Show()
	c.frame++
}

// Run ticks frames at Config.TickInterval until ctx is cancelled or the game returns ErrQuit
// A panic in the game restores the screen registered with core.SetCrashScreen
func (l *Loop) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)
	screen := l.ctx.Screen

	// PollEvent blocks; wake the pump once the group is cancelled
	// gctx is always cancelled when Wait returns, so this goroutine never leaks
	core.Go(func() {
		<-gctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil || gctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	}))

	g.Go(core.Guard(func() error {
		return l.frames(gctx, events)
	}))

	err := g.Wait()
	if errors.Is(err, ErrQuit) || ctx.Err() != nil {
		return nil
	}
	return err
}

func (l *Loop) frames(ctx context.Context, events <-chan tcell.Event) error {
	interval := l.ctx.Config.TickInterval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				l.ctx.HandleResize()
			}
			if err := l.game.HandleEvent(l.ctx, ev); err != nil {
				return err
			}
		case <-ticker.C:
			l.Step()
		}
	}
}
