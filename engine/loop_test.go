package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitbox/collision"
	"github.com/lixenwraith/hitbox/config"
	"github.com/lixenwraith/hitbox/core"
)

type recordingGame struct {
	playerHits []collision.Collision
	afterHits  []collision.Collision
	keys       []rune
}

func (g *recordingGame) Update(ctx *GameContext) {
	// player drawn before the wall sees nothing this frame
	g.playerHits = append(g.playerHits, ctx.Canvas.Char('@', 1, 1, collision.White))
	ctx.Canvas.Rect(0, 0, 3, 3, collision.Red)
	g.afterHits = append(g.afterHits, ctx.Canvas.Probe(collision.NewHitBox(1, 1, 1, 1, collision.NewCollision())))
}

func (g *recordingGame) HandleEvent(_ *GameContext, ev tcell.Event) error {
	if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyRune {
		g.keys = append(g.keys, key.Rune())
		if key.Rune() == 'q' {
			return ErrQuit
		}
	}
	return nil
}

func newTestContext(t *testing.T) *GameContext {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.TickInterval = 5 * time.Millisecond
	return NewGameContext(screen, cfg)
}

func TestStepClearsRegistryEachFrame(t *testing.T) {
	ctx := newTestContext(t)
	game := &recordingGame{}
	loop := NewLoop(ctx, game)

	loop.Step()
	loop.Step()

	require.Equal(t, uint64(2), ctx.Frame())
	for i, hit := range game.playerHits {
		require.False(t, hit.Any(), "frame %d: boxes leaked across frames", i)
	}
	for _, hit := range game.afterHits {
		require.True(t, hit.Rect(collision.Red))
		require.True(t, hit.Char("@"))
	}

	live, staged := ctx.Registry.Len()
	require.Equal(t, 2, live)
	require.Zero(t, staged)
}

func TestStepPromotesDirectlyStagedBoxes(t *testing.T) {
	ctx := newTestContext(t)
	loop := NewLoop(ctx, gameFunc(func(c *GameContext) {
		c.Registry.Stage(collision.NewHitBox(0, 0, 1, 1, collision.TextTag("x")))
	}))

	loop.Step()
	live, staged := ctx.Registry.Len()
	require.Equal(t, 1, live)
	require.Zero(t, staged)
}

func TestRunQuitsOnErrQuit(t *testing.T) {
	ctx := newTestContext(t)
	game := &recordingGame{}
	loop := NewLoop(ctx, game)

	sim := ctx.Screen.(tcell.SimulationScreen)
	go func() {
		time.Sleep(20 * time.Millisecond)
		sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
		sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	require.Equal(t, []rune{'a', 'q'}, game.keys)
	require.NotZero(t, ctx.Frame())
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx := newTestContext(t)
	loop := NewLoop(ctx, &recordingGame{})

	cctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, loop.Run(cctx))
}

type screenSpy struct{ finis int }

func (s *screenSpy) Fini() { s.finis++ }

// catchCrash registers a spy screen and stubs the exit so a panic returns through Run
func catchCrash(t *testing.T) (*screenSpy, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	spy := &screenSpy{}
	restore := core.SetCrashOutput(&out, func(int) {})
	core.SetCrashScreen(spy)
	t.Cleanup(func() {
		restore()
		core.SetCrashScreen(nil)
	})
	return spy, &out
}

func runWithTimeout(t *testing.T, loop *Loop) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
		return nil
	}
}

func TestRunRestoresScreenWhenUpdatePanics(t *testing.T) {
	spy, out := catchCrash(t)
	ctx := newTestContext(t)
	loop := NewLoop(ctx, gameFunc(func(*GameContext) { panic("boom in Update") }))

	err := runWithTimeout(t, loop)

	require.ErrorIs(t, err, core.ErrPanic)
	require.Equal(t, 1, spy.finis)
	require.Contains(t, out.String(), "CRASH DETECTED: boom in Update")
}

type panicOnKey struct{}

func (panicOnKey) Update(*GameContext) {}
func (panicOnKey) HandleEvent(_ *GameContext, ev tcell.Event) error {
	if _, ok := ev.(*tcell.EventKey); ok {
		panic("boom in HandleEvent")
	}
	return nil
}

func TestRunRestoresScreenWhenHandleEventPanics(t *testing.T) {
	spy, out := catchCrash(t)
	ctx := newTestContext(t)
	loop := NewLoop(ctx, panicOnKey{})

	sim := ctx.Screen.(tcell.SimulationScreen)
	go func() {
		time.Sleep(20 * time.Millisecond)
		sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}()

	err := runWithTimeout(t, loop)

	require.ErrorIs(t, err, core.ErrPanic)
	require.Equal(t, 1, spy.finis)
	require.Contains(t, out.String(), "boom in HandleEvent")
}

type gameFunc func(*GameContext)

func (f gameFunc) Update(ctx *GameContext)                     { f(ctx) }
func (f gameFunc) HandleEvent(*GameContext, tcell.Event) error { return nil }
