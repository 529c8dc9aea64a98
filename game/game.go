// Package game runs the tick loop: draw, step every system, check for the end, pace, read input
package game

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/menu"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/systems"
)

// Options tunes the loop around the simulation
type Options struct {
	// Rand drives alien behavior; nil seeds a generator from the clock
	Rand engine.Rand
	// Clock paces ticks and times the behavior engine; nil uses the system clock
	Clock engine.Clock
	// SkipGameOver ends Run without the win/lose screen
	SkipGameOver bool
}

// Outcome summarises a finished game
type Outcome struct {
	State engine.State
	Score int
	Ticks uint64
	Stats engine.Stats
}

// Game owns the world and every collaborator of the loop
type Game struct {
	world   *engine.World
	systems []engine.System
	scene   *render.Scene
	src     input.Source
	menu    *menu.Menu
	clock   engine.Clock
	opts    Options
	state   engine.State
}

// New wires a game around an existing world with the standard systems
func New(world *engine.World, r render.Renderer, src input.Source, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = engine.NewFastRand(uint64(opts.Clock.Now().UnixNano()))
	}

	g := &Game{
		world: world,
		scene: render.NewScene(r),
		src:   src,
		menu:  menu.New(r, src),
		clock: opts.Clock,
		opts:  opts,
		state: engine.StateRunning,
	}
	g.AddSystem(systems.NewAlienSystem(opts.Rand, opts.Clock))
	g.AddSystem(systems.NewShotSystem())
	g.AddSystem(systems.NewBombSystem())
	return g
}

// AddSystem registers a system and keeps the run order sorted by priority
func (g *Game) AddSystem(system engine.System) {
	g.systems = append(g.systems, system)

	// Bubble sort is fine for a handful of systems
	for i := 0; i < len(g.systems)-1; i++ {
		for j := 0; j < len(g.systems)-i-1; j++ {
			if g.systems[j].Priority() > g.systems[j+1].Priority() {
				g.systems[j], g.systems[j+1] = g.systems[j+1], g.systems[j]
			}
		}
	}
}

// World returns the game state
func (g *Game) World() *engine.World {
	return g.world
}

// State returns the current loop state
func (g *Game) State() engine.State {
	return g.state
}

// Step runs one tick and returns the resulting state; a finished game is left untouched
func (g *Game) Step(ctx context.Context) engine.State {
	if g.state.Terminal() {
		return g.state
	}
	w := g.world

	g.scene.Frame(w)

	for _, s := range g.systems {
		s.Update(w)
	}

	if st := Evaluate(w); st.Terminal() {
		g.state = st
		return st
	}

	g.clock.Sleep(time.Duration(w.Settings.OverallDelay) * constants.DelayUnit)
	w.Tick++
	w.Stats.Ticks++

	if k, ok := g.src.PollKey(); ok {
		g.handleKey(ctx, k)
	}
	w.Tank.Col = w.Board.ClampCol(w.Tank.Col)

	return g.state
}

func (g *Game) handleKey(ctx context.Context, k input.Key) {
	w := g.world
	switch k.Code {
	case input.KeyQuit:
		g.state = engine.StateQuit
	case input.KeyLeft:
		w.MoveTank(-1)
	case input.KeyRight:
		w.MoveTank(1)
	case input.KeyFire:
		w.FireShot()
	case input.KeyMenu:
		res, err := g.menu.Run(ctx, &w.Settings)
		if err != nil {
			log.Printf("game: menu aborted: %v", err)
		}
		if res == menu.ResultExit {
			g.state = engine.StateQuit
			return
		}
		log.Printf("game: resumed with settings %+v", w.Settings)
	}
}

// Evaluate checks the end conditions in priority order: win, breach, bomb
func Evaluate(w *engine.World) engine.State {
	if w.AliveAliens == 0 {
		return engine.StateWon
	}

	for i := range w.Aliens {
		a := &w.Aliens[i]
		if a.Alive && a.Row >= w.Board.BottomRow() {
			return engine.StateLostByBreach
		}
	}

	for i := range w.Bombs.Slots {
		b := &w.Bombs.Slots[i]
		if b.Active && b.Row == w.Tank.Row && b.Col == w.Tank.Col {
			return engine.StateLostByBomb
		}
	}

	return engine.StateRunning
}

// Run steps until the game ends or ctx is cancelled, which counts as quitting.
// A win or loss is shown until any key is pressed unless SkipGameOver is set.
func (g *Game) Run(ctx context.Context) Outcome {
	for !g.state.Terminal() {
		if ctx.Err() != nil {
			g.state = engine.StateQuit
			break
		}
		g.Step(ctx)
	}

	if !g.opts.SkipGameOver && g.scene.GameOver(g.state, g.world.Board) {
		g.waitKey(ctx)
	}

	out := g.outcome()
	log.Printf("game: %s score=%d %s", out.State, out.Score, out.Stats)
	return out
}

func (g *Game) waitKey(ctx context.Context) {
	for ctx.Err() == nil {
		if _, ok := g.src.PollKey(); ok {
			return
		}
		g.clock.Sleep(constants.GameOverPollInterval)
	}
}
