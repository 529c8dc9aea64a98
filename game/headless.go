package game

import (
	"context"
	"time"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// unpacedClock measures real time but never sleeps
type unpacedClock struct{}

func (unpacedClock) Now() time.Time { return time.Now() }

func (unpacedClock) Sleep(time.Duration) {}

// Simulate plays one unattended game with the autopilot into an off-screen buffer.
// The game is cut off after maxTicks; a cut-off game reports StateRunning.
func Simulate(ctx context.Context, cfg engine.WorldConfig, seed uint64, maxTicks uint64) (Outcome, error) {
	world, err := engine.NewWorld(cfg)
	if err != nil {
		return Outcome{}, err
	}

	g := New(world, render.NewBuffer(cfg.Board.Width, cfg.Board.Height), input.NewAutopilot(world), Options{
		Rand:         engine.NewFastRand(seed),
		Clock:        unpacedClock{},
		SkipGameOver: true,
	})

	for !g.State().Terminal() && world.Tick < maxTicks {
		if err := ctx.Err(); err != nil {
			return g.outcome(), err
		}
		g.Step(ctx)
	}
	return g.outcome(), nil
}

func (g *Game) outcome() Outcome {
	w := g.world
	return Outcome{
		State: g.state,
		Score: w.Score,
		Ticks: w.Tick,
		Stats: w.Stats,
	}
}
