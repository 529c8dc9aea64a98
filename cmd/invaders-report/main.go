package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/game"
)

type runResult struct {
	index   int
	seed    uint64
	outcome game.Outcome
}

func main() {
	var runs int
	var ticks uint64
	var seedBase uint64
	var width, height int
	var configPath string
	var copyReport bool
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless games")
	flag.Uint64Var(&ticks, "ticks", 20000, "tick limit per game")
	flag.Uint64Var(&seedBase, "seed-base", 1, "RNG seed for run 1, incremented per run")
	flag.IntVar(&width, "width", 80, "board width")
	flag.IntVar(&height, "height", 24, "board height")
	flag.StringVar(&configPath, "config", "", "path to a TOML settings file")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.BoolVar(&verbose, "v", false, "log game events to stderr")
	overrides := config.BindFlags(flag.CommandLine)
	flag.Parse()

	if !verbose {
		log.SetOutput(io.Discard)
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	if ticks == 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(1)
	}

	cfg, err := overrides.Resolve(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	board := engine.Board{Width: width, Height: height}
	if err := board.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	var report strings.Builder
	fmt.Fprintf(&report, "=== Headless Invaders Report ===\n")
	fmt.Fprintf(&report, "board=%dx%d runs=%d ticks=%d seed_base=%d aliens=%d rows=%d\n",
		width, height, runs, ticks, seedBase, cfg.Fleet.Count, cfg.Fleet.Rows)
	fmt.Fprintf(&report, "settings=%+v\n\n", cfg.Settings)

	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)
		out, err := game.Simulate(context.Background(), cfg.WorldConfig(board), seed, ticks)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		r := runResult{index: i + 1, seed: seed, outcome: out}
		results = append(results, r)
		writeRun(&report, r)
	}
	writeAggregate(&report, results)

	fmt.Print(report.String())

	if copyReport {
		if err := clipboard.WriteAll(report.String()); err != nil {
			fmt.Printf("error: copy to clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("(report copied to clipboard)")
	}
}

func writeRun(w io.Writer, r runResult) {
	out := r.outcome
	state := out.State.String()
	if !out.State.Terminal() {
		state = "timeout"
	}
	fmt.Fprintf(w, "run %2d seed=%-6d %-14s score=%5d ticks=%6d hits=%3d shots=%4d acc=%5.1f%% bombs=%4d skipped=%3d rerolls=%4d avg_alien=%s\n",
		r.index, r.seed, state, out.Score, out.Ticks,
		out.Stats.Hits, out.Stats.ShotsFired, out.Stats.Accuracy()*100,
		out.Stats.BombsDropped, out.Stats.BombsSkipped, out.Stats.Rerolls,
		out.Stats.AvgAlienTime())
}

func writeAggregate(w io.Writer, results []runResult) {
	counts := map[string]int{}
	var scoreSum int
	var tickSum uint64
	var accSum float64
	var alienTime time.Duration
	var alienTicks uint64

	for _, r := range results {
		out := r.outcome
		switch {
		case out.State == engine.StateWon:
			counts["won"]++
		case out.State == engine.StateLostByBreach:
			counts["breach"]++
		case out.State == engine.StateLostByBomb:
			counts["bomb"]++
		default:
			counts["timeout"]++
		}
		scoreSum += out.Score
		tickSum += out.Ticks
		accSum += out.Stats.Accuracy()
		alienTime += out.Stats.AlienTime
		alienTicks += out.Stats.AlienTicks
	}

	n := len(results)
	fmt.Fprintf(w, "\n--- aggregate ---\n")
	fmt.Fprintf(w, "won=%d lost_breach=%d lost_bomb=%d timeout=%d\n",
		counts["won"], counts["breach"], counts["bomb"], counts["timeout"])
	fmt.Fprintf(w, "avg_score=%.1f avg_ticks=%.0f avg_accuracy=%.1f%%\n",
		float64(scoreSum)/float64(n), float64(tickSum)/float64(n), accSum/float64(n)*100)

	var avg time.Duration
	if alienTicks > 0 {
		avg = alienTime / time.Duration(alienTicks)
	}
	fmt.Fprintf(w, "alien_ticks=%d avg_alien_update=%s\n", alienTicks, avg)
}
