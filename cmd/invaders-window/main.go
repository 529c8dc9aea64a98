package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/game"
	"github.com/lixenwraith/invaders/window"
)

func main() {
	var cols, rows, scale int
	var configPath string
	var debug bool

	flag.IntVar(&cols, "cols", 80, "grid width in characters")
	flag.IntVar(&rows, "rows", 24, "grid height in characters")
	flag.IntVar(&scale, "scale", 2, "window scale factor")
	flag.StringVar(&configPath, "config", "", "path to a TOML settings file")
	flag.BoolVar(&debug, "debug", false, "log game events to stderr")
	overrides := config.BindFlags(flag.CommandLine)
	flag.Parse()

	if !debug {
		log.SetOutput(io.Discard)
	}

	cfg, err := overrides.Resolve(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders-window: %v\n", err)
		os.Exit(1)
	}

	board := engine.Board{Width: cols, Height: rows}
	if err := board.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders-window: %v\n", err)
		os.Exit(1)
	}
	world, err := engine.NewWorld(cfg.WorldConfig(board))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders-window: %v\n", err)
		os.Exit(1)
	}

	win := window.New(cols, rows)
	clock := engine.NewMonotonicClock()
	g := game.New(world, win.Renderer(), win.Source(), game.Options{
		Rand:  engine.NewFastRand(cfg.SeedAt(clock.Now())),
		Clock: clock,
	})

	// Closing the window cancels the game loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		g.Run(ctx)
		win.Finish()
	}()

	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowSize(cols*window.CellWidth*scale, rows*window.CellHeight*scale)
	if err := ebiten.RunGame(win); err != nil {
		fmt.Fprintf(os.Stderr, "invaders-window: %v\n", err)
		os.Exit(1)
	}
}
