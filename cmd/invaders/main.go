package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/game"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/invaders.log")
	configFlag = flag.String("config", "", "Path to a TOML settings file")
)

func main() {
	overrides := config.BindFlags(flag.CommandLine)
	flag.Parse()
	os.Exit(run(overrides))
}

func run(overrides *config.Flags) (code int) {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := overrides.Resolve(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "invaders: stdout is not a terminal")
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	renderer := render.NewScreenRenderer(screen)
	width, height := renderer.Size()
	board := engine.Board{Width: width, Height: height}

	world, err := newWorld(cfg, board)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewMonotonicClock()
	seed := cfg.SeedAt(clock.Now())
	log.Printf("invaders: board %dx%d seed=%d settings=%+v fleet=%+v", width, height, seed, cfg.Settings, cfg.Fleet)

	g := game.New(world, renderer, input.NewScreenSource(screen), game.Options{
		Rand:  engine.NewFastRand(seed),
		Clock: clock,
	})
	g.Run(ctx)
	return 0
}

func newWorld(cfg config.Config, board engine.Board) (*engine.World, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("terminal too small: %w", err)
	}
	world, err := engine.NewWorld(cfg.WorldConfig(board))
	if errors.Is(err, engine.ErrOutOfBounds) {
		return nil, fmt.Errorf("fleet does not fit a %dx%d terminal: %w", board.Width, board.Height, err)
	}
	return world, err
}
