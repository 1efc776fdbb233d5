package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/lixenwraith/grid-arcade/audio"
	"github.com/lixenwraith/grid-arcade/config"
	"github.com/lixenwraith/grid-arcade/engine"
)

// cliFlags holds the command-line overrides
type cliFlags struct {
	game   string
	config string
	seed   uint64
	debug  bool
	mute   bool
}

func newFlagSet(name string) (*flag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.game, "game", "", "Game to play: snake or blocks (empty shows a menu)")
	fs.StringVar(&f.config, "config", "", "Path to a TOML config file (default "+config.DefaultConfigPath+" if present)")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	fs.BoolVar(&f.debug, "debug", false, "Write JSON logs to logs/arcade.log")
	fs.BoolVar(&f.mute, "mute", false, "Disable sound")
	return fs, f
}

// overlay copies explicitly set flags onto cfg so file values survive unset flags
func (f *cliFlags) overlay(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "game":
			cfg.Game = f.game
		case "seed":
			cfg.Seed = f.seed
		case "debug":
			cfg.Debug = f.debug
		case "mute":
			cfg.Audio.Enabled = !f.mute
		}
	})
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	fs, flags := newFlagSet("arcade")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		return 2
	}
	flags.overlay(fs, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: invalid configuration:\n%v\n", err)
		return 2
	}

	logFile := setupLogging(cfg.Debug)
	log.Info().Str("game", cfg.Game).Uint64("seed", cfg.Seed).Msg("starting")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "arcade: stdin is not a terminal")
		return 1
	}

	game := cfg.Game
	if game == "" {
		game, err = pickGame(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "arcade: menu: %v\n", err)
			return 1
		}
		if game == "" {
			return 0
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "arcade: failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mARCADE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	screen.HideCursor()

	sounds := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
	}

	var score int
	playErr := func() error {
		s, err := newSession(game, cfg, screen, sounds, log.Logger)
		if err != nil {
			return err
		}
		actions := make(chan engine.Action, 64)
		go pollInput(screen, s.keys, actions)

		_, err = s.play(ctx, actions)
		score = s.score()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}()

	sounds.Cleanup()
	screen.Fini()

	if err := shutdownErrors(playErr, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		return 1
	}
	fmt.Printf("Final Score: %d\n", score)
	return 0
}

// shutdownErrors collects the run error and any cleanup failure
func shutdownErrors(runErr error, logFile *os.File) error {
	var result *multierror.Error
	if runErr != nil {
		result = multierror.Append(result, runErr)
	}
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close log: %w", err))
		}
	}
	return result.ErrorOrNil()
}
