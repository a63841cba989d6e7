package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-steps/internal/config"
	"github.com/vovakirdan/tui-steps/internal/core"
	"github.com/vovakirdan/tui-steps/internal/games/steps"
	"github.com/vovakirdan/tui-steps/internal/platform/tui"
	"github.com/vovakirdan/tui-steps/internal/registry"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

// newLogger builds the logger from --log-level and --log-file. Without a
// log file, TUI commands discard logs so they don't corrupt the screen.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "steps",
	})
	steps.SetLogger(logger)
	return logger, closer, nil
}

// openStore opens the scores database. Gameplay works without one, so a
// failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameFactory creates a game for a difficulty chosen at runtime.
func gameFactory() tui.GameFactory {
	steps.SetConfigPath(flagConfig)
	return func(difficulty string) registry.Game {
		return steps.NewWithDifficulty(difficulty)
	}
}

// checkFlags validates game flags before any screen is taken over.
func checkFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadSteps(flagConfig); err != nil {
			return err
		}
	}
	return nil
}
