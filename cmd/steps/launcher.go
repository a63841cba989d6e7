package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/games/steps"
	"github.com/vovakirdan/tui-steps/internal/platform/tui"
)

// runLauncher shows the menu, runs the chosen screen and loops back.
func runLauncher(_ *cobra.Command, _ []string) error {
	if err := checkFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	newGame := gameFactory()
	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		best := 0
		if store != nil {
			if high, err := store.HighScore(steps.GameID); err == nil {
				best = high
			}
		}

		result, err := tui.RunMenu(cfg, difficulty, best)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuChoicePlay:
			logger.Debug("starting game", "difficulty", difficulty)
			if err := tui.Run(newGame(difficulty), store, cfg, logger); err != nil {
				return fmt.Errorf("game: %w", err)
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, steps.GameID, steps.GameTitle, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
