package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/games/steps"
	"github.com/vovakirdan/tui-steps/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse scores interactively",
	Long: `Open the interactive scoreboard with top scores and recent rounds.

Controls:
  Up/Down    - Scroll
  Tab        - Switch between top scores and recent rounds
  Esc/B/Q    - Close`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if _, err := tui.RunScoreboard(store, steps.GameID, steps.GameTitle, cfg.ScreenW, cfg.ScreenH); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}
