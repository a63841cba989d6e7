package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/games/steps"
	"github.com/vovakirdan/tui-steps/internal/platform/tui"
	"github.com/vovakirdan/tui-steps/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round straight away",
	Long: `Start Mind Your Step without the launcher menu.

Controls:
  Enter/Space  - Start a round
  Left/A/J     - Hop one tile
  Right/D/K    - Hop two tiles
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Short road (100 tiles), jumps speed up from the lowest level
  normal - Jumps start at 30% speed-up and progress to max
  hard   - Jumps start at 70% speed-up and progress to max
  fixed  - No progression, stays at the config's initial level

Examples:
  steps play
  steps play --difficulty hard
  steps play --seed 42
  steps play --config ./my-steps.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := checkFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	steps.SetConfigPath(flagConfig)
	steps.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(steps.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
