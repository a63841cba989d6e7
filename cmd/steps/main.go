// steps is Mind Your Step: hop along a generated road in your terminal
// one or two tiles at a time without falling into a gap.
//
// Usage:
//
//	steps                    - Launcher menu (play, difficulty, scores)
//	steps play               - Play straight away
//	steps list               - List available games
//	steps scores             - Show high scores and recent rounds
//	steps board              - Interactive scoreboard
//	steps replay <round-id>  - Rebuild and print the road of a saved round
//	steps serve              - Start SSH server for remote play
//	steps config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible roads
//	--db <path>          - Set database path (default: ~/.steps/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by the launcher, play and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "steps",
	Short: "Mind Your Step - an endless stepper for your terminal",
	Long: `Mind Your Step generates a road of solid tiles and gaps.
Hop one tile with Left or two tiles with Right; land in a gap and the
round is over. Your score is how far you got.

Running steps without a command opens the launcher menu.

Examples:
  steps
  steps play --difficulty hard
  steps scores --recent
  steps replay 6f1c2a8e-5d4b-4f0e-9a77-3c1d2e4f5a6b
  steps serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.steps/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands log nowhere otherwise)")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
