package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/games/steps"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, or the most recent rounds with their IDs.

Round IDs can be passed to 'steps replay' to rebuild that round's road.

Examples:
  steps scores
  steps scores --limit 25
  steps scores --recent
  steps scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show recent rounds instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(steps.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagRecent:
		return printRecent(store)
	default:
		return printTop(store)
	}
}

func printTop(store *storage.Store) error {
	scores, err := store.TopScores(steps.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", steps.GameTitle)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'steps play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(steps.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printRecent(store *storage.Store) error {
	rounds, err := store.RecentRounds(steps.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Printf("Recent Rounds - %s\n", steps.GameTitle)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-36s  %-6s  %-7s  %-6s  %s\n", "Round", "Score", "Landed", "Road", "Date")
	fmt.Printf("  %-36s  %-6s  %-7s  %-6s  %s\n", "-----", "-----", "------", "----", "----")
	for _, r := range rounds {
		landed := fmt.Sprintf("%d", r.MoveIndex)
		if r.Overshot {
			landed = "past"
		}
		fmt.Printf("  %-36s  %-6d  %-7s  %-6d  %s\n",
			r.RoundID, r.Score, landed, r.RoadLength, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
