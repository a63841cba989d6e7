package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/road"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

var flagReplayWidth int

var replayCmd = &cobra.Command{
	Use:   "replay <round-id>",
	Short: "Rebuild and print the road of a saved round",
	Long: `Regenerate a saved round's road from its seed and print it.

Solid tiles are shown as '#', gaps as '_'. The tile the player landed on
is marked with '^'. The stored score is checked against the rebuilt road.

Find round IDs with 'steps scores --recent'.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVarP(&flagReplayWidth, "width", "w", 60, "Tiles per printed line")
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	round, err := store.RoundByID(args[0])
	if errors.Is(err, storage.ErrRoundNotFound) {
		return fmt.Errorf("no round with id %s (see 'steps scores --recent')", args[0])
	}
	if err != nil {
		return err
	}

	track := road.Generate(round.RoadLength, road.SeededBits(round.Seed))
	if err := track.Validate(); err != nil {
		return fmt.Errorf("rebuilt road is invalid: %w", err)
	}

	fmt.Printf("Round %s\n", round.RoundID)
	fmt.Printf("Played %s, seed %d, %d tiles (%d gaps)\n\n",
		round.CreatedAt.Format("2006-01-02 15:04"), round.Seed, track.Len(), track.Gaps())
	fmt.Print(formatTrack(track, round.MoveIndex, flagReplayWidth))

	result := road.CheckResult(track, round.MoveIndex)
	fmt.Println()
	switch {
	case round.Overshot:
		fmt.Printf("Jumped past the end. Score %d\n", round.Score)
	case result.Failed():
		fmt.Printf("Fell into the gap at tile %d. Score %d\n", round.MoveIndex, round.Score)
	default:
		fmt.Printf("Stopped on tile %d. Score %d\n", round.MoveIndex, round.Score)
	}
	if result.Failed() && result.Score != round.Score {
		return fmt.Errorf("stored score %d does not match the rebuilt road (%d)", round.Score, result.Score)
	}
	return nil
}

// formatTrack prints the road in rows of width tiles, each prefixed with
// its first tile index, and marks the landing tile on the row below it.
func formatTrack(track road.Track, landed, width int) string {
	if width <= 0 {
		width = 60
	}

	s := track.String()
	var b strings.Builder
	for start := 0; start < len(s); start += width {
		end := min(start+width, len(s))
		fmt.Fprintf(&b, "%6d  %s\n", start, s[start:end])
		if landed >= start && landed < end {
			fmt.Fprintf(&b, "%6s  %s^\n", "", strings.Repeat(" ", landed-start))
		}
	}
	if landed >= len(s) {
		fmt.Fprintf(&b, "%6s  %s^ (past the end)\n", "", strings.Repeat(" ", min(landed-len(s), width)))
	}
	return b.String()
}
