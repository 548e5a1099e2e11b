package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs and the record.

Examples:
  mango scores
  mango scores --limit 25
  mango scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the record and all runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(storage.DefaultGameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(storage.DefaultGameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Mango Snake 🥭")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mango play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %-16s  %s\n", "Rank", "Score", "Length", "Who", "Date", "Run")
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %-16s  %s\n", "----", "-----", "------", "---", "----", "---")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-3s  %-16s  %s\n",
			i+1, r.Score, r.Length, r.Character, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID.String()[:8])
	}

	fmt.Println()
	stats, err := store.GetGameStats(storage.DefaultGameID)
	if err == nil {
		fmt.Printf("Record: %d   Games: %d   Average: %.1f   Longest snake: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestRun)
	}
	return nil
}
