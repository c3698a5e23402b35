package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-billiards/internal/platform/tui"
	"github.com/vovakirdan/tui-billiards/internal/registry"
	"github.com/vovakirdan/tui-billiards/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [table]",
	Short: "Show high scores for a table",
	Long: `Display the top 10 cleared tables for the specified table.
A score is 1000 minus 10 per shot and 100 per scratch.

Examples:
  billiards scores pool
  billiards scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all tables in a full-screen scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "pool"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown table %q (run 'billiards list' to see available tables)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No tables cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'billiards play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %s\n", "Rank", "Score", "Shots", "Scratches", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %s\n", "----", "-----", "-----", "---------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-9d  %s\n", i+1, e.Score, e.Shots, e.Scratches, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Cleared: %d  Fewest shots: %d  Avg shots: %.1f\n",
			stats.HighScore, stats.TablesWon, stats.FewestShots, stats.AvgShots)
	}
	return nil
}
