package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowfall-arcade/internal/registry"
	"github.com/vovakirdan/snowfall-arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for every game",
	Long: `Display run counts, gifts collected and times for every game.

Examples:
  arcade stats
  arcade stats --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-22s  %-5s  %-6s  %-8s  %-8s  %s\n", "Game", "Runs", "Gifts", "Best", "Average", "Last played")
	fmt.Printf("  %-22s  %-5s  %-6s  %-8s  %-8s  %s\n", "----", "----", "-----", "----", "-------", "-----------")

	// Registry order, so unplayed games show up too
	for _, g := range registry.List() {
		gs, ok := all[g.ID]
		if !ok {
			gs = &storage.GameStats{GameID: g.ID}
		}
		printStats(g.Title, gs)
	}
}

func printStats(title string, gs *storage.GameStats) {
	best, avg, last := "-", "-", "never"
	if gs.RunsCount > 0 {
		best = fmt.Sprintf("%.1fs", gs.BestTime.Seconds())
		avg = fmt.Sprintf("%.1fs", gs.AvgTime.Seconds())
		if !gs.LastPlayed.IsZero() {
			last = gs.LastPlayed.Format("2006-01-02 15:04")
		}
	}
	fmt.Printf("  %-22s  %-5d  %-6d  %-8s  %-8s  %s\n", title, gs.RunsCount, gs.TotalGifts, best, avg, last)
}
