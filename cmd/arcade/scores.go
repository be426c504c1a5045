package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowfall-arcade/internal/registry"
	"github.com/vovakirdan/snowfall-arcade/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best runs for a game",
	Long: `Display the 10 best runs for the specified game. Runs are ranked by
gifts collected, then by the fastest time.

Examples:
  arcade scores gifts
  arcade scores sleigh --all
  arcade scores sleigh --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every run, newest first")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.RunRecord
	if flagScoresAll {
		runs, err = store.AllRuns(gameID)
	} else {
		runs, err = store.TopRuns(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "Rank", "Player", "Gifts", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "----", "------", "-----", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-8s  %s\n",
			i+1, player, r.Score, fmt.Sprintf("%.1fs", r.Duration.Seconds()), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok, err := store.BestTime(gameID); err == nil && ok {
		fmt.Printf("Fastest clear: %.1fs\n", best.Seconds())
	}
}
