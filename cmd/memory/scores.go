package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best achievements and run history",
	Long: `Display the best-levels leaderboard, followed by the most recent
runs and aggregate stats for a game mode (default: memory).

Examples:
  memory scores
  memory scores memory_ascii
  memory scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the mode and the leaderboard")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "memory"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memory list' to see available modes.")
		os.Exit(1)
	}

	memCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	svc := openServices(memCfg, logger)
	if svc.Store == nil {
		fmt.Fprintln(os.Stderr, "Error: scores database is not available")
		os.Exit(1)
	}
	defer svc.Store.Close()

	if flagClear {
		if err := svc.Store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		if err := svc.Store.Delete(memCfg.Achievements.Key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing achievements: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s and the achievements leaderboard.\n", gameID)
		return
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Println("Best Achievements")
	fmt.Println()
	levels := svc.Achievements.Levels()
	if len(levels) == 0 {
		fmt.Println("  No levels cleared yet.")
	}
	for i, lvl := range levels {
		fmt.Printf("  %2d. Level %d\n", i+1, lvl)
	}
	fmt.Println()

	runs, err := svc.Store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'memory play %s' to start your history!\n", gameID)
		return
	}

	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %s\n", "Date", "Level", "Pairs", "Moves", "Result")
	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %s\n", "----", "-----", "-----", "-----", "------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-5d  %-5d  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Level,
			r.Score,
			fmt.Sprintf("%d/%d", r.Moves, r.MaxMoves),
			r.Outcome,
		)
	}

	stats, err := svc.Store.RunStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Boards: %d (%d cleared, %d out of moves)\n", stats.Runs, stats.Cleared, stats.Exhausted)
		fmt.Printf("Best level: %d   Pairs found: %d   Avg moves: %.1f\n", stats.BestLevel, stats.TotalPairs, stats.AvgMoves)
	}
}
