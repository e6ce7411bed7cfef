package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/laserlicht/toweroops/internal/config"
	"github.com/laserlicht/toweroops/internal/storage"
)

var flagClearStats bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show match history",
	Long: `Display match totals, per-difficulty results, and recent rounds.

Examples:
  toweroops stats
  toweroops stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClearStats, "clear", false, "Delete all recorded matches")
}

func runStats(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(appCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearStats {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Tower Oops! - Match History")
	fmt.Println()

	if totals.Matches() == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'toweroops play' to record your first round!")
		return
	}

	fmt.Printf("Total: %d rounds - %d won, %d lost, %d drawn\n",
		totals.Matches(), totals.PlayerWins, totals.ComputerWins, totals.Draws)
	fmt.Println()

	// Per-difficulty breakdown
	byLevel, err := store.TotalsByLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving per-level totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-10s  %-5s  %-5s  %s\n", "Level", "Won", "Lost", "Drawn")
	fmt.Printf("  %-10s  %-5s  %-5s  %s\n", "-----", "---", "----", "-----")
	for _, preset := range config.PresetNames() {
		name := config.LevelForPreset(preset).String()
		t, ok := byLevel[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-5d  %d\n", name, t.PlayerWins, t.ComputerWins, t.Draws)
	}
	fmt.Println()

	// Recent rounds
	recent, err := store.RecentMatches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-8s  %-10s  %-6s  %-8s  %s\n", "Result", "Level", "Moves", "Towers", "Date")
	fmt.Printf("  %-8s  %-10s  %-6s  %-8s  %s\n", "------", "-----", "-----", "------", "----")
	for _, rec := range recent {
		towers := fmt.Sprintf("%d:%d", rec.PlayerTower, rec.ComputerTower)
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %-6d  %-8s  %s\n", rec.Outcome, rec.AILevel, rec.Moves, towers, dateStr)
	}
}
