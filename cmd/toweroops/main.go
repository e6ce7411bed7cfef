// toweroops is a terminal version of the Tower Oops! puzzle game.
//
// Usage:
//
//	toweroops play           - Play against the computer
//	toweroops stats          - Show match history and totals
//	toweroops serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.toweroops/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toweroops",
	Short: "Tower Oops! - Race the computer to a tower of 20",
	Long: `Tower Oops! is a terminal board game played against the computer.

Pick cells from the highlighted row or column: stones build your tower,
bombs knock it down, bananas let you keep the line. The first tower to
reach 20 wins; if the line runs dry, the taller tower takes the round.

Available commands:
  play     - Play against the computer
  stats    - View match history
  serve    - Start SSH server for remote play

Examples:
  toweroops play
  toweroops play --difficulty hard
  toweroops stats
  toweroops serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
