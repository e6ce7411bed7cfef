package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/laserlicht/toweroops/internal/config"
	"github.com/laserlicht/toweroops/internal/core"
	"github.com/laserlicht/toweroops/internal/platform/tui"
	"github.com/laserlicht/toweroops/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Start a round against the computer.

Controls:
  Arrows/WASD - Move the cursor along the highlighted line
  Enter/Space - Pick the cell under the cursor
  T           - Show a suggested move
  G           - Surrender the round
  N           - Start a new round
  B/Esc       - Back to the difficulty menu
  Q/Ctrl+C    - Quit

Difficulty options:
  beginner - Picks cells at random
  easy     - Grabs the best immediate cell
  normal   - Thinks two moves ahead
  hard     - Thinks four moves ahead
  expert   - Thinks eight moves ahead

Examples:
  toweroops play
  toweroops play --difficulty expert
  toweroops play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: beginner, easy, normal, hard, expert")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	preset := config.DifficultyPreset(appCfg.AI.DefaultDifficulty)
	if flagDifficulty != "" {
		preset = config.DifficultyPreset(flagDifficulty)
		if !config.IsValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Valid presets: beginner, easy, normal, hard, expert")
			os.Exit(1)
		}
	}

	// Open match storage
	store, err := storage.Open(dbPath(appCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	thinkDelay := time.Duration(appCfg.AI.ThinkDelayMs) * time.Millisecond

	// Menu -> game -> menu loop. An explicit --difficulty skips the menu
	// for the first round.
	skipMenu := flagDifficulty != ""
	for {
		if !skipMenu {
			result, menuErr := tui.RunMenu(cfg, preset)
			if menuErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
				os.Exit(1)
			}
			cfg = result.Config

			if result.WantsStats {
				goBack, statsErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
				if statsErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
					os.Exit(1)
				}
				if !goBack {
					return
				}
				continue
			}

			if result.Quit {
				return
			}
			preset = result.Preset
		}
		skipMenu = false

		level := config.LevelForPreset(preset)
		goBack, runErr := tui.Run(store, cfg, level, thinkDelay)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !goBack {
			return
		}

		// A fresh seed for the next round picked from the menu.
		cfg.Seed = 0
	}
}

// dbPath resolves the database path: the --db flag wins over the config.
func dbPath(appCfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if appCfg.Storage.DatabasePath != "" {
		return appCfg.Storage.DatabasePath
	}
	return "~/.toweroops/matches.db"
}
