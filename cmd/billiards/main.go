// billiards is a terminal pool table driven by the mouse.
//
// Usage:
//
//	billiards list              - List available tables
//	billiards play <table>      - Rack and play a table
//	billiards menu              - Pick a table and difficulty interactively
//	billiards scores [table]    - Show high scores
//	billiards config [table]    - Print the default table config YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed
//	--db <path>         - Set database path (default: ~/.billiards/scores.db)
//	--log <path>        - Set log file (default: ~/.billiards/billiards.log, "" disables)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-billiards/internal/games/pool"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "billiards",
	Short: "TUI Billiards - shoot pool in your terminal",
	Long: `TUI Billiards is a pool table for the terminal. Press toward a ball
to aim, drag outward along the aim line to set power, release to shoot.

Available commands:
  list     - Show all available tables
  play     - Rack and play a table directly
  menu     - Interactive table picker
  scores   - View high scores
  config   - Print the default config YAML

Examples:
  billiards list
  billiards play pool
  billiards play pool_practice --difficulty easy
  billiards menu
  billiards scores pool`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.billiards/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.billiards/billiards.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
