package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/games/pool"
	"github.com/vovakirdan/tui-billiards/internal/platform/tui"
	"github.com/vovakirdan/tui-billiards/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a table and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a table, left/right to change difficulty,
Enter to rack. After you quit a table you return to the menu.

Controls:
  Up/Down/j/k     - Choose table
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Rack the table
  Tab             - High scores
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagMenuDifficulty)
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := runtimeConfig()
	pool.SetConfigPath(flagConfig)

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config
		preset = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if err := tui.RunScoreboard(sess.opts.Store, "", cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		pool.SetDifficultyPreset(string(preset))
		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating table: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, sess.opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running table: %v\n", err)
		}
	}
}
