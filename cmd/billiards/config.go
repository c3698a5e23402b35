package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/registry"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config [table]",
	Short: "Print the table config YAML",
	Long: `Print the embedded default config for a table. Save it to
~/.billiards/configs/pool.yaml or ./configs/pool.yaml to override values.

With --resolved, print the config a game would actually run with after
the search path, --config and --difficulty are applied.

Examples:
  billiards config > ~/.billiards/configs/pool.yaml
  billiards config --resolved --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "pool"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown table %q (run 'billiards list' to see available tables)", gameID)
	}

	if !flagResolved {
		_, err := os.Stdout.Write(config.GetDefaultYAML(gameID))
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadPool(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPoolPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
