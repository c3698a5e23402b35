package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-billiards/internal/config"
	"github.com/vovakirdan/tui-billiards/internal/core"
	"github.com/vovakirdan/tui-billiards/internal/games/pool"
	"github.com/vovakirdan/tui-billiards/internal/platform/tui"
	"github.com/vovakirdan/tui-billiards/internal/registry"
	"github.com/vovakirdan/tui-billiards/internal/storage"
)

var (
	flagConfig         string
	flagDifficulty     string
	flagMenuDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <table>",
	Short: "Rack and play a table",
	Long: `Rack the specified table and start shooting.

Controls:
  Press            - Aim from the cue ball toward the pointer
  Drag outward     - Build power along the aim line
  Release          - Shoot
  Move, then click - Place the cue ball after a scratch
  P/Space          - Pause
  R                - Rack again (after the table is cleared)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Less friction, bigger pockets, harder break
  normal - Config values as written
  hard   - More friction, tighter pockets, softer shots

Examples:
  billiards play pool
  billiards play pool_practice --difficulty easy
  billiards play pool --config ./my-table.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "normal", "Initial difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown table %q (run 'billiards list' to see available tables)", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Fail before the alt screen takes over if the custom file is broken
	if flagConfig != "" {
		if _, err := config.LoadPool(flagConfig); err != nil {
			return err
		}
	}

	pool.SetConfigPath(flagConfig)
	pool.SetDifficultyPreset(string(preset))

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := tui.Run(game, sess.opts, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// session holds the platform services shared by play and menu.
type session struct {
	opts   tui.Options
	logger io.Closer
}

// openSession opens the log file and the score store. A missing store
// only disables score saving.
func openSession() (*session, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger, closer, err := tui.OpenLogger(flagLogPath, level)
	if err != nil {
		return nil, err
	}
	// Tag every line so sessions sharing one log file can be told apart
	logger = logger.With("session", uuid.NewString())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		store = nil
	}

	return &session{
		opts:   tui.Options{Store: store, Logger: logger},
		logger: closer,
	}, nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	if s.opts.Store != nil {
		s.opts.Store.Close()
	}
	s.logger.Close()
}
