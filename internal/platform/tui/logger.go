package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-billiards/internal/core"
)

// DefaultLogPath is where the session log goes unless --log overrides it.
const DefaultLogPath = "~/.billiards/billiards.log"

// OpenLogger opens (appending) the log file at path and returns a logger
// writing to it. The terminal belongs to the game, so nothing is logged to stdout.
// An empty path discards all output.
func OpenLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(io.Discard, level), nopCloser{}, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	return NewLogger(f, level), f, nil
}

// NewLogger builds the platform logger on top of w.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "billiards",
		Level:           level,
	})
}

// LogNotices forwards game notices to the logger at the matching level.
func LogNotices(logger *log.Logger, gameID string, notices []core.Notice) {
	if logger == nil {
		return
	}
	for _, n := range notices {
		kv := append([]any{"game", gameID}, n.Fields...)
		switch n.Level {
		case core.NoticeWarn:
			logger.Warn(n.Message, kv...)
		case core.NoticeInfo:
			logger.Info(n.Message, kv...)
		default:
			logger.Debug(n.Message, kv...)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
