package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-billiards/internal/core"
)

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "billiards.log")

	logger, closer, err := OpenLogger(path, log.InfoLevel)
	require.NoError(t, err)

	LogNotices(logger, "pool", []core.Notice{
		{Level: core.NoticeInfo, Message: "ball sunk", Fields: []any{"ball", 9}},
		{Level: core.NoticeDebug, Message: "cushion"},
	})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "billiards")
	assert.Contains(t, out, "ball sunk")
	assert.Contains(t, out, "ball=9")
	assert.False(t, strings.Contains(out, "cushion"), "debug notices filtered at info level")
}

func TestOpenLoggerEmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenLogger("", log.DebugLevel)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestLogNoticesNilLogger(t *testing.T) {
	// Must not panic
	LogNotices(nil, "pool", []core.Notice{{Message: "x"}})
}
