package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf, Format: FormatJSON, Level: InfoLevel})
	require.NoError(t, err)
	defer logger.Close()

	ctx := context.Background()
	logger.Debug(ctx, "hidden", nil)
	logger.Info(ctx, "copied file", Fields{"path": "/src/a.txt", "encoding": "UTF-8"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "copied file", entry["message"])
	assert.Equal(t, "/src/a.txt", entry["path"])
	assert.Equal(t, "UTF-8", entry["encoding"])
}

func TestNew_TextToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "templa.log")
	logger, err := New(Config{Path: logPath, Format: FormatText, Level: DebugLevel})
	require.NoError(t, err)

	ctx := context.Background()
	logger.Debug(ctx, "debug message", nil)
	logger.Error(ctx, "write failed", fmt.Errorf("disk full"), Fields{"path": "/dst/x"})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "debug message")
	assert.Contains(t, content, "write failed")
	assert.Contains(t, content, "disk full")
	assert.Contains(t, content, "/dst/x")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Config{Writer: &buf, Format: FormatJSON, Level: InfoLevel})
	require.NoError(t, err)

	child := base.WithFields(Fields{"operation_id": "abc"})
	child.Warn(context.Background(), "skipped", nil)
	require.NoError(t, child.Close())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "abc", entry["operation_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.Equal(t, "WARN", LevelString(WarnLevel))
}

func TestNullLogger(t *testing.T) {
	var l Logger = NewNullLogger()
	l.Info(context.Background(), "ignored", Fields{"a": 1})
	assert.Same(t, l, l.WithFields(Fields{"b": 2}))
	assert.NoError(t, l.Close())
}
