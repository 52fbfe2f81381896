package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "gruvbox", "phase": "apply"})
	log.Info("applying selection")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "applying selection", entry["message"])
	require.Equal(t, "gruvbox", entry["theme"])
	require.Equal(t, "apply", entry["phase"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"file": "catppuccin.kdl"})
	log.Error(errors.New("boom"), "download failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "download failed", entry["message"])
	require.Equal(t, "catppuccin.kdl", entry["file"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerWithComponentTagsEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.WithComponent("catalog").Info("listing fetched")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "catalog", entry["component"])
	require.Equal(t, "listing fetched", entry["message"])
}

func TestLoggerNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	log.Info("no panic")
	log.Error(errors.New("x"), "no panic")
}
