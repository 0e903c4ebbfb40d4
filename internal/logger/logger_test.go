package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	bserrors "github.com/alexisbeaulieu97/buttonsmith/pkg/errors"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf, Component: "tui"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"variant": "soft", "size": "lg"})
	log.Info("resolved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "resolved", entry["message"])
	require.Equal(t, "soft", entry["variant"])
	require.Equal(t, "lg", entry["size"])
	require.Equal(t, "tui", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.DebugEnabled())
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	cause := zerr.With(zerr.Wrap(errors.New("boom"), "clipboard write"), "bytes", 42)
	log.With("action", "copy-classes").Error(cause, "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "copy-classes", entry["action"])
	require.Equal(t, "clipboard write: boom", entry["error"])
	require.EqualValues(t, 42, entry["bytes"])
}

func TestLoggerErrorFlattensWrappedMetadata(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	cause := zerr.With(zerr.New("unsupported config format"), "extension", ".json")
	log.Error(bserrors.NewParseError("button.json", 0, cause), "load failed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, ".json", entry["extension"])
	require.Contains(t, entry["error"], "unsupported config format")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid log level")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.With("k", "v").Error(errors.New("x"), "ignored")
		Nop().Warn("ignored")
	})
	require.False(t, log.DebugEnabled())
}
