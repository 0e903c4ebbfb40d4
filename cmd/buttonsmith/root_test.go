package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, isTerminal(f), "regular files are not terminals")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand(t, "launch")
	require.Error(t, err)
}

func TestRootCommand_UnknownLogLevel(t *testing.T) {
	home := setupHome(t)
	cfgPath := writeFile(t, home, "config.yaml", "log:\n  level: loud\n")

	_, _, err := executeCommand(t, "classes", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestCommandErrorUnwraps(t *testing.T) {
	cause := os.ErrNotExist
	err := newCommandError("diff", "loading \"a.yaml\"", cause, "Check the path.")

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "Failed to diff: loading \"a.yaml\"\n\nError: file does not exist\n\nSuggestion: Check the path.", err.Error())
}
