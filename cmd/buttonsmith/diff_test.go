package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommand_ShowsLabelChange(t *testing.T) {
	home := setupHome(t)
	from := writeFile(t, home, "before.yaml", "defaults:\n  label: Before\n")
	to := writeFile(t, home, "after.toml", "[defaults]\nlabel = \"After\"\n")

	stdout, _, err := executeCommand(t, "diff", "--from", from, "--to", to)
	require.NoError(t, err)

	assert.Contains(t, stdout, "--- "+from)
	assert.Contains(t, stdout, "+++ "+to)
	assert.Contains(t, stdout, "-      <Sparkles className=\"size-4\" /> Before\n")
	assert.Contains(t, stdout, "+      <Sparkles className=\"size-4\" /> After\n")
	assert.NotContains(t, stdout, "-import", "unchanged lines stay context")
}

func TestDiffCommand_WordMode(t *testing.T) {
	home := setupHome(t)
	from := writeFile(t, home, "before.yaml", "defaults:\n  label: Launch\n")
	to := writeFile(t, home, "after.yaml", "defaults:\n  label: Launch\n  gap: 16\n")

	stdout, _, err := executeCommand(t, "diff", "--from", from, "--to", to, "--word")
	require.NoError(t, err)

	assert.Contains(t, stdout, `gap: "`)
	assert.Contains(t, stdout, "[-")
	assert.Contains(t, stdout, "{+")
	assert.NotContains(t, stdout, "--- "+from)
}

func TestDiffCommand_IdenticalExports(t *testing.T) {
	home := setupHome(t)
	from := writeFile(t, home, "a.yaml", "defaults:\n  variant: soft\n")
	to := writeFile(t, home, "b.yml", "defaults:\n  variant: soft\n  uppercase: false\n")

	stdout, _, err := executeCommand(t, "diff", "--from", from, "--to", to)
	require.NoError(t, err)
	assert.Equal(t, "No differences.\n", stdout)
}

func TestDiffCommand_RequiresBothFiles(t *testing.T) {
	home := setupHome(t)
	from := writeFile(t, home, "a.yaml", "")

	_, _, err := executeCommand(t, "diff", "--from", from)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"to"`)
}

func TestDiffCommand_ReportsBrokenFile(t *testing.T) {
	home := setupHome(t)
	from := writeFile(t, home, "a.yaml", "")
	to := writeFile(t, home, "b.json", "{}")

	_, _, err := executeCommand(t, "diff", "--from", from, "--to", to)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to diff")
	assert.Contains(t, err.Error(), "unsupported config format")
}
