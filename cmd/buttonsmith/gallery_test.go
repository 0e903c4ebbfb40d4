package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard/mocks"
	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
)

func useClipboard(t *testing.T, w clipboard.Writer) {
	t.Helper()
	original := clipboardWriter
	clipboardWriter = w
	t.Cleanup(func() { clipboardWriter = original })
}

func TestGalleryCommand_ListsExamples(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "gallery")
	require.NoError(t, err)

	assert.Contains(t, stdout, "INDEX")
	for _, ex := range gallery.Examples() {
		assert.Contains(t, stdout, ex.Title)
	}
	assert.Contains(t, stdout, "buttonsmith gallery --index N")
}

func TestGalleryCommand_PrintsSnippet(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "gallery", "--index", "2")
	require.NoError(t, err)

	snippet, ok := gallery.Snippet(2)
	require.True(t, ok)
	assert.Equal(t, snippet+"\n", stdout)
}

func TestGalleryCommand_IndexOutOfRange(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand(t, "gallery", "--index", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no example at index 9")
	assert.Contains(t, err.Error(), "between 0 and 5")
}

func TestGalleryCommand_CopyRequiresIndex(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand(t, "gallery", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--copy requires --index")
}

func TestGalleryCommand_CopiesSnippet(t *testing.T) {
	setupHome(t)
	ctrl := gomock.NewController(t)
	clip := mocks.NewMockWriter(ctrl)
	useClipboard(t, clip)

	snippet, _ := gallery.Snippet(1)
	clip.EXPECT().WriteText(snippet).Return(nil)

	stdout, stderr, err := executeCommand(t, "gallery", "--index", "1", "--copy")
	require.NoError(t, err)
	assert.Equal(t, snippet+"\n", stdout)
	assert.Contains(t, stderr, `Copied "Outline Button"`)
}

func TestGalleryCommand_CopyFailureStillPrints(t *testing.T) {
	setupHome(t)
	ctrl := gomock.NewController(t)
	clip := mocks.NewMockWriter(ctrl)
	useClipboard(t, clip)

	snippet, _ := gallery.Snippet(0)
	clip.EXPECT().WriteText(snippet).Return(errors.New("no clipboard utility available"))

	stdout, stderr, err := executeCommand(t, "gallery", "--index", "0", "--copy")
	require.NoError(t, err)
	assert.Equal(t, snippet+"\n", stdout)
	assert.NotContains(t, stderr, "Copied")
}
