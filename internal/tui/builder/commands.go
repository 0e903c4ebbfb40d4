package builder

import (
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
)

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(w clipboard.Writer, log *logger.Logger, text string, target copyTarget, index int) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{
			target: target,
			Index:  index,
			OK:     clipboard.Copy(w, log, text),
		}
	}
}

// expireCmd schedules the end of a "Copied!" indicator.
func expireCmd(token gallery.Token, forGallery bool) tea.Cmd {
	return tea.Tick(gallery.FeedbackDelay, func(time.Time) tea.Msg {
		return FeedbackExpiredMsg{gallery: forGallery, Token: token}
	})
}

// highlight colours the export snippet for the terminal. It falls back to
// the plain text when chroma cannot render it.
func highlight(source, style string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, "tsx", "terminal256", style); err != nil {
		return source
	}
	return sb.String()
}
