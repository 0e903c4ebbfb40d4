// Package clipboard is the best-effort bridge to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"go.trai.ch/zerr"

	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
)

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return zerr.New("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return zerr.With(zerr.Wrap(err, "write clipboard"), "bytes", len(text))
	}
	return nil
}

// Copy writes text and reports whether it landed. Failures are logged at
// debug level and otherwise swallowed; callers only use the result to decide
// whether to flash a confirmation.
func Copy(w Writer, log *logger.Logger, text string) bool {
	if w == nil {
		return false
	}
	if err := w.WriteText(text); err != nil {
		if log.DebugEnabled() {
			log.Error(err, "clipboard copy skipped")
		}
		return false
	}
	return true
}
