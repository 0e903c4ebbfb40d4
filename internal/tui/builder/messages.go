package builder

import "github.com/alexisbeaulieu97/buttonsmith/internal/gallery"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewBuilder ViewMode = iota
	ViewGallery
	ViewHelp
)

// copyTarget says what a clipboard write carried.
type copyTarget int

const (
	copyClasses copyTarget = iota
	copySnippet
	copyExample
)

// CopyResultMsg reports the outcome of a clipboard write. Index is the
// gallery card for copyExample.
type CopyResultMsg struct {
	target copyTarget
	Index  int
	OK     bool
}

// FeedbackExpiredMsg clears a "Copied!" indicator if its token is still current.
type FeedbackExpiredMsg struct {
	gallery bool
	Token   gallery.Token
}
