package builder

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buttonsmith/internal/clipboard"
	"github.com/alexisbeaulieu97/buttonsmith/internal/components"
	"github.com/alexisbeaulieu97/buttonsmith/internal/config"
	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
	"github.com/alexisbeaulieu97/buttonsmith/internal/logger"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/playground"
)

// Options configures a builder Model.
type Options struct {
	Initial        options.Config
	Clipboard      clipboard.Writer
	Logger         *logger.Logger
	HighlightStyle string
}

// Model is the interactive button builder.
type Model struct {
	// Core data
	session  *playground.Session
	controls []control
	initial  options.Config

	// UI state
	viewMode      ViewMode
	cursor        int
	galleryCursor int
	frame         components.Frame

	// Label and colour editing
	editing  bool
	input    textinput.Model
	inputErr string

	// Export pane
	export         viewport.Model
	exportKey      uint64
	highlightStyle string

	// Copy feedback; index 0 is the class list, 1 the snippet.
	flash  gallery.Tracker
	copied gallery.Tracker

	// Collaborators
	clip clipboard.Writer
	log  *logger.Logger

	keys keyMap
	help help.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates a builder seeded with opts.Initial.
func NewModel(opts Options) Model {
	style := opts.HighlightStyle
	if style == "" {
		style = config.DefaultHighlightStyle
	}

	input := textinput.New()
	input.Prompt = "› "

	m := Model{
		session:        playground.NewSession(opts.Initial, opts.Logger),
		controls:       defaultControls(),
		initial:        opts.Initial,
		viewMode:       ViewBuilder,
		frame:          components.FrameRest,
		input:          input,
		export:         viewport.New(60, 14),
		highlightStyle: style,
		clip:           opts.Clipboard,
		log:            opts.Logger,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          100,
		height:         32,
	}
	m.syncExport()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the live session.
func (m Model) Session() *playground.Session {
	return m.session
}

// Config returns the current button configuration.
func (m Model) Config() options.Config {
	return m.session.Config()
}

// ViewMode returns the active screen.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Frame returns the preview frame being shown.
func (m Model) Frame() components.Frame {
	return m.frame
}

// Editing reports whether the label or colour input has focus.
func (m Model) Editing() bool {
	return m.editing
}

// FlashVisible reports whether a builder "Copied!" flash is showing.
func (m Model) FlashVisible() bool {
	_, ok := m.flash.Copied()
	return ok
}

// CopiedExample returns the gallery card currently showing "Copied!".
func (m Model) CopiedExample() (int, bool) {
	return m.copied.Copied()
}

func (m Model) selected() control {
	return m.controls[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	n := len(m.controls)
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) moveGalleryCursor(delta int) {
	n := gallery.Len()
	m.galleryCursor = (m.galleryCursor + delta + n) % n
}

// syncExport re-highlights the export pane when the resolution changed.
func (m *Model) syncExport() {
	res := m.session.Resolution()
	key := playground.Fingerprint(res.Source)
	if key == m.exportKey && m.export.TotalLineCount() > 0 {
		return
	}
	m.exportKey = key
	m.export.SetContent(highlight(res.Export, m.highlightStyle))
}
