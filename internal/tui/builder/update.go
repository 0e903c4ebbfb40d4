package builder

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
)

const (
	minPaneWidth  = 40
	controlsWidth = 34
	maxColourLen  = 9
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.export.Width = max(msg.Width-controlsWidth-6, minPaneWidth)
		m.export.Height = max(msg.Height-18, 6)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		switch m.viewMode {
		case ViewGallery:
			return m.handleGalleryKeys(msg)
		case ViewHelp:
			return m.handleHelpKeys(msg)
		default:
			return m.handleBuilderKeys(msg)
		}

	case CopyResultMsg:
		// Failed writes stay silent.
		if !msg.OK {
			return m, nil
		}
		if msg.target == copyExample {
			return m, expireCmd(m.copied.Copy(msg.Index), true)
		}
		return m, expireCmd(m.flash.Copy(int(msg.target)), false)

	case FeedbackExpiredMsg:
		if msg.gallery {
			m.copied.Expire(msg.Token)
		} else {
			m.flash.Expire(msg.Token)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleBuilderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.session.Store()
	ctl := m.selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		dir := 1
		if key.Matches(msg, m.keys.Left) {
			dir = -1
		}
		if !ctl.isEnabled(store.Snapshot()) {
			break
		}
		switch {
		case ctl.step != nil:
			ctl.step(store, dir)
		case ctl.toggle != nil:
			ctl.toggle(store)
		}

	case key.Matches(msg, m.keys.Toggle):
		if ctl.toggle != nil && ctl.isEnabled(store.Snapshot()) {
			ctl.toggle(store)
		}

	case key.Matches(msg, m.keys.Edit):
		if ctl.set != nil {
			return m.startEditing(ctl)
		}

	case key.Matches(msg, m.keys.Frame):
		m.frame = m.frame.Next()

	case key.Matches(msg, m.keys.CopyClasses):
		return m, copyCmd(m.clip, m.log, m.session.Resolution().ClassList(), copyClasses, 0)

	case key.Matches(msg, m.keys.CopySnippet):
		return m, copyCmd(m.clip, m.log, m.session.Resolution().Export, copySnippet, 0)

	case key.Matches(msg, m.keys.ScrollUp):
		m.export.HalfPageUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.export.HalfPageDown()

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset(m.initial)
		m.frame = 0

	case key.Matches(msg, m.keys.Gallery):
		m.viewMode = ViewGallery

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
	}

	m.syncExport()
	return m, nil
}

func (m Model) startEditing(ctl control) (tea.Model, tea.Cmd) {
	m.editing = true
	m.inputErr = ""
	m.input.Placeholder = ctl.name
	// Labels are free-form; colours top out at #rrggbbaa.
	m.input.CharLimit = 0
	if ctl.kind == kindColour {
		m.input.CharLimit = maxColourLen
	}
	m.input.SetValue(ctl.value(m.session.Config()))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil

	case tea.KeyEnter:
		ctl := m.selected()
		value := m.input.Value()
		if ctl.kind == kindColour && !validColour(value) {
			m.inputErr = "enter a hex colour such as #4f46e5"
			return m, nil
		}
		ctl.set(m.session.Store(), value)
		m.stopEditing()
		m.syncExport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.inputErr = ""
	m.input.Blur()
}

func (m Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Gallery):
		m.viewMode = ViewBuilder

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		m.moveGalleryCursor(-1)

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		m.moveGalleryCursor(1)

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.CopySnippet):
		snippet, ok := gallery.Snippet(m.galleryCursor)
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.clip, m.log, snippet, copyExample, m.galleryCursor)

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help):
		m.viewMode = ViewBuilder
	}
	return m, nil
}
