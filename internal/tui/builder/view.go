package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buttonsmith/internal/components"
	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
)

const labelColumn = 13

// View renders the current screen
func (m Model) View() string {
	switch m.viewMode {
	case ViewGallery:
		return m.renderGallery()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderBuilder()
	}
}

func (m Model) renderHeader(subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("buttonsmith"),
		subtitleStyle.PaddingLeft(1).Render(subtitle),
	)
}

func (m Model) renderBuilder() string {
	left := components.PaneStyle(true).Width(controlsWidth).Render(m.renderControls())
	rightWidth := max(m.width-controlsWidth-4, minPaneWidth)
	right := lipgloss.JoinVertical(lipgloss.Left,
		components.PaneStyle(false).Width(rightWidth).Render(m.renderPreview(rightWidth-4)),
		components.PaneStyle(false).Width(rightWidth).Render(m.renderExport()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader("Design a button, then copy the classes or the component."),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderControls() string {
	cfg := m.session.Config()
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Options"))
	b.WriteString("\n")

	for i, ctl := range m.controls {
		value := ctl.value(cfg)
		if ctl.kind == kindColour {
			value = lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ") + " " + value
		}
		line := fmt.Sprintf("%-*s %s", labelColumn, ctl.name, valueStyle.Render(value))

		switch {
		case !ctl.isEnabled(cfg):
			b.WriteString(disabledRowStyle.Render(fmt.Sprintf("%-*s %s", labelColumn, ctl.name, value)))
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")

		if i == m.cursor && m.editing {
			b.WriteString(rowStyle.Render(m.input.View()))
			b.WriteString("\n")
			if m.inputErr != "" {
				b.WriteString(rowStyle.Render(inputErrorStyle.Render(m.inputErr)))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderPreview(width int) string {
	res := m.session.Resolution()
	button := components.NewButtonPreview(res, components.PreviewOptions{Width: width}).View(m.frame)

	frame := fmt.Sprintf("Preview · %s", m.frame)
	if res.Interaction == nil {
		frame = "Preview · disabled"
	}

	parts := []string{
		sectionStyle.Render(frame),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, button),
		"",
		classListStyle.Width(width).Render(res.ClassList()),
	}
	if flash := m.renderFlash(); flash != "" {
		parts = append(parts, "", flash)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFlash() string {
	index, ok := m.flash.Copied()
	if !ok {
		return ""
	}
	what := "classes"
	if copyTarget(index) == copySnippet {
		what = "snippet"
	}
	return components.NewToast("Copied! ("+what+")", components.ToastSuccess).View()
}

func (m Model) renderExport() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Export"),
		m.export.View(),
	)
}

func (m Model) renderFooter() string {
	return footerStyle.Width(max(m.width-2, minPaneWidth)).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderGallery() string {
	cardWidth := 34
	perRow := max((m.width-2)/(cardWidth+1), 1)

	var rows []string
	var row []string
	for i, ex := range gallery.Examples() {
		card := components.NewCard(ex).
			WithWidth(cardWidth).
			WithSelected(i == m.galleryCursor).
			WithCopied(m.copied.IsCopied(i)).
			WithSnippet(i == m.galleryCursor)
		row = append(row, card.View())
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader("Ready-made button styles. Enter copies the selected snippet."),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		m.renderFooter(),
	)
}

func (m Model) renderHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader("Keyboard shortcuts"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		subtitleStyle.Render("Press esc or ? to go back."),
	)
}
