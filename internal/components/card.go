package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
)

const (
	copyAction   = "Copy Code"
	copiedAction = "Copied!"
)

// CardStyle defines the visual appearance of a gallery card.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ActionStyle  lipgloss.Style
	CopiedStyle  lipgloss.Style
	SnippetStyle lipgloss.Style
	Width        int
}

// DefaultCardStyle returns a card style using the current theme.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		BorderStyle: Style(lipgloss.NewStyle(), Border(BorderVariantRounded), Padding(0, 1)).
			BorderForeground(GetTheme().Palette.Neutral.Muted),
		TitleStyle:   Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis)),
		ActionStyle:  Style(lipgloss.NewStyle(), Background(PaletteNeutral), Padding(0, 1)),
		CopiedStyle:  Style(lipgloss.NewStyle(), Background(PaletteSuccess), Padding(0, 1)),
		SnippetStyle: Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted)),
		Width:        34,
	}
}

// Card renders one gallery example with its copy action.
type Card struct {
	example  gallery.Example
	style    CardStyle
	selected bool
	copied   bool
	snippet  bool
}

// NewCard creates a card for ex.
func NewCard(ex gallery.Example) *Card {
	return &Card{example: ex, style: DefaultCardStyle()}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithSelected highlights the card border.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

// WithCopied swaps the action label to its confirmation text.
func (c *Card) WithCopied(copied bool) *Card {
	c.copied = copied
	return c
}

// WithSnippet appends the literal snippet below the action.
func (c *Card) WithSnippet(show bool) *Card {
	c.snippet = show
	return c
}

// ActionLabel is the text on the card's copy button.
func (c *Card) ActionLabel() string {
	if c.copied {
		return copiedAction
	}
	return copyAction
}

// View renders the card.
func (c *Card) View() string {
	inner := max(c.style.Width-c.style.BorderStyle.GetHorizontalFrameSize(), 1)

	action := c.style.ActionStyle
	if c.copied {
		action = c.style.CopiedStyle
	}

	parts := []string{
		c.style.TitleStyle.Render(c.example.Title),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, ExampleButton(c.example)),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, action.Render(c.ActionLabel())),
	}
	if c.snippet {
		parts = append(parts, "", c.style.SnippetStyle.Width(inner).Render(c.example.Snippet))
	}

	border := c.style.BorderStyle.Width(inner)
	if c.selected {
		border = border.Border(GetTheme().Borders.Thick).BorderForeground(GetTheme().Palette.Primary.Base)
	}
	return border.Render(strings.Join(parts, "\n"))
}

// ExampleButton renders the static descriptor of a gallery example.
func ExampleButton(ex gallery.Example) string {
	style := lipgloss.NewStyle().Padding(0, 2).Border(GetTheme().Borders.Rounded)

	if ex.Background != nil {
		if color, ok := PaletteColor(ex.Background.Family, ex.Background.Shade); ok {
			style = style.Background(color)
		}
	}
	if color, ok := PaletteColor(ex.Foreground.Family, ex.Foreground.Shade); ok {
		style = style.Foreground(color)
	}
	if ex.Border != nil {
		if color, ok := PaletteColor(ex.Border.Family, ex.Border.Shade); ok {
			style = style.BorderForeground(color)
		}
	} else {
		style = style.Border(GetTheme().Borders.Hidden)
	}

	label := ex.Label
	switch ex.IconSide {
	case gallery.IconBefore:
		label = iconGlyphFor(ex.Icon) + " " + label
	case gallery.IconAfter:
		label = label + " " + iconGlyphFor(ex.Icon)
	}
	return style.Bold(true).Render(label)
}

func iconGlyphFor(name string) string {
	switch name {
	case "Heart":
		return "♥"
	case "ArrowRight":
		return "→"
	default:
		return IconGlyph
	}
}
