package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

// IconGlyph stands in for the Sparkles icon in the terminal.
const IconGlyph = "✦"

const (
	softFillAlpha   = 0.12
	softBorderAlpha = 0.20
	pxPerCell       = 4
)

// Frame selects which interaction state the preview shows.
type Frame int

const (
	FrameRest Frame = iota
	FrameHover
	FramePress
)

var frameNames = [...]string{"rest", "hover", "press"}

func (f Frame) String() string {
	if f < FrameRest || f > FramePress {
		return "rest"
	}
	return frameNames[f]
}

// Next cycles rest, hover, press.
func (f Frame) Next() Frame {
	return (f + 1) % (FramePress + 1)
}

// PreviewOptions controls where the preview is drawn.
type PreviewOptions struct {
	// Width is the pane width a full-width button stretches to.
	Width int
}

// ButtonPreview renders a Resolution as a terminal button.
type ButtonPreview struct {
	res     resolve.Resolution
	options PreviewOptions
}

// NewButtonPreview creates a preview for res.
func NewButtonPreview(res resolve.Resolution, opts PreviewOptions) *ButtonPreview {
	return &ButtonPreview{res: res, options: opts}
}

// WithWidth sets the pane width.
func (b *ButtonPreview) WithWidth(width int) *ButtonPreview {
	b.options.Width = width
	return b
}

// View renders the button in the given frame. Disabled buttons always render at rest.
func (b *ButtonPreview) View(frame Frame) string {
	return b.Style(frame).Render(b.Content())
}

// Content is the label with the icon glyph placed on its side.
func (b *ButtonPreview) Content() string {
	gap := strings.Repeat(" ", GapCells(b.res.Inline.GapPx))
	switch b.res.Icon {
	case resolve.IconLeft:
		return IconGlyph + gap + b.res.Label
	case resolve.IconRight:
		return b.res.Label + gap + IconGlyph
	default:
		return b.res.Label
	}
}

// Style builds the lipgloss style for a frame.
func (b *ButtonPreview) Style(frame Frame) lipgloss.Style {
	cfg := b.res.Source
	theme := GetTheme()
	if b.res.Interaction == nil {
		frame = FrameRest
	}

	vertical, horizontal := sizePadding(cfg.Size)
	horizontal = scaledPadding(horizontal, lipgloss.Width(b.Content()), frameScale(b.res.Interaction, frame))

	style := lipgloss.NewStyle().
		Padding(vertical, horizontal).
		Border(radiusBorder(theme, cfg.Radius)).
		Bold(cfg.Weight == options.WeightSemibold || cfg.Weight == options.WeightBold).
		Faint(cfg.Weight == options.WeightNormal).
		Align(lipgloss.Center)

	if cfg.Variant == options.VariantLink {
		style = style.Underline(frame == FrameHover)
	}

	if fill, ok := b.fill(frame, theme.Canvas); ok {
		style = style.Background(fill)
	}
	style = style.Foreground(lipgloss.Color(b.res.Inline.Color))
	style = style.BorderForeground(b.borderColor(theme.Canvas))

	if cfg.FullWidth && b.options.Width > 0 {
		style = style.Width(max(b.options.Width-style.GetHorizontalBorderSize(), 1))
	}
	if cfg.Disabled {
		style = style.Faint(true)
	}
	return style
}

func (b *ButtonPreview) fill(frame Frame, canvas string) (lipgloss.Color, bool) {
	switch frame {
	case FrameHover:
		return lipgloss.Color(b.res.Interaction.HoverBackground), true
	case FramePress:
		return lipgloss.Color(b.res.Interaction.PressBackground), true
	}
	switch b.res.Source.Variant {
	case options.VariantSolid:
		return lipgloss.Color(b.res.Inline.Background), true
	case options.VariantSoft:
		return lipgloss.Color(Blend(canvas, b.res.Inline.Background, softFillAlpha)), true
	default:
		return "", false
	}
}

func (b *ButtonPreview) borderColor(canvas string) lipgloss.TerminalColor {
	switch b.res.Source.Variant {
	case options.VariantGhost, options.VariantLink:
		return lipgloss.NoColor{}
	case options.VariantSoft:
		return lipgloss.Color(Blend(canvas, b.res.Source.Background, softBorderAlpha))
	default:
		return lipgloss.Color(b.res.Inline.Border)
	}
}

// Blend mixes overlay onto base at alpha, standing in for CSS opacity
// modifiers like bg-[#hex]/12. Unparseable colours fall back to overlay.
func Blend(base, overlay string, alpha float64) string {
	from, err := colorful.Hex(base)
	if err != nil {
		return overlay
	}
	to, err := colorful.Hex(overlay)
	if err != nil {
		return overlay
	}
	return from.BlendRgb(to, alpha).Clamped().Hex()
}

// GapCells converts a pixel gap to terminal cells, four pixels per cell.
func GapCells(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + pxPerCell/2) / pxPerCell
}

func sizePadding(size options.Size) (vertical, horizontal int) {
	switch size {
	case options.SizeSmall:
		return 0, 1
	case options.SizeLarge:
		return 1, 3
	case options.SizeExtraLarge:
		return 1, 4
	default:
		return 0, 2
	}
}

func radiusBorder(theme Theme, radius options.Radius) lipgloss.Border {
	switch radius {
	case options.RadiusNone:
		return theme.Borders.Normal
	case options.RadiusFull:
		return theme.Borders.Pill
	default:
		return theme.Borders.Rounded
	}
}

func frameScale(in *resolve.Interaction, frame Frame) float64 {
	if in == nil {
		return 1
	}
	switch frame {
	case FrameHover:
		return in.HoverScale
	case FramePress:
		return in.PressScale
	default:
		return 1
	}
}

// scaledPadding grows or shrinks horizontal padding so the button's width
// tracks the scale factor.
func scaledPadding(padding, contentWidth int, scale float64) int {
	width := float64(contentWidth + 2*padding)
	delta := int(math.Round((scale - 1) * width / 2))
	return max(padding+delta, 0)
}
