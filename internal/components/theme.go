package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour slot with base, on-base and muted tones.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by the app chrome.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Success ColourSet
	Danger  ColourSet
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
	BorderVariantHidden
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Hidden  lipgloss.Border
	Pill    lipgloss.Border
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains the text presets for the chrome.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme is the styling applied around the previewed button.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	// Canvas is the hex colour translucent fills are blended over.
	Canvas string
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if theme.Canvas == "" {
		theme.Canvas = "#ffffff"
	}
	return theme
}

func pillBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "(",
		Right:       ")",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#4f46e5", "#818cf8"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#4338ca", "#6366f1"),
		},
		Surface: ColourSet{
			Base:   ac("#f8fafc", "#0f172a"),
			OnBase: ac("#1e293b", "#e2e8f0"),
			Muted:  ac("#e2e8f0", "#1e293b"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#94a3b8", "#475569"),
		},
		Success: ColourSet{
			Base:   ac("#16a34a", "#4ade80"),
			OnBase: ac("#f0fdf4", "#052e16"),
			Muted:  ac("#15803d", "#22c55e"),
		},
		Danger: ColourSet{
			Base:   ac("#dc2626", "#f87171"),
			OnBase: ac("#fef2f2", "#450a0a"),
			Muted:  ac("#b91c1c", "#ef4444"),
		},
	}

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Hidden:  lipgloss.HiddenBorder(),
			Pill:    pillBorder(),
		},
		Typography: defaultTypography(palette),
		Canvas:     "#ffffff",
	}
	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Code:     body.Foreground(p.Primary.Muted).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
		Muted:    body.Foreground(p.Neutral.Muted).Faint(true),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#111827"},
	}
	theme.Typography = defaultTypography(theme.Palette)
	theme.Canvas = "#0b1120"
	return normalizeTheme(theme)
}

// ThemeByName maps a config theme name to a Theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "light":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	typo := GetTheme().Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantHidden:
		return theme.Borders.Hidden
	default:
		return theme.Borders.Normal
	}
}

func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(variant))
	}
}

// PaneStyle is the bordered frame around each TUI pane.
func PaneStyle(focused bool) lipgloss.Style {
	style := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), Padding(0, 1))
	if focused {
		return style.BorderForeground(GetTheme().Palette.Primary.Base)
	}
	return style.BorderForeground(GetTheme().Palette.Neutral.Muted)
}
