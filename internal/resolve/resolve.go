// Package resolve maps a button configuration to the class list, preview
// directives and export snippet that reproduce it. Everything here is pure:
// the same Config always yields the same Resolution.
package resolve

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
)

// IconPlacement says where the icon sits relative to the label.
type IconPlacement int

const (
	IconNone IconPlacement = iota
	IconLeft
	IconRight
)

// InlineStyle is the inline style the live preview applies on top of the classes.
type InlineStyle struct {
	Background string
	Color      string
	Border     string
	GapPx      int
}

// Interaction holds the hover and press directives handed to the renderer.
type Interaction struct {
	HoverBackground string
	HoverScale      float64
	PressBackground string
	PressScale      float64
}

// Resolution is everything derived from one Config.
type Resolution struct {
	Source  options.Config
	Classes []string
	Label   string
	Icon    IconPlacement
	Inline  InlineStyle
	// Interaction is nil while the button is disabled.
	Interaction *Interaction
	Export      string
}

// ClassList joins the class tokens with single spaces.
func (r Resolution) ClassList() string {
	return strings.Join(r.Classes, " ")
}

// values are the sub-values shared by the class list, the preview and the
// export text. Deriving them once keeps the three outputs in agreement.
type values struct {
	label      string
	background string
	text       string
	border     string
	hover      string
	active     string
	hoverScale string
	pressScale string
	gap        int
	icon       IconPlacement
}

func derive(cfg options.Config) values {
	return values{
		label:      DisplayLabel(cfg),
		background: cfg.Background,
		text:       cfg.Text,
		border:     cfg.Border,
		hover:      cfg.Hover,
		active:     cfg.Active,
		hoverScale: FormatScale(cfg.HoverScale),
		pressScale: FormatScale(cfg.PressScale),
		gap:        cfg.Gap,
		icon:       placement(cfg),
	}
}

// Resolve computes the Resolution for cfg.
func Resolve(cfg options.Config) Resolution {
	v := derive(cfg)
	classes := composeClasses(cfg, v)

	res := Resolution{
		Source:  cfg,
		Classes: classes,
		Label:   v.label,
		Icon:    v.icon,
		Inline:  inlineStyle(cfg, v),
	}

	if !cfg.Disabled {
		res.Interaction = &Interaction{
			HoverBackground: v.hover,
			HoverScale:      cfg.HoverScale,
			PressBackground: v.active,
			PressScale:      cfg.PressScale,
		}
	}

	res.Export = renderExport(v, strings.Join(classes, " "), cfg.Disabled)
	return res
}

// DisplayLabel returns the label exactly as both the preview and the export show it.
func DisplayLabel(cfg options.Config) string {
	if !cfg.Uppercase {
		return cfg.Label
	}
	return cases.Upper(language.Und).String(cfg.Label)
}

// FormatScale renders a scale factor with two decimals, e.g. 1.03.
func FormatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', 2, 64)
}

func placement(cfg options.Config) IconPlacement {
	switch {
	case !cfg.WithIcon:
		return IconNone
	case cfg.IconRight:
		return IconRight
	default:
		return IconLeft
	}
}

// composeClasses builds the canonical class order: layout, size, radius,
// weight, state, then the variant rules. Casing is carried by the label text
// alone so toggling it never touches the class list.
func composeClasses(cfg options.Config, v values) []string {
	groups := []string{
		widthClass(cfg.FullWidth),
		baseClasses,
		sizeClasses(cfg.Size),
		radiusClass(cfg.Radius),
		weightClass(cfg.Weight),
	}
	if cfg.Disabled {
		groups = append(groups, disabledClasses)
	} else {
		groups = append(groups, cursorClass)
	}
	groups = append(groups, variantClasses(cfg, v)...)

	var classes []string
	for _, group := range groups {
		classes = append(classes, strings.Fields(group)...)
	}
	return classes
}

func inlineStyle(cfg options.Config, v values) InlineStyle {
	style := InlineStyle{
		Background: "transparent",
		Color:      v.background,
		Border:     v.border,
		GapPx:      v.gap,
	}
	if cfg.Variant == options.VariantSolid || cfg.Variant == options.VariantSoft {
		style.Background = v.background
	}
	if cfg.Variant == options.VariantSolid {
		style.Color = v.text
	}
	return style
}
