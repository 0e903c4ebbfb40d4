package builder

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/buttonsmith/internal/components"
	"github.com/alexisbeaulieu97/buttonsmith/internal/config"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

type controlKind int

const (
	kindText controlKind = iota
	kindColour
	kindCycle
	kindToggle
	kindSlider
)

// control is one row of the options pane. Only the hooks matching its kind are set.
type control struct {
	name    string
	kind    controlKind
	value   func(options.Config) string
	enabled func(options.Config) bool
	step    func(s *options.Store, dir int)
	toggle  func(s *options.Store)
	set     func(s *options.Store, text string)
}

func (c control) isEnabled(cfg options.Config) bool {
	return c.enabled == nil || c.enabled(cfg)
}

func cycle[T comparable](all []T, current T, dir int) T {
	for i, v := range all {
		if v == current {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return all[0]
}

// stepScale moves a scale by one hundredth and keeps it inside [lo, hi].
func stepScale(value float64, dir int, lo, hi float64) float64 {
	next := math.Round((value+float64(dir)*options.ScaleStep)*100) / 100
	return math.Min(math.Max(next, lo), hi)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// validColour is the input-side guard; the store itself never validates.
func validColour(text string) bool {
	return config.GetValidator().Var(text, "required,hexcolor") == nil
}

func cycleControl[T comparable](name string, all func() []T, get func(options.Config) T, set func(*options.Store, T), label func(T) string) control {
	return control{
		name:  name,
		kind:  kindCycle,
		value: func(cfg options.Config) string { return label(get(cfg)) },
		step: func(s *options.Store, dir int) {
			set(s, cycle(all(), get(s.Snapshot()), dir))
		},
	}
}

func toggleControl(name string, get func(options.Config) bool, set func(*options.Store, bool)) control {
	return control{
		name:   name,
		kind:   kindToggle,
		value:  func(cfg options.Config) string { return onOff(get(cfg)) },
		toggle: func(s *options.Store) { set(s, !get(s.Snapshot())) },
	}
}

// colourControl steps through the swatch list with left/right and takes any
// hex colour through the text input. A typed colour outside the list steps to
// the first swatch.
func colourControl(name string, get func(options.Config) string, set func(*options.Store, string)) control {
	return control{
		name:  name,
		kind:  kindColour,
		value: get,
		set:   set,
		step: func(s *options.Store, dir int) {
			set(s, cycle(components.Swatches(), strings.ToLower(get(s.Snapshot())), dir))
		},
	}
}

func defaultControls() []control {
	return []control{
		{
			name:  "Label",
			kind:  kindText,
			value: func(cfg options.Config) string { return cfg.Label },
			set:   (*options.Store).SetLabel,
		},
		cycleControl("Size", options.AllSizes, func(c options.Config) options.Size { return c.Size }, (*options.Store).SetSize, options.Size.String),
		cycleControl("Variant", options.AllVariants, func(c options.Config) options.Variant { return c.Variant }, (*options.Store).SetVariant, options.Variant.String),
		cycleControl("Radius", options.AllRadii, func(c options.Config) options.Radius { return c.Radius }, (*options.Store).SetRadius, options.Radius.String),
		cycleControl("Weight", options.AllWeights, func(c options.Config) options.Weight { return c.Weight }, (*options.Store).SetWeight, options.Weight.String),
		toggleControl("Full width", func(c options.Config) bool { return c.FullWidth }, (*options.Store).SetFullWidth),
		toggleControl("Disabled", func(c options.Config) bool { return c.Disabled }, (*options.Store).SetDisabled),
		toggleControl("Shadow", func(c options.Config) bool { return c.Shadow }, (*options.Store).SetShadow),
		toggleControl("Uppercase", func(c options.Config) bool { return c.Uppercase }, (*options.Store).SetUppercase),
		toggleControl("Icon", func(c options.Config) bool { return c.WithIcon }, (*options.Store).SetWithIcon),
		func() control {
			c := toggleControl("Icon right", func(c options.Config) bool { return c.IconRight }, (*options.Store).SetIconRight)
			c.enabled = func(cfg options.Config) bool { return cfg.WithIcon }
			return c
		}(),
		colourControl("Background", func(c options.Config) string { return c.Background }, (*options.Store).SetBackground),
		colourControl("Text", func(c options.Config) string { return c.Text }, (*options.Store).SetText),
		colourControl("Border", func(c options.Config) string { return c.Border }, (*options.Store).SetBorder),
		colourControl("Hover", func(c options.Config) string { return c.Hover }, (*options.Store).SetHover),
		colourControl("Active", func(c options.Config) string { return c.Active }, (*options.Store).SetActive),
		{
			name:  "Hover scale",
			kind:  kindSlider,
			value: func(cfg options.Config) string { return resolve.FormatScale(cfg.HoverScale) },
			step: func(s *options.Store, dir int) {
				s.SetHoverScale(stepScale(s.HoverScale(), dir, options.MinHoverScale, options.MaxHoverScale))
			},
		},
		{
			name:  "Press scale",
			kind:  kindSlider,
			value: func(cfg options.Config) string { return resolve.FormatScale(cfg.PressScale) },
			step: func(s *options.Store, dir int) {
				s.SetPressScale(stepScale(s.PressScale(), dir, options.MinPressScale, options.MaxPressScale))
			},
		},
		{
			name:  "Gap",
			kind:  kindSlider,
			value: func(cfg options.Config) string { return strconv.Itoa(cfg.Gap) + "px" },
			step: func(s *options.Store, dir int) {
				s.SetGap(min(max(s.Gap()+dir, options.MinGap), options.MaxGap))
			},
		},
	}
}
