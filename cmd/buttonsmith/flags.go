package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonsmith/internal/config"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// optionFlags mirrors the defaults section of the config file so both go
// through the same validation.
type optionFlags struct {
	label      string
	size       string
	variant    string
	radius     string
	weight     string
	fullWidth  bool
	disabled   bool
	shadow     bool
	uppercase  bool
	icon       bool
	iconRight  bool
	bg         string
	text       string
	border     string
	hover      string
	active     string
	hoverScale float64
	pressScale float64
	gap        int
}

func (f *optionFlags) register(cmd *cobra.Command) {
	d := options.Defaults()
	fs := cmd.Flags()

	fs.StringVar(&f.label, "label", d.Label, "Button label")
	fs.StringVar(&f.size, "size", d.Size.String(), "Size ("+strings.Join(options.SizeNames(), ", ")+")")
	fs.StringVar(&f.variant, "variant", d.Variant.String(), "Variant ("+strings.Join(options.VariantNames(), ", ")+")")
	fs.StringVar(&f.radius, "radius", d.Radius.String(), "Corner radius ("+strings.Join(options.RadiusNames(), ", ")+")")
	fs.StringVar(&f.weight, "weight", d.Weight.String(), "Font weight ("+strings.Join(options.WeightNames(), ", ")+")")
	fs.BoolVar(&f.fullWidth, "full-width", d.FullWidth, "Stretch to the container width")
	fs.BoolVar(&f.disabled, "disabled", d.Disabled, "Render the disabled state")
	fs.BoolVar(&f.shadow, "shadow", d.Shadow, "Add a drop shadow")
	fs.BoolVar(&f.uppercase, "uppercase", d.Uppercase, "Uppercase the label")
	fs.BoolVar(&f.icon, "icon", d.WithIcon, "Show the sparkles icon")
	fs.BoolVar(&f.iconRight, "icon-right", d.IconRight, "Place the icon after the label")
	fs.StringVar(&f.bg, "bg", d.Background, "Background colour")
	fs.StringVar(&f.text, "text", d.Text, "Text colour")
	fs.StringVar(&f.border, "border", d.Border, "Border colour")
	fs.StringVar(&f.hover, "hover", d.Hover, "Hover background colour")
	fs.StringVar(&f.active, "active", d.Active, "Pressed background colour")
	fs.Float64Var(&f.hoverScale, "hover-scale", d.HoverScale, "Scale while hovered (1.00-1.15)")
	fs.Float64Var(&f.pressScale, "press-scale", d.PressScale, "Scale while pressed (0.90-1.00)")
	fs.IntVar(&f.gap, "gap", d.Gap, "Icon gap in pixels (0-24)")
}

// overrides collects only the flags the user set explicitly.
func (f *optionFlags) overrides(cmd *cobra.Command) config.Defaults {
	fs := cmd.Flags()
	var d config.Defaults

	str := func(name string, value string) *string {
		if !fs.Changed(name) {
			return nil
		}
		return &value
	}
	boolean := func(name string, value bool) *bool {
		if !fs.Changed(name) {
			return nil
		}
		return &value
	}

	d.Label = str("label", f.label)
	d.Size = str("size", f.size)
	d.Variant = str("variant", f.variant)
	d.Radius = str("radius", f.radius)
	d.Weight = str("weight", f.weight)
	d.FullWidth = boolean("full-width", f.fullWidth)
	d.Disabled = boolean("disabled", f.disabled)
	d.Shadow = boolean("shadow", f.shadow)
	d.Uppercase = boolean("uppercase", f.uppercase)
	d.Icon = boolean("icon", f.icon)
	d.IconRight = boolean("icon-right", f.iconRight)
	d.Background = str("bg", f.bg)
	d.Text = str("text", f.text)
	d.Border = str("border", f.border)
	d.Hover = str("hover", f.hover)
	d.Active = str("active", f.active)
	if fs.Changed("hover-scale") {
		d.HoverScale = &f.hoverScale
	}
	if fs.Changed("press-scale") {
		d.PressScale = &f.pressScale
	}
	if fs.Changed("gap") {
		d.Gap = &f.gap
	}
	return d
}

// resolveOptions layers the config file and then the explicit flags over
// the built-in defaults.
func (f *optionFlags) resolveOptions(cmd *cobra.Command, app *AppContext) (options.Config, error) {
	base, err := app.Initial()
	if err != nil {
		return base, err
	}

	overlay := &config.Config{Defaults: f.overrides(cmd)}
	if err := config.ValidateConfig(overlay); err != nil {
		return base, newCommandError(cmd.Name(), "validating option flags", err, "Run '"+cmd.CommandPath()+" --help' to see the accepted values.")
	}

	cfg, err := overlay.Apply(base)
	if err != nil {
		return base, newCommandError(cmd.Name(), "applying option flags", err, "Run '"+cmd.CommandPath()+" --help' to see the accepted values.")
	}
	return cfg, nil
}
