package config

import (
	"go.trai.ch/zerr"

	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
)

// Apply overlays the configured defaults onto base.
func (c *Config) Apply(base options.Config) (options.Config, error) {
	if c == nil {
		return base, nil
	}
	d := c.Defaults
	out := base

	if err := applyEnum(d.Size, options.ParseSize, &out.Size); err != nil {
		return base, err
	}
	if err := applyEnum(d.Variant, options.ParseVariant, &out.Variant); err != nil {
		return base, err
	}
	if err := applyEnum(d.Radius, options.ParseRadius, &out.Radius); err != nil {
		return base, err
	}
	if err := applyEnum(d.Weight, options.ParseWeight, &out.Weight); err != nil {
		return base, err
	}

	set(d.Label, &out.Label)
	set(d.FullWidth, &out.FullWidth)
	set(d.Disabled, &out.Disabled)
	set(d.Shadow, &out.Shadow)
	set(d.Uppercase, &out.Uppercase)
	set(d.Icon, &out.WithIcon)
	set(d.IconRight, &out.IconRight)
	set(d.Background, &out.Background)
	set(d.Text, &out.Text)
	set(d.Border, &out.Border)
	set(d.Hover, &out.Hover)
	set(d.Active, &out.Active)
	set(d.HoverScale, &out.HoverScale)
	set(d.PressScale, &out.PressScale)
	set(d.Gap, &out.Gap)

	return out, nil
}

func set[T any](src *T, dst *T) {
	if src != nil {
		*dst = *src
	}
}

func applyEnum[T any](src *string, parse func(string) (T, error), dst *T) error {
	if src == nil {
		return nil
	}
	value, err := parse(*src)
	if err != nil {
		return zerr.Wrap(err, "apply config defaults")
	}
	*dst = value
	return nil
}
