package options

// Widget bounds. The store never enforces these; the input layer does.
const (
	MinHoverScale = 1.00
	MaxHoverScale = 1.15
	MinPressScale = 0.90
	MaxPressScale = 1.00
	ScaleStep     = 0.01

	MinGap = 0
	MaxGap = 24
)

// Config is the full set of presentational options for the button.
type Config struct {
	Label   string
	Size    Size
	Variant Variant
	Radius  Radius
	Weight  Weight

	FullWidth bool
	Disabled  bool
	Shadow    bool
	Uppercase bool
	WithIcon  bool
	IconRight bool

	Background string
	Text       string
	Border     string
	Hover      string
	Active     string

	HoverScale float64
	PressScale float64
	Gap        int
}

// Defaults returns the configuration every session starts from.
func Defaults() Config {
	return Config{
		Label:      "Launch",
		Size:       SizeMedium,
		Variant:    VariantSolid,
		Radius:     RadiusLarge,
		Weight:     WeightSemibold,
		Shadow:     true,
		WithIcon:   true,
		Background: "#4f46e5",
		Text:       "#ffffff",
		Border:     "#4f46e5",
		Hover:      "#2563eb",
		Active:     "#1d4ed8",
		HoverScale: 1.03,
		PressScale: 0.98,
		Gap:        8,
	}
}

// IconRightEnabled reports whether the icon-right control has any effect.
func (c Config) IconRightEnabled() bool {
	return c.WithIcon
}
