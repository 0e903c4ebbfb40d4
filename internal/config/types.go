package config

// Config is the optional buttonsmith settings file.
type Config struct {
	Log      LogConfig `yaml:"log" toml:"log"`
	TUI      TUIConfig `yaml:"tui" toml:"tui"`
	Defaults Defaults  `yaml:"defaults" toml:"defaults"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	// File receives log output while the TUI owns the terminal.
	File  string `yaml:"file" toml:"file" validate:"omitempty,log_path"`
	Human *bool  `yaml:"human" toml:"human"`
}

// TUIConfig tunes the interactive program.
type TUIConfig struct {
	AltScreen      *bool  `yaml:"alt_screen" toml:"alt_screen"`
	HighlightStyle string `yaml:"highlight_style" toml:"highlight_style" validate:"omitempty,chroma_style"`
	Theme          string `yaml:"theme" toml:"theme" validate:"omitempty,oneof=light dark"`
}

// Defaults overrides the initial button options. Unset fields keep the
// built-in defaults.
type Defaults struct {
	Label      *string  `yaml:"label" toml:"label"`
	Size       *string  `yaml:"size" toml:"size" validate:"omitempty,oneof=sm md lg xl"`
	Variant    *string  `yaml:"variant" toml:"variant" validate:"omitempty,oneof=solid outline ghost link soft"`
	Radius     *string  `yaml:"radius" toml:"radius" validate:"omitempty,oneof=none sm lg full"`
	Weight     *string  `yaml:"weight" toml:"weight" validate:"omitempty,oneof=normal medium semibold bold"`
	FullWidth  *bool    `yaml:"full_width" toml:"full_width"`
	Disabled   *bool    `yaml:"disabled" toml:"disabled"`
	Shadow     *bool    `yaml:"shadow" toml:"shadow"`
	Uppercase  *bool    `yaml:"uppercase" toml:"uppercase"`
	Icon       *bool    `yaml:"icon" toml:"icon"`
	IconRight  *bool    `yaml:"icon_right" toml:"icon_right"`
	Background *string  `yaml:"bg" toml:"bg" validate:"omitempty,hexcolor"`
	Text       *string  `yaml:"text" toml:"text" validate:"omitempty,hexcolor"`
	Border     *string  `yaml:"border" toml:"border" validate:"omitempty,hexcolor"`
	Hover      *string  `yaml:"hover" toml:"hover" validate:"omitempty,hexcolor"`
	Active     *string  `yaml:"active" toml:"active" validate:"omitempty,hexcolor"`
	HoverScale *float64 `yaml:"hover_scale" toml:"hover_scale" validate:"omitempty,min=1,max=1.15,scale_step"`
	PressScale *float64 `yaml:"press_scale" toml:"press_scale" validate:"omitempty,min=0.9,max=1,scale_step"`
	Gap        *int     `yaml:"gap" toml:"gap" validate:"omitempty,min=0,max=24"`
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() string {
	if c == nil || c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// AltScreen reports whether the TUI should use the alternate screen. Defaults to true.
func (c *Config) AltScreen() bool {
	if c == nil || c.TUI.AltScreen == nil {
		return true
	}
	return *c.TUI.AltScreen
}

// HumanLogs reports whether logs use the console writer. Defaults to true.
func (c *Config) HumanLogs() bool {
	if c == nil || c.Log.Human == nil {
		return true
	}
	return *c.Log.Human
}

// HighlightStyle returns the chroma style for the export pane.
func (c *Config) HighlightStyle() string {
	if c == nil || c.TUI.HighlightStyle == "" {
		return DefaultHighlightStyle
	}
	return c.TUI.HighlightStyle
}

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "dracula"

// LogFile returns the configured log destination, or "" for stderr.
func (c *Config) LogFile() string {
	if c == nil {
		return ""
	}
	return c.Log.File
}

// ThemeName returns the configured TUI theme name.
func (c *Config) ThemeName() string {
	if c == nil {
		return ""
	}
	return c.TUI.Theme
}
