package options

// Store holds the single live Config for a session. It is a plain holder:
// setters never validate, clamp, or derive other fields. Listeners run
// synchronously after every change, on the caller's goroutine.
type Store struct {
	cfg       Config
	listeners []func(Config)
}

// NewStore creates a store seeded with the given configuration.
func NewStore(initial Config) *Store {
	return &Store{cfg: initial}
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() Config {
	return s.cfg
}

// OnChange registers fn to be called with the new configuration after each change.
func (s *Store) OnChange(fn func(Config)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Replace swaps in a whole configuration, e.g. when resetting to defaults.
func (s *Store) Replace(cfg Config) {
	if s.cfg == cfg {
		return
	}
	s.cfg = cfg
	s.notify()
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.cfg)
	}
}

func setField[T comparable](s *Store, field *T, value T) {
	if *field == value {
		return
	}
	*field = value
	s.notify()
}

func (s *Store) Label() string         { return s.cfg.Label }
func (s *Store) SetLabel(label string) { setField(s, &s.cfg.Label, label) }

func (s *Store) Size() Size        { return s.cfg.Size }
func (s *Store) SetSize(size Size) { setField(s, &s.cfg.Size, size) }

func (s *Store) Variant() Variant           { return s.cfg.Variant }
func (s *Store) SetVariant(variant Variant) { setField(s, &s.cfg.Variant, variant) }

func (s *Store) Radius() Radius          { return s.cfg.Radius }
func (s *Store) SetRadius(radius Radius) { setField(s, &s.cfg.Radius, radius) }

func (s *Store) Weight() Weight          { return s.cfg.Weight }
func (s *Store) SetWeight(weight Weight) { setField(s, &s.cfg.Weight, weight) }

func (s *Store) FullWidth() bool      { return s.cfg.FullWidth }
func (s *Store) SetFullWidth(on bool) { setField(s, &s.cfg.FullWidth, on) }

func (s *Store) Disabled() bool      { return s.cfg.Disabled }
func (s *Store) SetDisabled(on bool) { setField(s, &s.cfg.Disabled, on) }

func (s *Store) Shadow() bool      { return s.cfg.Shadow }
func (s *Store) SetShadow(on bool) { setField(s, &s.cfg.Shadow, on) }

func (s *Store) Uppercase() bool      { return s.cfg.Uppercase }
func (s *Store) SetUppercase(on bool) { setField(s, &s.cfg.Uppercase, on) }

func (s *Store) WithIcon() bool      { return s.cfg.WithIcon }
func (s *Store) SetWithIcon(on bool) { setField(s, &s.cfg.WithIcon, on) }

func (s *Store) IconRight() bool { return s.cfg.IconRight }

// SetIconRight stores the flag even while WithIcon is off; it simply has no
// visible effect until the icon is enabled again.
func (s *Store) SetIconRight(on bool) { setField(s, &s.cfg.IconRight, on) }

func (s *Store) Background() string         { return s.cfg.Background }
func (s *Store) SetBackground(color string) { setField(s, &s.cfg.Background, color) }

func (s *Store) Text() string         { return s.cfg.Text }
func (s *Store) SetText(color string) { setField(s, &s.cfg.Text, color) }

func (s *Store) Border() string         { return s.cfg.Border }
func (s *Store) SetBorder(color string) { setField(s, &s.cfg.Border, color) }

func (s *Store) Hover() string         { return s.cfg.Hover }
func (s *Store) SetHover(color string) { setField(s, &s.cfg.Hover, color) }

func (s *Store) Active() string         { return s.cfg.Active }
func (s *Store) SetActive(color string) { setField(s, &s.cfg.Active, color) }

func (s *Store) HoverScale() float64         { return s.cfg.HoverScale }
func (s *Store) SetHoverScale(scale float64) { setField(s, &s.cfg.HoverScale, scale) }

func (s *Store) PressScale() float64         { return s.cfg.PressScale }
func (s *Store) SetPressScale(scale float64) { setField(s, &s.cfg.PressScale, scale) }

func (s *Store) Gap() int      { return s.cfg.Gap }
func (s *Store) SetGap(px int) { setField(s, &s.cfg.Gap, px) }
