package repository

// Window represents a trailing band window label.
type Window string

const (
	Window6M  Window = "6M"
	Window1Y  Window = "1Y"
	Window2Y  Window = "2Y"
	WindowMax Window = "MAX"
	// WindowAll labels the whole-series fallback after degradation. It is
	// never requested directly.
	WindowAll Window = "all"
)

// Mode represents a normalization mode label.
type Mode string

const (
	ModeRaw         Mode = "raw"
	ModeIndex100    Mode = "index100"
	ModePct         Mode = "pct"
	ModeMinMax      Mode = "minmax"
	ModeBand6MPrice Mode = "band6m_price"
	ModeBand6MPct   Mode = "band6m_pct"
)

// Preset represents a date-range preset label.
type Preset string

const (
	Preset7D  Preset = "7D"
	Preset30D Preset = "30D"
	Preset90D Preset = "90D"
	Preset6M  Preset = "6M"
	Preset1Y  Preset = "1Y"
	PresetMax Preset = "MAX"
)

// Presets lists all supported range presets in display order.
func Presets() []Preset {
	return []Preset{Preset7D, Preset30D, Preset90D, Preset6M, Preset1Y, PresetMax}
}

// IsValidWindow returns true if w is a requestable band window.
func IsValidWindow(w Window) bool {
	switch w {
	case Window6M, Window1Y, Window2Y, WindowMax:
		return true
	default:
		return false
	}
}

// NormalizeWindow converts a raw string to a valid window (or the default).
func NormalizeWindow(s string) Window {
	if s == "" {
		return Window1Y
	}
	w := Window(s)
	if IsValidWindow(w) {
		return w
	}
	return Window1Y
}

// IsValidMode returns true if m is a supported normalization mode.
func IsValidMode(m Mode) bool {
	switch m {
	case ModeRaw, ModeIndex100, ModePct, ModeMinMax, ModeBand6MPrice, ModeBand6MPct:
		return true
	default:
		return false
	}
}

// NormalizeMode converts a raw string to a valid mode (or raw).
func NormalizeMode(s string) Mode {
	if s == "" {
		return ModeRaw
	}
	m := Mode(s)
	if IsValidMode(m) {
		return m
	}
	return ModeRaw
}

// IsValidPreset returns true if p is a supported range preset.
func IsValidPreset(p Preset) bool {
	for _, known := range Presets() {
		if p == known {
			return true
		}
	}
	return false
}

// NormalizePreset converts a raw string to a valid preset (or MAX).
func NormalizePreset(s string) Preset {
	if s == "" {
		return PresetMax
	}
	p := Preset(s)
	if IsValidPreset(p) {
		return p
	}
	return PresetMax
}
