package components

import "github.com/charmbracelet/lipgloss"

const paletteShadeCount = 10

// PaletteShades holds the 50..900 shades of one Tailwind colour family.
type PaletteShades [paletteShadeCount]lipgloss.Color

var shadeSteps = [paletteShadeCount]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Color returns the colour for a Tailwind shade number such as 600.
func (ps PaletteShades) Color(shade int) (lipgloss.Color, bool) {
	for i, step := range shadeSteps {
		if step == shade {
			return ps[i], ps[i] != ""
		}
	}
	return "", false
}

func newShades(hex ...string) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(hex); i++ {
		shades[i] = lipgloss.Color(hex[i])
	}
	return shades
}

// families are the Tailwind colours the gallery examples draw from.
var families = map[string]PaletteShades{
	"slate":  newShades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
	"indigo": newShades("#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81"),
	"blue":   newShades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
	"green":  newShades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
	"pink":   newShades("#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843"),
}

// PaletteColor resolves a Tailwind family and shade. "white" and "black"
// ignore the shade.
func PaletteColor(family string, shade int) (lipgloss.Color, bool) {
	switch family {
	case "white":
		return lipgloss.Color("#ffffff"), true
	case "black":
		return lipgloss.Color("#000000"), true
	}
	shades, ok := families[family]
	if !ok {
		return "", false
	}
	return shades.Color(shade)
}

var swatchFamilies = []string{"slate", "indigo", "blue", "green", "pink"}

// Swatches lists the hex colours colour controls step through: the 500 to
// 700 shades of each family, then white and black.
func Swatches() []string {
	var out []string
	for _, family := range swatchFamilies {
		for _, shade := range []int{500, 600, 700} {
			c, _ := PaletteColor(family, shade)
			out = append(out, string(c))
		}
	}
	return append(out, "#ffffff", "#000000")
}
