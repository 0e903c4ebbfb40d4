// Package gallery holds the fixed set of ready-made button examples and the
// transient "copied" feedback shown after one of them is copied.
package gallery

import "time"

// FeedbackDelay is how long a card keeps its "Copied!" state.
const FeedbackDelay = 2 * time.Second

// IconSide marks where an example renders its icon.
type IconSide int

const (
	NoIcon IconSide = iota
	IconBefore
	IconAfter
)

// Swatch names a Tailwind colour family and shade, e.g. blue 600.
type Swatch struct {
	Family string
	Shade  int
}

// Example is one gallery card: a descriptor for the preview plus the literal snippet.
type Example struct {
	Title      string
	Label      string
	Classes    string
	Icon       string
	IconSide   IconSide
	Background *Swatch
	Foreground Swatch
	Border     *Swatch
	Snippet    string
}

var examples = []Example{
	{
		Title:      "Solid Button",
		Label:      "Primary Action",
		Classes:    "rounded-lg bg-blue-600 px-6 py-3 text-white font-medium shadow hover:bg-blue-700",
		Background: &Swatch{Family: "blue", Shade: 600},
		Foreground: Swatch{Family: "white"},
		Snippet:    `<button className="rounded-lg bg-blue-600 px-6 py-3 text-white font-medium shadow hover:bg-blue-700">Primary Action</button>`,
	},
	{
		Title:      "Outline Button",
		Label:      "Outline Button",
		Classes:    "rounded-lg border-2 border-blue-600 px-6 py-3 text-blue-600 font-medium hover:bg-blue-50",
		Foreground: Swatch{Family: "blue", Shade: 600},
		Border:     &Swatch{Family: "blue", Shade: 600},
		Snippet:    `<button className="rounded-lg border-2 border-blue-600 px-6 py-3 text-blue-600 font-medium hover:bg-blue-50">Outline Button</button>`,
	},
	{
		Title:      "Icon Left",
		Label:      "Like",
		Classes:    "flex items-center gap-2 rounded-lg bg-pink-600 px-6 py-3 text-white font-medium shadow hover:bg-pink-700",
		Icon:       "Heart",
		IconSide:   IconBefore,
		Background: &Swatch{Family: "pink", Shade: 600},
		Foreground: Swatch{Family: "white"},
		Snippet:    `<button className="flex items-center gap-2 rounded-lg bg-pink-600 px-6 py-3 text-white font-medium shadow hover:bg-pink-700"><Heart className="size-4" /> Like</button>`,
	},
	{
		Title:      "Icon Right",
		Label:      "Next",
		Classes:    "flex items-center gap-2 rounded-lg bg-green-600 px-6 py-3 text-white font-medium shadow hover:bg-green-700",
		Icon:       "ArrowRight",
		IconSide:   IconAfter,
		Background: &Swatch{Family: "green", Shade: 600},
		Foreground: Swatch{Family: "white"},
		Snippet:    `<button className="flex items-center gap-2 rounded-lg bg-green-600 px-6 py-3 text-white font-medium shadow hover:bg-green-700">Next <ArrowRight className="size-4" /></button>`,
	},
	{
		Title:      "Ghost Button",
		Label:      "Ghost Button",
		Classes:    "rounded-lg px-6 py-3 font-medium text-slate-700 hover:bg-slate-100",
		Foreground: Swatch{Family: "slate", Shade: 700},
		Snippet:    `<button className="rounded-lg px-6 py-3 font-medium text-slate-700 hover:bg-slate-100">Ghost Button</button>`,
	},
	{
		Title:      "Soft Button",
		Label:      "Soft Button",
		Classes:    "rounded-lg bg-blue-100 px-6 py-3 text-blue-700 font-medium hover:bg-blue-200",
		Background: &Swatch{Family: "blue", Shade: 100},
		Foreground: Swatch{Family: "blue", Shade: 700},
		Snippet:    `<button className="rounded-lg bg-blue-100 px-6 py-3 text-blue-700 font-medium hover:bg-blue-200">Soft Button</button>`,
	},
}

// Examples returns a copy of the gallery table in display order.
func Examples() []Example {
	return append([]Example(nil), examples...)
}

// Len reports how many examples the gallery holds.
func Len() int {
	return len(examples)
}

// Snippet returns the literal snippet for the example at index.
func Snippet(index int) (string, bool) {
	if index < 0 || index >= len(examples) {
		return "", false
	}
	return examples[index].Snippet, true
}
