package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buttonsmith/internal/gallery"
	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
	"github.com/alexisbeaulieu97/buttonsmith/internal/resolve"
)

func preview(mutate func(*options.Config)) *ButtonPreview {
	cfg := options.Defaults()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewButtonPreview(resolve.Resolve(cfg), PreviewOptions{})
}

func TestButtonPreviewContentPlacesIcon(t *testing.T) {
	assert.Equal(t, IconGlyph+"  Launch", preview(nil).Content())

	right := preview(func(c *options.Config) { c.IconRight = true })
	assert.Equal(t, "Launch  "+IconGlyph, right.Content())

	bare := preview(func(c *options.Config) { c.WithIcon = false; c.IconRight = true })
	assert.Equal(t, "Launch", bare.Content())

	tight := preview(func(c *options.Config) { c.Gap = 0 })
	assert.Equal(t, IconGlyph+"Launch", tight.Content())
}

func TestButtonPreviewRendersLabel(t *testing.T) {
	view := preview(func(c *options.Config) { c.Uppercase = true }).View(FrameRest)
	assert.Contains(t, view, "LAUNCH")
}

func TestButtonPreviewFrames(t *testing.T) {
	b := preview(nil)

	assert.Equal(t, lipgloss.Color("#4f46e5"), b.Style(FrameRest).GetBackground())
	assert.Equal(t, lipgloss.Color("#2563eb"), b.Style(FrameHover).GetBackground())
	assert.Equal(t, lipgloss.Color("#1d4ed8"), b.Style(FramePress).GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), b.Style(FrameRest).GetForeground())
}

func TestButtonPreviewWeights(t *testing.T) {
	tests := []struct {
		weight options.Weight
		bold   bool
		faint  bool
	}{
		{options.WeightNormal, false, true},
		{options.WeightMedium, false, false},
		{options.WeightSemibold, true, false},
		{options.WeightBold, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.weight.String(), func(t *testing.T) {
			style := preview(func(c *options.Config) { c.Weight = tt.weight }).Style(FrameRest)
			assert.Equal(t, tt.bold, style.GetBold())
			assert.Equal(t, tt.faint, style.GetFaint())
		})
	}
}

func TestButtonPreviewDisabledIgnoresFrames(t *testing.T) {
	b := preview(func(c *options.Config) { c.Disabled = true })

	rest := b.Style(FrameRest)
	assert.True(t, rest.GetFaint())
	assert.Equal(t, rest.GetBackground(), b.Style(FrameHover).GetBackground())
	assert.Equal(t, rest.GetBackground(), b.Style(FramePress).GetBackground())
	assert.Equal(t, b.View(FrameRest), b.View(FramePress))
}

func TestButtonPreviewScaleChangesPadding(t *testing.T) {
	b := preview(func(c *options.Config) {
		c.HoverScale = options.MaxHoverScale
		c.PressScale = options.MinPressScale
	})

	rest := b.Style(FrameRest).GetPaddingLeft()
	assert.Greater(t, b.Style(FrameHover).GetPaddingLeft(), rest)
	assert.Less(t, b.Style(FramePress).GetPaddingLeft(), rest)
}

func TestButtonPreviewSoftBlend(t *testing.T) {
	b := preview(func(c *options.Config) { c.Variant = options.VariantSoft })

	want := Blend(GetTheme().Canvas, "#4f46e5", softFillAlpha)
	assert.Equal(t, lipgloss.Color(want), b.Style(FrameRest).GetBackground())
	assert.NotEqual(t, lipgloss.Color("#4f46e5"), b.Style(FrameRest).GetBackground())
}

func TestButtonPreviewTransparentVariants(t *testing.T) {
	for _, variant := range []options.Variant{options.VariantOutline, options.VariantGhost, options.VariantLink} {
		b := preview(func(c *options.Config) { c.Variant = variant })
		assert.Equal(t, lipgloss.NoColor{}, b.Style(FrameRest).GetBackground(), variant.String())
		assert.Equal(t, lipgloss.Color("#4f46e5"), b.Style(FrameRest).GetForeground(), variant.String())
	}

	ghost := preview(func(c *options.Config) { c.Variant = options.VariantGhost })
	assert.Equal(t, lipgloss.NoColor{}, ghost.Style(FrameRest).GetBorderTopForeground())
}

func TestButtonPreviewFullWidth(t *testing.T) {
	b := preview(func(c *options.Config) { c.FullWidth = true }).WithWidth(40)

	for _, line := range strings.Split(b.View(FrameRest), "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestButtonPreviewRadiusBorders(t *testing.T) {
	none := preview(func(c *options.Config) { c.Radius = options.RadiusNone }).Style(FrameRest)
	full := preview(func(c *options.Config) { c.Radius = options.RadiusFull }).Style(FrameRest)

	assert.Equal(t, lipgloss.NormalBorder(), none.GetBorderStyle())
	assert.Equal(t, pillBorder(), full.GetBorderStyle())
}

func TestFrameNext(t *testing.T) {
	assert.Equal(t, FrameHover, FrameRest.Next())
	assert.Equal(t, FramePress, FrameHover.Next())
	assert.Equal(t, FrameRest, FramePress.Next())
	assert.Equal(t, "press", FramePress.String())
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#808080", Blend("#ffffff", "#000000", 0.5))
	assert.Equal(t, "#ffffff", Blend("#ffffff", "#000000", 0))
	assert.Equal(t, "#000000", Blend("#ffffff", "#000000", 1))
	assert.Equal(t, "tomato", Blend("#ffffff", "tomato", 0.3))
}

func TestGapCells(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 1, 4: 1, 8: 2, 12: 3, 24: 6}
	for px, cells := range cases {
		assert.Equal(t, cells, GapCells(px), "px=%d", px)
	}
}

func TestCardActionLabel(t *testing.T) {
	ex := gallery.Examples()[0]

	card := NewCard(ex)
	assert.Equal(t, "Copy Code", card.ActionLabel())
	assert.Contains(t, card.View(), "Solid Button")
	assert.Contains(t, card.View(), "Copy Code")

	card.WithCopied(true)
	assert.Equal(t, "Copied!", card.ActionLabel())
	assert.Contains(t, card.View(), "Copied!")
}

func TestExampleButtonIcons(t *testing.T) {
	all := gallery.Examples()

	require.Equal(t, gallery.IconBefore, all[2].IconSide)
	assert.Contains(t, ExampleButton(all[2]), "♥ Like")
	assert.Contains(t, ExampleButton(all[3]), "Next →")
	assert.Contains(t, ExampleButton(all[4]), "Ghost Button")
}
