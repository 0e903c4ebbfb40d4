package resolve

import (
	"fmt"

	"github.com/alexisbeaulieu97/buttonsmith/internal/options"
)

const (
	baseClasses     = "items-center justify-center select-none transition-[transform,shadow,background,border,color] duration-200"
	disabledClasses = "opacity-50 cursor-not-allowed"
	cursorClass     = "cursor-pointer"
	shadowClasses   = "shadow-sm hover:shadow-md"
)

func sizeClasses(size options.Size) string {
	switch size {
	case options.SizeSmall:
		return "text-sm px-3 py-1.5"
	case options.SizeMedium:
		return "text-base px-4 py-2"
	case options.SizeLarge:
		return "text-lg px-5 py-2.5"
	case options.SizeExtraLarge:
		return "text-xl px-6 py-3"
	default:
		return ""
	}
}

func radiusClass(radius options.Radius) string {
	switch radius {
	case options.RadiusNone:
		return "rounded-none"
	case options.RadiusSmall:
		return "rounded-md"
	case options.RadiusLarge:
		return "rounded-xl"
	case options.RadiusFull:
		return "rounded-full"
	default:
		return ""
	}
}

func weightClass(weight options.Weight) string {
	switch weight {
	case options.WeightNormal:
		return "font-normal"
	case options.WeightMedium:
		return "font-medium"
	case options.WeightSemibold:
		return "font-semibold"
	case options.WeightBold:
		return "font-bold"
	default:
		return ""
	}
}

func widthClass(fullWidth bool) string {
	if fullWidth {
		return "w-full"
	}
	return "inline-flex"
}

// variantClasses composes the colour, border and hover rules for a variant.
// Hover rules are dropped while disabled so nothing reacts to the pointer.
func variantClasses(cfg options.Config, v values) []string {
	interactive := !cfg.Disabled
	shadow := when(cfg.Shadow && interactive, shadowClasses)

	switch cfg.Variant {
	case options.VariantSolid:
		return []string{
			fmt.Sprintf("bg-[%s] text-[%s] border border-[%s]", v.background, v.text, v.border),
			shadow,
		}
	case options.VariantOutline:
		return []string{
			fmt.Sprintf("bg-transparent text-[%s] border border-[%s]", v.background, v.border),
			when(interactive, "hover:bg-black/5"),
		}
	case options.VariantGhost:
		return []string{
			"bg-transparent border border-transparent",
			fmt.Sprintf("text-[%s]", v.background),
			when(interactive, fmt.Sprintf("hover:bg-[%s] hover:text-[%s]/90 hover:bg-opacity-10", v.background, v.text)),
		}
	case options.VariantLink:
		return []string{
			"bg-transparent border border-transparent underline-offset-4",
			fmt.Sprintf("text-[%s]", v.background),
			when(interactive, "hover:underline"),
		}
	case options.VariantSoft:
		return []string{
			fmt.Sprintf("bg-[%s]/12 text-[%s] border border-[%s]/20", v.background, v.background, v.background),
			shadow,
		}
	default:
		return nil
	}
}

func when(cond bool, classes string) string {
	if cond {
		return classes
	}
	return ""
}
