package options

import (
	"fmt"
	"strings"

	bserrors "github.com/alexisbeaulieu97/buttonsmith/pkg/errors"
)

// Size selects the text size and padding of the button.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// Variant is the visual treatment family of the button.
type Variant int

const (
	VariantSolid Variant = iota
	VariantOutline
	VariantGhost
	VariantLink
	VariantSoft
)

// Radius selects the corner rounding.
type Radius int

const (
	RadiusNone Radius = iota
	RadiusSmall
	RadiusLarge
	RadiusFull
)

// Weight selects the font weight.
type Weight int

const (
	WeightNormal Weight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

var (
	sizeNames    = [...]string{"sm", "md", "lg", "xl"}
	variantNames = [...]string{"solid", "outline", "ghost", "link", "soft"}
	radiusNames  = [...]string{"none", "sm", "lg", "full"}
	weightNames  = [...]string{"normal", "medium", "semibold", "bold"}
)

func (s Size) String() string    { return enumName(sizeNames[:], int(s)) }
func (v Variant) String() string { return enumName(variantNames[:], int(v)) }
func (r Radius) String() string  { return enumName(radiusNames[:], int(r)) }
func (w Weight) String() string  { return enumName(weightNames[:], int(w)) }

// AllSizes returns every size in menu order.
func AllSizes() []Size { return []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge} }

// AllVariants returns every variant in menu order.
func AllVariants() []Variant {
	return []Variant{VariantSolid, VariantOutline, VariantGhost, VariantLink, VariantSoft}
}

// AllRadii returns every radius in menu order.
func AllRadii() []Radius { return []Radius{RadiusNone, RadiusSmall, RadiusLarge, RadiusFull} }

// AllWeights returns every weight in menu order.
func AllWeights() []Weight {
	return []Weight{WeightNormal, WeightMedium, WeightSemibold, WeightBold}
}

// ParseSize converts a menu name such as "md" into a Size.
func ParseSize(name string) (Size, error) {
	idx, err := parseEnum("size", sizeNames[:], name)
	return Size(idx), err
}

// ParseVariant converts a menu name such as "ghost" into a Variant.
func ParseVariant(name string) (Variant, error) {
	idx, err := parseEnum("variant", variantNames[:], name)
	return Variant(idx), err
}

// ParseRadius converts a menu name such as "full" into a Radius.
func ParseRadius(name string) (Radius, error) {
	idx, err := parseEnum("radius", radiusNames[:], name)
	return Radius(idx), err
}

// ParseWeight converts a menu name such as "bold" into a Weight.
func ParseWeight(name string) (Weight, error) {
	idx, err := parseEnum("weight", weightNames[:], name)
	return Weight(idx), err
}

// SizeNames lists the accepted size names, used by flag help and config validation.
func SizeNames() []string { return append([]string(nil), sizeNames[:]...) }

// VariantNames lists the accepted variant names.
func VariantNames() []string { return append([]string(nil), variantNames[:]...) }

// RadiusNames lists the accepted radius names.
func RadiusNames() []string { return append([]string(nil), radiusNames[:]...) }

// WeightNames lists the accepted weight names.
func WeightNames() []string { return append([]string(nil), weightNames[:]...) }

func enumName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return fmt.Sprintf("unknown(%d)", idx)
	}
	return names[idx]
}

func parseEnum(option string, names []string, value string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for i, name := range names {
		if name == normalized {
			return i, nil
		}
	}
	return 0, bserrors.NewOptionError(option, value, names)
}
