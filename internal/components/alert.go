package components

import "github.com/charmbracelet/lipgloss"

// ToastVariant selects a toast colour.
type ToastVariant int

const (
	ToastSuccess ToastVariant = iota
	ToastInfo
	ToastError
)

// Toast is a one-line status message such as the "Copied!" flash.
type Toast struct {
	message string
	variant ToastVariant
}

// NewToast creates a toast with the given message and variant.
func NewToast(message string, variant ToastVariant) *Toast {
	return &Toast{message: message, variant: variant}
}

// View renders the toast, or nothing when the message is empty.
func (t *Toast) View() string {
	if t == nil || t.message == "" {
		return ""
	}
	return Style(lipgloss.NewStyle(), toastAppliers(t.variant)...).Render(t.message)
}

func toastAppliers(variant ToastVariant) []StyleApplier {
	switch variant {
	case ToastSuccess:
		return []StyleApplier{Background(PaletteSuccess), Padding(0, 1), Typography(TypographyVariantEmphasis)}
	case ToastError:
		return []StyleApplier{Background(PaletteDanger), Padding(0, 1), Typography(TypographyVariantEmphasis)}
	default:
		return []StyleApplier{Background(PalettePrimary), Padding(0, 1)}
	}
}
