package resolve

import (
	"fmt"
	"strings"
)

// IconMarkup is the icon element emitted next to the label.
const IconMarkup = `<Sparkles className="size-4" />`

const iconImport = `import { Sparkles } from "lucide-react";`

func renderExport(v values, classList string, disabled bool) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(`import { motion } from "framer-motion";`)
	if v.icon != IconNone {
		line(iconImport)
	}
	line("")
	line("export default function MyButton() {")
	line("  return (")
	line("    <motion.button")
	if disabled {
		line("      disabled")
	} else {
		line(`      whileHover={{ backgroundColor: "%s", scale: %s }}`, v.hover, v.hoverScale)
		line(`      whileTap={{ backgroundColor: "%s", scale: %s }}`, v.active, v.pressScale)
	}
	line(`      className="%s"`, classList)
	line("      style={{")
	line(`        backgroundColor: "%s",`, v.background)
	line(`        color: "%s",`, v.text)
	line(`        borderColor: "%s",`, v.border)
	line(`        gap: "%dpx",`, v.gap)
	line("      }}")
	line("    >")
	line("      %s", labelLine(v))
	line("    </motion.button>")
	line("  );")
	b.WriteString("}")

	return b.String()
}

func labelLine(v values) string {
	switch v.icon {
	case IconLeft:
		return IconMarkup + " " + v.label
	case IconRight:
		return v.label + " " + IconMarkup
	default:
		return v.label
	}
}
