package colors

import "strings"

// Style wraps text with presentation directives. A disabled Style still
// pads to width so columns line up in uncolored output.
type Style struct {
	Enabled bool
}

// Apply pads text left-justified to width (0 means no padding), then wraps
// it with color, dim and bold markup in that order, bold outermost. It is
// a pure function with no failure modes.
func (st Style) Apply(text string, color Color, dimmed, bolded bool, width int) string {
	if width > len(text) {
		text += strings.Repeat(" ", width-len(text))
	}

	if !st.Enabled {
		return text
	}

	if color != Unset {
		text = wrap(text, int(color))
	}
	if dimmed {
		text = wrap(text, dim)
	}
	if bolded {
		text = wrap(text, bold)
	}

	return text
}
