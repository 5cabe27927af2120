package formatter

import (
	"strings"
)

// RenderStepTrail renders the wizard progress line: one dot per step, with
// completed steps green, the current step highlighted, and the rest dim.
// The current step's title is appended.
func RenderStepTrail(titles []string, current int, completed []bool) string {
	var b strings.Builder
	for i := range titles {
		switch {
		case i == current:
			b.WriteString(StyleHeader.Render("●"))
		case i < len(completed) && completed[i]:
			b.WriteString(StyleGreen.Render("●"))
		default:
			b.WriteString(StyleDim.Render("○"))
		}
		if i < len(titles)-1 {
			b.WriteString(StyleDim.Render("─"))
		}
	}
	if current >= 0 && current < len(titles) {
		b.WriteString("  ")
		b.WriteString(StyleBold.Render(titles[current]))
	}
	return b.String()
}

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return "[" + style.Render(bar) + "]"
}
