package formatter

import (
	"strings"
)

// RenderMarkup renders the lightweight markup the advisory service replies
// with: #/##/### headings, * and - bullets, **bold** spans, and pipe-drawn
// tables. Anything else passes through as plain text, wrapped to width.
func RenderMarkup(text string, width int) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if isTableRow(trimmed) {
			var block []string
			for i < len(lines) && isTableRow(strings.TrimSpace(lines[i])) {
				block = append(block, strings.TrimSpace(lines[i]))
				i++
			}
			i--
			out = append(out, renderMarkupTable(block))
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "### "):
			out = append(out, StyleBold.Render(renderInline(strings.TrimPrefix(trimmed, "### "))))
		case strings.HasPrefix(trimmed, "## "):
			out = append(out, StyleHeader.Render(renderInline(strings.TrimPrefix(trimmed, "## "))))
		case strings.HasPrefix(trimmed, "# "):
			out = append(out, Header(strings.TrimPrefix(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "* "), strings.HasPrefix(trimmed, "- "):
			body := renderInline(trimmed[2:])
			bullet := StylePurple.Render("•") + " "
			wrapped := Wrap(body, width-2)
			out = append(out, bullet+strings.ReplaceAll(wrapped, "\n", "\n  "))
		case trimmed == "":
			out = append(out, "")
		default:
			out = append(out, Wrap(renderInline(line), width))
		}
	}

	return strings.Join(out, "\n")
}

// renderInline styles **bold** spans. Unclosed markers are left alone.
func renderInline(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "**")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start+2:], "**")
		if end < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		b.WriteString(StyleBold.Render(s[start+2 : start+2+end]))
		s = s[start+4+end:]
	}
	return b.String()
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Count(line, "|") >= 2
}

// isSeparatorRow reports whether a table row is a |---|---| divider.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}

func splitTableRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func renderMarkupTable(block []string) string {
	var headers []string
	var rows [][]string
	for _, line := range block {
		cells := splitTableRow(line)
		if isSeparatorRow(cells) {
			continue
		}
		if headers == nil {
			headers = cells
			continue
		}
		for i := range cells {
			cells[i] = renderInline(cells[i])
		}
		rows = append(rows, cells)
	}
	if headers == nil {
		return ""
	}
	return strings.TrimRight(RenderTable(headers, rows), "\n")
}
