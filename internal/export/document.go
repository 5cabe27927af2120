package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"planshop/internal/domain"
)

// WriteDocument renders the plan as a print-ready plain-text document:
// a title page, the vision and constraints narratives, and the full
// goal → objective → task table. Sections are separated by form feeds so a
// printer starts each on a fresh page.
func WriteDocument(w io.Writer, plan *domain.Plan) error {
	var b strings.Builder

	writeDocHeader(&b, "Annual Work Plan")

	if plan.SelfContext != "" {
		writeDocSection(&b, "Background", plan.SelfContext)
	}
	if plan.Vision != "" {
		writeDocSection(&b, "Vision", plan.Vision)
	}

	writeSwotSection(&b, plan)

	b.WriteString("\f")
	writeDocHeader(&b, "Work Plan Table")
	writeDocTable(&b, plan.SummaryTable())

	if plan.Constraints != "" {
		b.WriteString("\f")
		writeDocSection(&b, "Constraints & Risks", plan.Constraints)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func writeDocHeader(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeDocSection(b *strings.Builder, title, body string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
	b.WriteString(body + "\n\n")
}

func writeSwotSection(b *strings.Builder, plan *domain.Plan) {
	any := false
	for _, cat := range domain.SwotCategories {
		if len(plan.Swot.Category(cat)) > 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}

	b.WriteString("SWOT\n----\n")
	for _, cat := range domain.SwotCategories {
		entries := plan.Swot.Category(cat)
		if len(entries) == 0 {
			continue
		}
		b.WriteString(swotLabel(cat) + "s:\n")
		for _, e := range entries {
			b.WriteString("  - " + e + "\n")
		}
	}
	b.WriteString("\n")
}

func writeDocTable(b *strings.Builder, rows []domain.SummaryRow) {
	headers := []string{"Goal", "Objective", "Task", "Responsibility", "Timeline"}
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, headers)
	for _, r := range rows {
		cells = append(cells, []string{r.Goal, r.Objective, r.Task, r.Responsibility, r.Timeline})
	}

	// Rune counts, not byte lengths: plan content is frequently non-ASCII.
	widths := make([]int, len(headers))
	for _, row := range cells {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for ri, row := range cells {
		for i, c := range row {
			b.WriteString(c)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)+2))
			}
		}
		b.WriteString("\n")
		if ri == 0 {
			for i, w := range widths {
				b.WriteString(strings.Repeat("-", w))
				if i < len(widths)-1 {
					b.WriteString("  ")
				}
			}
			b.WriteString("\n")
		}
	}
}
