package cli

import (
	"strings"

	"planshop/internal/cli/formatter"
	"planshop/internal/wizard"
)

func (m workshopModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, m.renderHeader(width))

	switch {
	case m.jumpForm != nil:
		sections = append(sections, m.jumpForm.View())
	case m.session.Seq.InterstitialOpen():
		sections = append(sections, m.renderInterstitial())
	default:
		if g := m.session.Seq.Current().Guidance; g != nil {
			sections = append(sections, renderGuidance(g, width))
		}
		sections = append(sections, m.editor.View(width))
		if panel := m.renderAdvisory(width); panel != "" {
			sections = append(sections, panel)
		}
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m workshopModel) renderHeader(width int) string {
	seq := m.session.Seq
	steps := seq.Steps()
	titles := make([]string, len(steps))
	completed := make([]bool, len(steps))
	for i, st := range steps {
		titles[i] = st.Title
		completed[i] = seq.Complete(m.session.Plan, i)
	}

	title := formatter.StylePurple.Render("planshop") + "  " +
		formatter.RenderStepTrail(titles, seq.Index(), completed)
	sep := formatter.Dim(strings.Repeat("─", max(width, 20)))
	return title + "\n" + sep
}

func renderGuidance(g *wizard.Guidance, width int) string {
	var b strings.Builder
	b.WriteString(formatter.Bold(g.Title) + "\n")
	if g.Description != "" {
		b.WriteString(formatter.Wrap(g.Description, width) + "\n")
	}
	if g.HowTo != "" {
		b.WriteString(formatter.Dim(formatter.Wrap(g.HowTo, width)) + "\n")
	}
	if g.Example != "" {
		b.WriteString(formatter.Dim(formatter.Wrap("Example: "+g.Example, width)) + "\n")
	}
	return b.String()
}

var reflectionModeLabels = map[wizard.ReflectionMode]string{
	wizard.ReflectSolo: "on your own",
	wizard.ReflectPair: "in pairs",
	wizard.ReflectTrio: "in threes",
}

func (m workshopModel) renderInterstitial() string {
	r := m.session.Seq.Current().Reflection
	if r == nil {
		return ""
	}

	var b strings.Builder
	if label, ok := reflectionModeLabels[r.Mode]; ok {
		b.WriteString(formatter.Dim("Reflect "+label) + "\n\n")
	}
	for _, prompt := range r.Prompts {
		b.WriteString(formatter.StylePurple.Render("•") + " " + formatter.Wrap(prompt, 68) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("enter: continue"))

	return formatter.RenderBox(r.Title, b.String())
}

func (m workshopModel) renderAdvisory(width int) string {
	s := m.session

	// The summary step renders report state inside its own editor.
	if s.Seq.Current().ID == wizard.StepSummary {
		return ""
	}

	switch {
	case s.InFlight():
		return m.spin.View() + " " + formatter.Dim("Consulting the advisor...")
	case s.LastError() != nil:
		info := s.LastError()
		return formatter.ErrorStyle(info.Kind).Render(formatter.Wrap(info.Message, width))
	case s.Advisory() != "":
		return formatter.RenderBox("Advisor", formatter.RenderMarkup(s.Advisory(), max(width-8, 40)))
	}
	return ""
}

func (m workshopModel) renderStatusBar() string {
	var hints []string

	if m.status != "" {
		hints = append(hints, m.status)
	}

	if m.jumpForm == nil && !m.session.Seq.InterstitialOpen() {
		for _, b := range m.editor.Hints() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if !m.session.Seq.AtTerminal() {
		hints = append(hints, formatter.Dim("ctrl+n: next"))
	}
	if m.session.Seq.Index() > 0 {
		hints = append(hints, formatter.Dim("ctrl+b: back"))
		hints = append(hints, formatter.Dim("ctrl+j: jump"))
	}
	hints = append(hints,
		formatter.Dim("ctrl+a: advice"),
		formatter.Dim("ctrl+s: save"),
		formatter.Dim("ctrl+c: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
