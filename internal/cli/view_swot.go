package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planshop/internal/cli/formatter"
	"planshop/internal/domain"
)

var swotLabels = map[domain.SwotCategory]string{
	domain.SwotStrengths:     "Strengths",
	domain.SwotWeaknesses:    "Weaknesses",
	domain.SwotOpportunities: "Opportunities",
	domain.SwotThreats:       "Threats",
}

// swotEditor edits the four SWOT lists, one category at a time.
type swotEditor struct {
	plan  *domain.Plan
	cat   int // index into domain.SwotCategories
	input textinput.Model
	sel   int
}

func newSwotEditor(plan *domain.Plan) *swotEditor {
	in := textinput.New()
	in.Placeholder = "Add an entry and press enter"
	in.Prompt = "> "
	in.PromptStyle = formatter.StyleHeader
	in.Focus()
	return &swotEditor{plan: plan, input: in}
}

func (e *swotEditor) category() domain.SwotCategory {
	return domain.SwotCategories[e.cat]
}

func (e *swotEditor) entries() []string {
	return e.plan.Swot.Category(e.category())
}

func (e *swotEditor) Init() tea.Cmd { return textinput.Blink }

func (e *swotEditor) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyTab:
			e.cat = (e.cat + 1) % len(domain.SwotCategories)
			e.sel = 0
			return nil
		case tea.KeyShiftTab:
			e.cat = (e.cat + len(domain.SwotCategories) - 1) % len(domain.SwotCategories)
			e.sel = 0
			return nil
		case tea.KeyEnter:
			text := strings.TrimSpace(e.input.Value())
			if text != "" {
				e.plan.AddSwotEntry(e.category(), text)
				e.input.SetValue("")
			}
			return nil
		case tea.KeyUp:
			if e.sel > 0 {
				e.sel--
			}
			return nil
		case tea.KeyDown:
			if e.sel < len(e.entries())-1 {
				e.sel++
			}
			return nil
		case tea.KeyCtrlD:
			e.plan.RemoveSwotEntry(e.category(), e.sel)
			if n := len(e.entries()); e.sel >= n && n > 0 {
				e.sel = n - 1
			}
			return nil
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *swotEditor) View(width int) string {
	var b strings.Builder

	// Category tabs with entry counts.
	var tabs []string
	for i, cat := range domain.SwotCategories {
		label := fmt.Sprintf("%s (%d)", swotLabels[cat], len(e.plan.Swot.Category(cat)))
		if i == e.cat {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	b.WriteString(strings.Join(tabs, formatter.Dim("  │  ")))
	b.WriteString("\n\n")

	entries := e.entries()
	if len(entries) == 0 {
		b.WriteString(formatter.Dim("No entries yet.") + "\n")
	}
	for i, entry := range entries {
		marker := "  "
		if i == e.sel {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		b.WriteString(marker + formatter.Truncate(entry, width-4) + "\n")
	}

	b.WriteString("\n" + e.input.View())
	return b.String()
}

func (e *swotEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	}
}
