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

// goalsEditor edits the ordered list of strategic goals.
type goalsEditor struct {
	plan  *domain.Plan
	input textinput.Model
	sel   int
}

func newGoalsEditor(plan *domain.Plan) *goalsEditor {
	in := textinput.New()
	in.Placeholder = "Add a strategic goal and press enter"
	in.Prompt = "> "
	in.PromptStyle = formatter.StyleHeader
	in.Focus()
	return &goalsEditor{plan: plan, input: in}
}

func (e *goalsEditor) Init() tea.Cmd { return textinput.Blink }

func (e *goalsEditor) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(e.input.Value())
			if text != "" {
				e.plan.AddGoal(text)
				e.input.SetValue("")
			}
			return nil
		case tea.KeyUp:
			if e.sel > 0 {
				e.sel--
			}
			return nil
		case tea.KeyDown:
			if e.sel < len(e.plan.Goals)-1 {
				e.sel++
			}
			return nil
		case tea.KeyCtrlD:
			if e.sel < len(e.plan.Goals) {
				e.plan.RemoveGoal(e.plan.Goals[e.sel].ID)
				if n := len(e.plan.Goals); e.sel >= n && n > 0 {
					e.sel = n - 1
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *goalsEditor) View(width int) string {
	var b strings.Builder

	if len(e.plan.Goals) == 0 {
		b.WriteString(formatter.Dim("No goals yet. A typical plan has three to five.") + "\n")
	}
	for i, g := range e.plan.Goals {
		marker := "  "
		if i == e.sel {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		count := len(e.plan.ObjectivesForGoal(g.ID))
		line := fmt.Sprintf("%d. %s", i+1, g.Text)
		if count > 0 {
			line += " " + formatter.Dim(fmt.Sprintf("(%d objectives)", count))
		}
		b.WriteString(marker + formatter.Truncate(line, width-4) + "\n")
	}

	if orphans := e.plan.OrphanedObjectives(); len(orphans) > 0 {
		b.WriteString("\n" + formatter.StyleYellow.Render(
			fmt.Sprintf("%d objectives lost their goal and are hidden from the plan table.", len(orphans))) + "\n")
	}

	b.WriteString("\n" + e.input.View())
	return b.String()
}

func (e *goalsEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	}
}
