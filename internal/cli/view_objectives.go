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

// objectivesEditor edits SMART objectives, grouped under a selected parent
// goal.
type objectivesEditor struct {
	plan    *domain.Plan
	goalIdx int
	input   textinput.Model
	sel     int
}

func newObjectivesEditor(plan *domain.Plan) *objectivesEditor {
	in := textinput.New()
	in.Placeholder = "Add a SMART objective and press enter"
	in.Prompt = "> "
	in.PromptStyle = formatter.StyleHeader
	in.Focus()
	return &objectivesEditor{plan: plan, input: in}
}

func (e *objectivesEditor) goal() *domain.Goal {
	if e.goalIdx >= len(e.plan.Goals) {
		return nil
	}
	return &e.plan.Goals[e.goalIdx]
}

func (e *objectivesEditor) objectives() []domain.Objective {
	g := e.goal()
	if g == nil {
		return nil
	}
	return e.plan.ObjectivesForGoal(g.ID)
}

func (e *objectivesEditor) Init() tea.Cmd { return textinput.Blink }

func (e *objectivesEditor) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyTab:
			if n := len(e.plan.Goals); n > 0 {
				e.goalIdx = (e.goalIdx + 1) % n
				e.sel = 0
			}
			return nil
		case tea.KeyShiftTab:
			if n := len(e.plan.Goals); n > 0 {
				e.goalIdx = (e.goalIdx + n - 1) % n
				e.sel = 0
			}
			return nil
		case tea.KeyEnter:
			text := strings.TrimSpace(e.input.Value())
			if g := e.goal(); g != nil && text != "" {
				e.plan.AddObjective(g.ID, text)
				e.input.SetValue("")
			}
			return nil
		case tea.KeyUp:
			if e.sel > 0 {
				e.sel--
			}
			return nil
		case tea.KeyDown:
			if e.sel < len(e.objectives())-1 {
				e.sel++
			}
			return nil
		case tea.KeyCtrlD:
			objs := e.objectives()
			if e.sel < len(objs) {
				e.plan.RemoveObjective(objs[e.sel].ID)
				if n := len(e.objectives()); e.sel >= n && n > 0 {
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

func (e *objectivesEditor) View(width int) string {
	if len(e.plan.Goals) == 0 {
		return formatter.Dim("No goals to attach objectives to. Go back and add goals first.")
	}

	var b strings.Builder
	g := e.goal()
	b.WriteString(formatter.Dim(fmt.Sprintf("Goal %d of %d", e.goalIdx+1, len(e.plan.Goals))) + "  " +
		formatter.Bold(formatter.Truncate(g.Text, width-12)) + "\n\n")

	objs := e.objectives()
	if len(objs) == 0 {
		b.WriteString(formatter.Dim("No objectives for this goal yet.") + "\n")
	}
	for i, o := range objs {
		marker := "  "
		if i == e.sel {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		b.WriteString(marker + formatter.Truncate(o.Text, width-4) + "\n")
	}

	if orphans := e.plan.OrphanedTasks(); len(orphans) > 0 {
		b.WriteString("\n" + formatter.StyleYellow.Render(
			fmt.Sprintf("%d tasks lost their objective and are hidden from the plan table.", len(orphans))) + "\n")
	}

	b.WriteString("\n" + e.input.View())
	return b.String()
}

func (e *objectivesEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "goal")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	}
}
