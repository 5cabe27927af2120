package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"planshop/internal/cli/formatter"
	"planshop/internal/wizard"
)

// summaryEditor is the terminal step: the derived plan table plus the
// integrated narrative report, scrollable in a viewport.
type summaryEditor struct {
	session *wizard.Session
	vp      viewport.Model
	width   int
	height  int
}

func newSummaryEditor(s *wizard.Session) *summaryEditor {
	vp := viewport.New(0, 0)
	return &summaryEditor{session: s, vp: vp, width: 80, height: 20}
}

func (e *summaryEditor) Init() tea.Cmd { return nil }

func (e *summaryEditor) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		e.width = size.Width
		e.height = size.Height
	}
	e.vp.SetContent(e.content())
	var cmd tea.Cmd
	e.vp, cmd = e.vp.Update(msg)
	return cmd
}

func (e *summaryEditor) content() string {
	plan := e.session.Plan
	var b strings.Builder

	b.WriteString(formatter.Header("Work Plan") + "\n")
	rows := plan.SummaryTable()
	if len(rows) == 0 {
		b.WriteString(formatter.Dim("The plan is empty. Go back and add goals.") + "\n")
	} else {
		cells := make([][]string, len(rows))
		for i, r := range rows {
			cells[i] = []string{r.Goal, r.Objective, r.Task, r.Responsibility, r.Timeline}
		}
		b.WriteString(formatter.RenderTable(
			[]string{"Goal", "Objective", "Task", "Responsibility", "Timeline"}, cells))
	}

	if n := len(plan.OrphanedObjectives()) + len(plan.OrphanedTasks()); n > 0 {
		b.WriteString("\n" + formatter.StyleYellow.Render(
			fmt.Sprintf("%d items are detached from the plan and not shown above.", n)) + "\n")
	}

	b.WriteString("\n" + formatter.Header("Integrated Report") + "\n")
	switch {
	case e.session.FinalReport() != "":
		b.WriteString(formatter.RenderMarkup(e.session.FinalReport(), max(e.width-4, 40)))
	case e.session.InFlight():
		b.WriteString(formatter.Dim("Composing the integrated report..."))
	case e.session.LastError() != nil:
		info := e.session.LastError()
		b.WriteString(formatter.ErrorStyle(info.Kind).Render(info.Message))
	default:
		b.WriteString(formatter.Dim("The report will be generated when the advisory service is reachable."))
	}

	return b.String()
}

func (e *summaryEditor) View(width int) string {
	e.width = width
	e.vp.Width = width
	e.vp.Height = max(e.height-10, 5)
	e.vp.SetContent(e.content())
	return e.vp.View()
}

func (e *summaryEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
