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

const (
	taskFieldDescription = iota
	taskFieldResources
	taskFieldResponsibility
	taskFieldTimeline
	taskFieldCount
)

// tasksEditor edits action items under a selected parent objective. A task is
// entered across four inline fields; enter on the last field submits it.
type tasksEditor struct {
	plan   *domain.Plan
	objIdx int
	fields [taskFieldCount]textinput.Model
	focus  int
	sel    int
}

func newTasksEditor(plan *domain.Plan) *tasksEditor {
	e := &tasksEditor{plan: plan}
	labels := [taskFieldCount]string{"What needs to be done", "Resources", "Owner", "Timeline"}
	for i := range e.fields {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.Prompt = "> "
		in.PromptStyle = formatter.StyleDim
		e.fields[i] = in
	}
	e.setFocus(taskFieldDescription)
	return e
}

func (e *tasksEditor) setFocus(i int) {
	e.focus = i
	for j := range e.fields {
		if j == i {
			e.fields[j].Focus()
			e.fields[j].PromptStyle = formatter.StyleHeader
		} else {
			e.fields[j].Blur()
			e.fields[j].PromptStyle = formatter.StyleDim
		}
	}
}

func (e *tasksEditor) objective() *domain.Objective {
	if e.objIdx >= len(e.plan.Objectives) {
		return nil
	}
	return &e.plan.Objectives[e.objIdx]
}

func (e *tasksEditor) tasks() []domain.Task {
	o := e.objective()
	if o == nil {
		return nil
	}
	return e.plan.TasksForObjective(o.ID)
}

func (e *tasksEditor) submit() {
	o := e.objective()
	desc := strings.TrimSpace(e.fields[taskFieldDescription].Value())
	if o == nil || desc == "" {
		return
	}
	e.plan.AddTask(o.ID, desc,
		strings.TrimSpace(e.fields[taskFieldResources].Value()),
		strings.TrimSpace(e.fields[taskFieldResponsibility].Value()),
		strings.TrimSpace(e.fields[taskFieldTimeline].Value()),
	)
	for i := range e.fields {
		e.fields[i].SetValue("")
	}
	e.setFocus(taskFieldDescription)
}

func (e *tasksEditor) Init() tea.Cmd { return textinput.Blink }

func (e *tasksEditor) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyTab:
			e.setFocus((e.focus + 1) % taskFieldCount)
			return nil
		case tea.KeyShiftTab:
			e.setFocus((e.focus + taskFieldCount - 1) % taskFieldCount)
			return nil
		case tea.KeyCtrlO:
			if n := len(e.plan.Objectives); n > 0 {
				e.objIdx = (e.objIdx + 1) % n
				e.sel = 0
			}
			return nil
		case tea.KeyEnter:
			if e.focus < taskFieldCount-1 {
				e.setFocus(e.focus + 1)
			} else {
				e.submit()
			}
			return nil
		case tea.KeyUp:
			if e.sel > 0 {
				e.sel--
			}
			return nil
		case tea.KeyDown:
			if e.sel < len(e.tasks())-1 {
				e.sel++
			}
			return nil
		case tea.KeyCtrlD:
			tasks := e.tasks()
			if e.sel < len(tasks) {
				e.plan.RemoveTask(tasks[e.sel].ID)
				if n := len(e.tasks()); e.sel >= n && n > 0 {
					e.sel = n - 1
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	e.fields[e.focus], cmd = e.fields[e.focus].Update(msg)
	return cmd
}

func (e *tasksEditor) View(width int) string {
	if len(e.plan.Objectives) == 0 {
		return formatter.Dim("No objectives to plan tasks for. Go back and add objectives first.")
	}

	var b strings.Builder
	o := e.objective()
	b.WriteString(formatter.Dim(fmt.Sprintf("Objective %d of %d", e.objIdx+1, len(e.plan.Objectives))) + "  " +
		formatter.Bold(formatter.Truncate(o.Text, width-18)) + "\n\n")

	tasks := e.tasks()
	if len(tasks) == 0 {
		b.WriteString(formatter.Dim("No tasks for this objective yet.") + "\n")
	}
	for i, t := range tasks {
		marker := "  "
		if i == e.sel {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		line := t.Description
		var meta []string
		if t.Responsibility != "" {
			meta = append(meta, t.Responsibility)
		}
		if t.Timeline != "" {
			meta = append(meta, t.Timeline)
		}
		if len(meta) > 0 {
			line += " " + formatter.Dim("["+strings.Join(meta, ", ")+"]")
		}
		b.WriteString(marker + formatter.Truncate(line, width-4) + "\n")
	}

	b.WriteString("\n")
	for i := range e.fields {
		b.WriteString(e.fields[i].View() + "\n")
	}
	return b.String()
}

func (e *tasksEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/add")),
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "objective")),
		key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	}
}
