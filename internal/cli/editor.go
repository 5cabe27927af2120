package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planshop/internal/cli/formatter"
	"planshop/internal/wizard"
)

// stepEditor is the data-entry surface for one workshop step. Editors mutate
// the session plan directly through its typed operations; the workshop model
// owns navigation and the advisory panel.
type stepEditor interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Hints() []key.Binding
}

// newStepEditor builds the editor for the given step.
func newStepEditor(step wizard.Step, s *wizard.Session) stepEditor {
	if step.Transition {
		return &transitionEditor{}
	}
	switch step.ID {
	case wizard.StepContext:
		return newTextStepEditor(
			"Describe the service's current situation and environment...",
			s.Plan.SelfContext, s.Plan.SetSelfContext)
	case wizard.StepSwot:
		return newSwotEditor(s.Plan)
	case wizard.StepVision:
		return newTextStepEditor(
			"Write the vision statement for the coming years...",
			s.Plan.Vision, s.Plan.SetVision)
	case wizard.StepGoals:
		return newGoalsEditor(s.Plan)
	case wizard.StepObjectives:
		return newObjectivesEditor(s.Plan)
	case wizard.StepTasks:
		return newTasksEditor(s.Plan)
	case wizard.StepConstraints:
		return newTextStepEditor(
			"List the constraints, risks and mitigations...",
			s.Plan.Constraints, s.Plan.SetConstraints)
	case wizard.StepSummary:
		return newSummaryEditor(s)
	}
	return &transitionEditor{}
}

// transitionEditor is the empty surface of a pure-transition step. The step's
// reflection is rendered by the interstitial overlay, not here.
type transitionEditor struct{}

func (e *transitionEditor) Init() tea.Cmd              { return nil }
func (e *transitionEditor) Update(msg tea.Msg) tea.Cmd { return nil }

func (e *transitionEditor) View(width int) string {
	return formatter.Dim("A moment between analysis and planning. Continue when ready.")
}

func (e *transitionEditor) Hints() []key.Binding { return nil }
