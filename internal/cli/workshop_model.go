package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"planshop/internal/cli/formatter"
	"planshop/internal/domain"
	"planshop/internal/wizard"
)

// workshopModel is the root bubbletea Model for the workshop. It owns the
// session, delegates data entry to the current step's editor, and runs the
// advisory calls as background commands.
type workshopModel struct {
	app       *App
	session   *wizard.Session
	editor    stepEditor
	draftName string

	spin     spinner.Model
	jumpForm *huh.Form
	jumpTo   string

	status   string
	width    int
	height   int
	quitting bool
}

func newWorkshopModel(app *App, session *wizard.Session, draftName string) workshopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := workshopModel{
		app:       app,
		session:   session,
		draftName: draftName,
		spin:      sp,
	}
	m.editor = newStepEditor(session.Seq.Current(), session)
	return m
}

func (m workshopModel) Init() tea.Cmd {
	// A resumed draft can land directly on the terminal step with no report
	// saved, so the integration call has to fire here too, not only on
	// navigation.
	if cmd := m.pendingReportCmd(); cmd != nil {
		return tea.Batch(m.editor.Init(), cmd)
	}
	return m.editor.Init()
}

func (m workshopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.editor.Update(msg)

	case spinner.TickMsg:
		if !m.session.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case advisoryResultMsg:
		m.session.ResolveAdvisory(msg.tok, msg.text, msg.errInfo)
		return m, nil

	case reportResultMsg:
		m.session.ResolveFinalReport(msg.tok, msg.text, msg.errInfo)
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Could not save draft: " + msg.err.Error())
		} else {
			m.status = formatter.StyleGreen.Render(fmt.Sprintf("Draft %q saved.", msg.name))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.editor.Update(msg)
}

func (m workshopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.status = ""

	if m.jumpForm != nil {
		return m.updateJumpForm(msg)
	}

	// The reflection overlay swallows input until dismissed. Dismissal is
	// optional in the sense that navigating away also closes it.
	if m.session.Seq.InterstitialOpen() {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
			m.session.Seq.DismissInterstitial()
		case tea.KeyCtrlN:
			return m.navigate(m.session.Advance())
		case tea.KeyCtrlB:
			return m.navigate(m.session.Retreat())
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlN:
		return m.navigate(m.session.Advance())
	case tea.KeyCtrlB:
		return m.navigate(m.session.Retreat())
	case tea.KeyCtrlJ:
		return m.openJumpForm()
	case tea.KeyCtrlA:
		// On the terminal step the request action retries the integrated
		// report rather than asking for step advice, which the summary
		// screen has nowhere to show.
		if m.session.Seq.Current().ID == wizard.StepSummary {
			return m.requestReport()
		}
		return m.requestAdvisory()
	case tea.KeyCtrlS:
		return m, m.saveDraft()
	case tea.KeyCtrlR:
		m.session.Seq.ReopenInterstitial()
		return m, nil
	}

	return m, m.editor.Update(msg)
}

// navigate rebuilds the editor after a successful step change and fires the
// final-integration call when the terminal step is reached for the first time.
func (m workshopModel) navigate(moved bool) (tea.Model, tea.Cmd) {
	if !moved {
		return m, nil
	}
	m.editor = newStepEditor(m.session.Seq.Current(), m.session)

	if cmd := m.pendingReportCmd(); cmd != nil {
		return m, tea.Batch(m.editor.Init(), cmd)
	}
	return m, m.editor.Init()
}

// pendingReportCmd returns the final-integration command when the session sits
// at the terminal step without a cached report, nil otherwise.
func (m workshopModel) pendingReportCmd() tea.Cmd {
	if !m.session.NeedsFinalReport() {
		return nil
	}
	tok, ok := m.session.BeginRequest()
	if !ok {
		return nil
	}
	return tea.Batch(
		requestFinalReport(m.app.Gateway, tok, m.session.Plan),
		m.spin.Tick)
}

func (m workshopModel) requestAdvisory() (tea.Model, tea.Cmd) {
	tok, ok := m.session.BeginRequest()
	if !ok {
		m.status = formatter.Dim("An advisory request is already running.")
		return m, nil
	}
	return m, tea.Batch(
		requestAdvisory(m.app.Gateway, tok, m.session.Plan),
		m.spin.Tick)
}

// requestReport re-runs the final integration on user request, typically
// after a failed first attempt.
func (m workshopModel) requestReport() (tea.Model, tea.Cmd) {
	tok, ok := m.session.BeginRequest()
	if !ok {
		m.status = formatter.Dim("The report request is already running.")
		return m, nil
	}
	return m, tea.Batch(
		requestFinalReport(m.app.Gateway, tok, m.session.Plan),
		m.spin.Tick)
}

func (m workshopModel) saveDraft() tea.Cmd {
	draft := &domain.Draft{
		Name:        m.draftName,
		Plan:        m.session.Plan.Clone(),
		StepIndex:   m.session.Seq.Index(),
		FinalReport: m.session.FinalReport(),
	}
	repo := m.app.Drafts
	name := m.draftName
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return draftSavedMsg{name: name, err: repo.Save(ctx, draft)}
	}
}

func (m workshopModel) openJumpForm() (tea.Model, tea.Cmd) {
	current := m.session.Seq.Index()
	if current == 0 {
		m.status = formatter.Dim("Nothing to go back to yet.")
		return m, nil
	}

	var options []huh.Option[string]
	for i, st := range m.session.Seq.Steps() {
		if i >= current {
			break
		}
		if st.Transition {
			continue
		}
		options = append(options, huh.NewOption(st.Title, strconv.Itoa(i)))
	}

	m.jumpForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Return to which step?").
				Options(options...).
				Value(&m.jumpTo),
		),
	).WithTheme(planshopHuhTheme()).WithShowHelp(false)
	return m, m.jumpForm.Init()
}

func (m workshopModel) updateJumpForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.jumpForm = nil
		return m, nil
	}

	form, cmd := m.jumpForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.jumpForm = f
	}

	if m.jumpForm.State == huh.StateCompleted {
		m.jumpForm = nil
		target, err := strconv.Atoi(m.jumpTo)
		if err != nil {
			return m, cmd
		}
		model, navCmd := m.navigate(m.session.JumpTo(target))
		return model, tea.Batch(cmd, navCmd)
	}
	return m, cmd
}
