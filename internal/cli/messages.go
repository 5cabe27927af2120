package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"planshop/internal/advisory"
	"planshop/internal/domain"
	"planshop/internal/wizard"
)

// advisoryResultMsg carries the outcome of a per-step advisory request.
type advisoryResultMsg struct {
	tok     wizard.RequestToken
	text    string
	errInfo *wizard.ErrorInfo
}

// reportResultMsg carries the outcome of the final-integration request.
type reportResultMsg struct {
	tok     wizard.RequestToken
	text    string
	errInfo *wizard.ErrorInfo
}

// draftSavedMsg reports the outcome of a draft save.
type draftSavedMsg struct {
	name string
	err  error
}

const requestTimeout = 2 * time.Minute

// requestAdvisory calls the gateway off the UI loop. The plan is cloned up
// front so the user can keep typing while the request is pending.
func requestAdvisory(gw advisory.Gateway, tok wizard.RequestToken, plan *domain.Plan) tea.Cmd {
	snapshot := plan.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := gw.StepAdvisory(ctx, tok.Step(), snapshot)
		if err != nil {
			return advisoryResultMsg{tok: tok, errInfo: advisory.ClassifyError(err)}
		}
		return advisoryResultMsg{tok: tok, text: text}
	}
}

// requestFinalReport calls the slow whole-plan integration off the UI loop.
func requestFinalReport(gw advisory.Gateway, tok wizard.RequestToken, plan *domain.Plan) tea.Cmd {
	snapshot := plan.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := gw.FinalIntegration(ctx, snapshot)
		if err != nil {
			return reportResultMsg{tok: tok, errInfo: advisory.ClassifyError(err)}
		}
		return reportResultMsg{tok: tok, text: text}
	}
}
