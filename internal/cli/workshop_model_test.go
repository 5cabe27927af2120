package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planshop/internal/db"
	"planshop/internal/domain"
	"planshop/internal/llm"
	"planshop/internal/repository"
	"planshop/internal/teatest"
	"planshop/internal/wizard"
)

type fakeGateway struct {
	advisoryText  string
	reportText    string
	err           error
	advisoryCalls int
	reportCalls   int
	lastStep      wizard.StepID
}

func (g *fakeGateway) StepAdvisory(ctx context.Context, step wizard.StepID, plan *domain.Plan) (string, error) {
	g.advisoryCalls++
	g.lastStep = step
	return g.advisoryText, g.err
}

func (g *fakeGateway) FinalIntegration(ctx context.Context, plan *domain.Plan) (string, error) {
	g.reportCalls++
	return g.reportText, g.err
}

type workshopFixture struct {
	driver  *teatest.Driver
	session *wizard.Session
	gateway *fakeGateway
	app     *App
}

func newWorkshopFixture(t *testing.T) *workshopFixture {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	gw := &fakeGateway{advisoryText: "Consider focus.", reportText: "# Integrated Plan"}
	app := &App{
		Gateway: gw,
		Drafts:  repository.NewSQLiteDraftRepo(database),
	}
	session := wizard.NewSession(wizard.DefaultSteps())

	d := teatest.New(t, newWorkshopModel(app, session, "default"), teatest.WithSize(100, 40))
	d.DrainInit()
	return &workshopFixture{driver: d, session: session, gateway: gw, app: app}
}

// advanceTo presses ctrl+n until the session reaches the given step.
func (f *workshopFixture) advanceTo(t *testing.T, id wizard.StepID) {
	t.Helper()
	for i := 0; i < 10 && f.session.Seq.Current().ID != id; i++ {
		f.driver.Press(tea.KeyCtrlN)
	}
	require.Equal(t, id, f.session.Seq.Current().ID)
}

func TestWorkshopOpensOnContextStep(t *testing.T) {
	f := newWorkshopFixture(t)

	assert.Equal(t, wizard.StepContext, f.session.Seq.Current().ID)
	assert.Contains(t, f.driver.View(), "Mapping & Background")
	assert.Contains(t, f.driver.View(), "Where are we today?")
}

func TestTypingCommitsToPlan(t *testing.T) {
	f := newWorkshopFixture(t)

	f.driver.Type("small service")

	assert.Equal(t, "small service", f.session.Plan.SelfContext)
}

func TestAdvanceAndRetreat(t *testing.T) {
	f := newWorkshopFixture(t)

	f.driver.Press(tea.KeyCtrlN)
	assert.Equal(t, wizard.StepSwot, f.session.Seq.Current().ID)
	assert.Contains(t, f.driver.View(), "Strengths (0)")

	f.driver.Press(tea.KeyCtrlB)
	assert.Equal(t, wizard.StepContext, f.session.Seq.Current().ID)
}

func TestSwotEntryRoundTrip(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepSwot)

	f.driver.Type("experienced team")
	f.driver.PressEnter()

	assert.Equal(t, []string{"experienced team"}, f.session.Plan.Swot.Strengths)
	assert.Contains(t, f.driver.View(), "Strengths (1)")
}

func TestTransitionInterstitialShownThenDismissed(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepTransition)

	assert.True(t, f.session.Seq.InterstitialOpen())
	assert.Contains(t, f.driver.View(), "PAUSE BEFORE PLANNING")

	f.driver.PressEnter()
	assert.False(t, f.session.Seq.InterstitialOpen())
	assert.NotContains(t, f.driver.View(), "PAUSE BEFORE PLANNING")
}

func TestTransitionSkippedOnSecondPass(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepTransition)
	f.advanceTo(t, wizard.StepVision)

	f.driver.Press(tea.KeyCtrlB) // vision -> transition
	f.driver.Press(tea.KeyCtrlB) // transition -> swot
	require.Equal(t, wizard.StepSwot, f.session.Seq.Current().ID)

	f.driver.Press(tea.KeyCtrlN)
	assert.Equal(t, wizard.StepVision, f.session.Seq.Current().ID)
}

func TestReopenReflection(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepVision)

	f.driver.PressEnter()
	require.False(t, f.session.Seq.InterstitialOpen())

	f.driver.Press(tea.KeyCtrlR)
	assert.True(t, f.session.Seq.InterstitialOpen())
	assert.Contains(t, f.driver.View(), "THINKING ABOUT THE FUTURE")
}

func TestAdvisoryRequestRendersResponse(t *testing.T) {
	f := newWorkshopFixture(t)
	f.gateway.advisoryText = "Sharpen the **context** first."

	f.driver.Press(tea.KeyCtrlA)

	assert.Equal(t, 1, f.gateway.advisoryCalls)
	assert.Equal(t, wizard.StepContext, f.gateway.lastStep)
	assert.Contains(t, f.driver.View(), "Sharpen the context first.")
}

func TestAdvisoryClearedOnNavigation(t *testing.T) {
	f := newWorkshopFixture(t)

	f.driver.Press(tea.KeyCtrlA)
	require.NotEmpty(t, f.session.Advisory())

	f.driver.Press(tea.KeyCtrlN)
	assert.Empty(t, f.session.Advisory())
	assert.NotContains(t, f.driver.View(), "Consider focus.")
}

func TestCredentialErrorNamesTheFix(t *testing.T) {
	f := newWorkshopFixture(t)
	f.gateway.err = llm.ErrCredential

	f.driver.Press(tea.KeyCtrlA)

	assert.Contains(t, f.driver.View(), "PLANSHOP_API_KEY")
}

func TestFinalReportFiresOncePerSession(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepSummary)

	assert.Equal(t, 1, f.gateway.reportCalls)
	assert.Contains(t, f.driver.View(), "INTEGRATED PLAN")

	f.driver.Press(tea.KeyCtrlB)
	f.driver.Press(tea.KeyCtrlN)
	assert.Equal(t, 1, f.gateway.reportCalls)
}

func TestSummaryShowsPlaceholderRows(t *testing.T) {
	f := newWorkshopFixture(t)
	f.session.Plan.AddGoal("Childless goal")
	f.advanceTo(t, wizard.StepSummary)

	assert.Contains(t, f.driver.View(), "Childless goal")
}

func TestJumpFormOpensAndJumpsBack(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepVision)
	f.driver.PressEnter() // dismiss reflection

	f.driver.Press(tea.KeyCtrlJ)
	assert.Contains(t, f.driver.View(), "Return to which step?")

	f.driver.PressEnter() // first option: Mapping & Background
	assert.Equal(t, wizard.StepContext, f.session.Seq.Current().ID)
}

func TestJumpFormEscCancels(t *testing.T) {
	f := newWorkshopFixture(t)
	f.advanceTo(t, wizard.StepSwot)

	f.driver.Press(tea.KeyCtrlJ)
	f.driver.PressEsc()

	assert.NotContains(t, f.driver.View(), "Return to which step?")
	assert.Equal(t, wizard.StepSwot, f.session.Seq.Current().ID)
}

func TestDraftSaveAndResume(t *testing.T) {
	f := newWorkshopFixture(t)
	f.driver.Type("a youth service")
	f.driver.Press(tea.KeyCtrlN)

	f.driver.Press(tea.KeyCtrlS)
	assert.Contains(t, f.driver.View(), "saved")

	draft, err := loadDraft(context.Background(), f.app, "default")
	require.NoError(t, err)
	assert.Equal(t, "a youth service", draft.Plan.SelfContext)
	assert.Equal(t, 1, draft.StepIndex)

	resumed := wizard.ResumeSession(wizard.DefaultSteps(), draft.Plan, draft.StepIndex, draft.FinalReport)
	assert.Equal(t, wizard.StepSwot, resumed.Seq.Current().ID)
	assert.False(t, resumed.Seq.InterstitialOpen())
}

func TestLoadDraftMissing(t *testing.T) {
	f := newWorkshopFixture(t)

	_, err := loadDraft(context.Background(), f.app, "nothing")
	assert.ErrorContains(t, err, "no saved draft")
}

func TestSummaryRetryRerunsIntegration(t *testing.T) {
	f := newWorkshopFixture(t)
	f.gateway.err = llm.ErrUnavailable
	f.advanceTo(t, wizard.StepSummary)
	require.Equal(t, 1, f.gateway.reportCalls)

	f.gateway.err = nil
	f.driver.Press(tea.KeyCtrlA)

	assert.Equal(t, 2, f.gateway.reportCalls)
	assert.Zero(t, f.gateway.advisoryCalls, "terminal step must not ask for step advice")
	assert.Contains(t, f.driver.View(), "INTEGRATED PLAN")
}

func TestResumeAtSummaryWithoutReportFiresIntegration(t *testing.T) {
	gw := &fakeGateway{reportText: "# Integrated Plan"}
	steps := wizard.DefaultSteps()
	session := wizard.ResumeSession(steps, domain.NewPlan(), len(steps)-1, "")

	d := teatest.New(t, newWorkshopModel(&App{Gateway: gw}, session, "default"), teatest.WithSize(100, 40))
	d.DrainInit()

	assert.Equal(t, 1, gw.reportCalls)
	assert.Contains(t, d.View(), "INTEGRATED PLAN")
}
