package advisory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planshop/internal/domain"
	"planshop/internal/llm"
	"planshop/internal/wizard"
)

// fakeClient records the last request and returns a canned response.
type fakeClient struct {
	lastReq llm.GenerateRequest
	text    string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text}, nil
}

func (f *fakeClient) Available(context.Context) bool { return true }

func testPlan() *domain.Plan {
	p := domain.NewPlan()
	p.SetVision("a leading service")
	g := p.AddGoal("reduce wait times")
	p.AddObjective(g.ID, "cut average wait to 5 days")
	return p
}

func TestStepAdvisory_SendsTopicAndSnapshot(t *testing.T) {
	client := &fakeClient{text: "* focus on external threats"}
	gw := NewGateway(client)

	text, err := gw.StepAdvisory(context.Background(), wizard.StepSwot, testPlan())

	require.NoError(t, err)
	assert.Equal(t, "* focus on external threats", text)
	assert.Equal(t, llm.TaskAdvisory, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "SWOT analysis")
	assert.Contains(t, client.lastReq.UserPrompt, `"reduce wait times"`)

	// The snapshot embedded in the prompt is the plan's JSON form.
	snapshot, err := json.Marshal(testPlan())
	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, string(snapshot)[:20])
}

func TestStepAdvisory_UnknownStepStillWorks(t *testing.T) {
	client := &fakeClient{text: "ok"}
	gw := NewGateway(client)

	_, err := gw.StepAdvisory(context.Background(), wizard.StepID("mystery"), testPlan())

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "mystery")
}

func TestStepAdvisory_EmptyResponseBecomesPlaceholder(t *testing.T) {
	client := &fakeClient{err: llm.ErrEmptyResponse}
	gw := NewGateway(client)

	text, err := gw.StepAdvisory(context.Background(), wizard.StepVision, testPlan())

	require.NoError(t, err)
	assert.Equal(t, Placeholder, text)
}

func TestFinalIntegration_AsksForTheFiveColumnTable(t *testing.T) {
	client := &fakeClient{text: "| Goal | SMART Objective | Task | Responsibility | Timeline |"}
	gw := NewGateway(client)

	text, err := gw.FinalIntegration(context.Background(), testPlan())

	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Equal(t, llm.TaskIntegration, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Goal | SMART Objective | Task | Responsibility | Timeline")
	assert.Contains(t, client.lastReq.UserPrompt, "constraint")
}

func TestFinalIntegration_EmptyResponseBecomesPlaceholder(t *testing.T) {
	client := &fakeClient{err: llm.ErrEmptyResponse}
	gw := NewGateway(client)

	text, err := gw.FinalIntegration(context.Background(), testPlan())

	require.NoError(t, err)
	assert.Equal(t, Placeholder, text)
}

func TestClassifyError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ClassifyError(nil))
	})

	t.Run("credential maps to config kind", func(t *testing.T) {
		info := ClassifyError(llm.ErrCredential)
		require.NotNil(t, info)
		assert.Equal(t, wizard.ErrorConfig, info.Kind)
		assert.Contains(t, info.Message, "PLANSHOP_API_KEY")
	})

	t.Run("everything else maps to transport kind", func(t *testing.T) {
		for _, err := range []error{llm.ErrUnavailable, llm.ErrTimeout, llm.ErrRetryExhausted} {
			info := ClassifyError(err)
			require.NotNil(t, info)
			assert.Equal(t, wizard.ErrorTransport, info.Kind)
			assert.NotContains(t, info.Message, "PLANSHOP_API_KEY")
		}
	})
}
