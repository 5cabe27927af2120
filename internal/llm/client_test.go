package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func candidateBody(text string) geminiResponse {
	var resp geminiResponse
	resp.Candidates = []struct {
		Content geminiContent `json:"content"`
	}{
		{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
	}
	return resp
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "system prompt", req.SystemInstruction.Parts[0].Text)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user prompt", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(candidateBody("## Insights\n* phrase the vision in present tense"))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskAdvisory,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, "## Insights\n* phrase the vision in present tense", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiClient_Generate_IntegrationTaskUsesReportModel(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		json.NewEncoder(w).Encode(candidateBody("report"))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskIntegration, UserPrompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-2.5-pro:generateContent", gotPath.Load())
}

func TestGeminiClient_Generate_MissingKeyFailsBeforeDispatch(t *testing.T) {
	var called atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})

	require.ErrorIs(t, err, ErrCredential)
	assert.False(t, called.Load(), "no request should leave the client without a key")
}

func TestGeminiClient_Generate_RejectedKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})

	require.ErrorIs(t, err, ErrCredential)
	assert.Equal(t, int32(1), calls.Load(), "credential rejection is not retried")
}

func TestGeminiClient_Generate_ServerErrorRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})

	require.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGeminiClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})

	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(candidateBody("late"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskAdvisory] = TaskConfig{Temperature: 0.7, MaxTokens: 64, TimeoutMs: 50}

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})

	require.ErrorIs(t, err, ErrTimeout)
}

func TestGeminiClient_Generate_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewGeminiClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAdvisory, UserPrompt: "p"})
	require.Error(t, err)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "CREDENTIAL", events[0].ErrorCode)
}

func TestGeminiClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	noKey := testConfig(srv.URL)
	noKey.APIKey = ""
	assert.False(t, NewGeminiClient(noKey, NoopObserver{}).Available(context.Background()))
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
