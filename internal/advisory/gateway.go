package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"planshop/internal/domain"
	"planshop/internal/llm"
	"planshop/internal/wizard"
)

// Placeholder is shown when the service answers successfully but with no
// content. A soft failure: not an error, just nothing useful to display.
const Placeholder = "The advisory service returned no content. Try again in a moment."

// Gateway is the narrow contract to the external text-generation service.
// StepAdvisory is the quick per-step call; FinalIntegration is the slow
// whole-plan call made once per session on reaching the final step.
type Gateway interface {
	StepAdvisory(ctx context.Context, step wizard.StepID, plan *domain.Plan) (string, error)
	FinalIntegration(ctx context.Context, plan *domain.Plan) (string, error)
}

type gateway struct {
	client llm.Client
}

// NewGateway creates a Gateway backed by an LLM client.
func NewGateway(client llm.Client) Gateway {
	return &gateway{client: client}
}

func (g *gateway) StepAdvisory(ctx context.Context, step wizard.StepID, plan *domain.Plan) (string, error) {
	snapshot, err := planSnapshot(plan)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvisory,
		SystemPrompt: advisorySystemPrompt,
		UserPrompt:   buildStepPrompt(step, snapshot),
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return Placeholder, nil
	}
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (g *gateway) FinalIntegration(ctx context.Context, plan *domain.Plan) (string, error) {
	snapshot, err := planSnapshot(plan)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskIntegration,
		SystemPrompt: integrationSystemPrompt,
		UserPrompt:   buildIntegrationPrompt(snapshot),
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return Placeholder, nil
	}
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func planSnapshot(plan *domain.Plan) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("serializing plan snapshot: %w", err)
	}
	return string(data), nil
}

// ClassifyError converts a gateway failure into the user-facing taxonomy.
// Credential problems get a message naming the fix so the operator can
// self-diagnose; everything else is a retryable transport failure.
func ClassifyError(err error) *wizard.ErrorInfo {
	if err == nil {
		return nil
	}
	if errors.Is(err, llm.ErrCredential) {
		return &wizard.ErrorInfo{
			Kind:    wizard.ErrorConfig,
			Message: "The AI credential is not configured or was rejected. Set PLANSHOP_API_KEY in the environment and try again.",
		}
	}
	return &wizard.ErrorInfo{
		Kind:    wizard.ErrorTransport,
		Message: "Could not reach the advisory service. Check your connection and retry.",
	}
}
