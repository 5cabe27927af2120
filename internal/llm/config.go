package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskAdvisory is the quick per-step advisory call.
	TaskAdvisory TaskType = "advisory"
	// TaskIntegration is the slow final-integration call that produces the
	// long-form narrative report.
	TaskIntegration TaskType = "integration"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Model       string // overrides the global model if non-empty
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the LLM subsystem. The API key is the
// single required secret; everything else has working defaults.
type Config struct {
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  20000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvisory:    {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 20000},
			TaskIntegration: {Model: "gemini-2.5-pro", Temperature: 0.5, MaxTokens: 8192, TimeoutMs: 90000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling back
// to defaults for any unset values. An empty PLANSHOP_API_KEY is legal here;
// it surfaces as ErrCredential on the first generation attempt.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("PLANSHOP_API_KEY")
	if v := os.Getenv("PLANSHOP_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PLANSHOP_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PLANSHOP_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PLANSHOP_LLM_REPORT_MODEL"); v != "" {
		tc := cfg.Tasks[TaskIntegration]
		tc.Model = v
		cfg.Tasks[TaskIntegration] = tc
	}
	if v := os.Getenv("PLANSHOP_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PLANSHOP_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAdvisory, "PLANSHOP_LLM_ADVISORY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskIntegration, "PLANSHOP_LLM_INTEGRATION_TIMEOUT_MS")

	return cfg
}

// TaskModel returns the effective model for a given task type.
func (c Config) TaskModel(task TaskType) string {
	if tc, ok := c.Tasks[task]; ok && tc.Model != "" {
		return tc.Model
	}
	return c.Model
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
