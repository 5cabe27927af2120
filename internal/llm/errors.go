package llm

import "errors"

var (
	// ErrCredential indicates the API key is missing from the environment or
	// was rejected by the service. Callers surface this distinctly so the
	// operator knows to configure the credential.
	ErrCredential = errors.New("api credential missing or rejected")

	// ErrUnavailable indicates the generation service is unreachable.
	ErrUnavailable = errors.New("generation service unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the service answered successfully but
	// returned no text. Treated as a soft failure by callers.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
