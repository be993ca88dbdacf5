package agent

import (
	"context"
	"fmt"
)

// Client is the uniform contract for a generative backend: a system
// instruction and a user instruction go in, raw text comes out. Backends
// are asked for JSON-shaped output, but callers must treat the returned
// string as untrusted.
type Client interface {
	Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// ProviderError wraps any network, authentication, or backend failure from
// a generative provider. Callers route it to the fallback path; it is never
// surfaced to the end user.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
