package symptom

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// ProviderClient is the capability the orchestrator needs from a generative
// backend. Re-declared here to decouple from the specific adapter
// implementation; internal/agent provides the concrete clients.
type ProviderClient interface {
	Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

type Service interface {
	Analyze(ctx context.Context, q SymptomQuery) AnalysisResult
}

type service struct {
	provider    ProviderClient
	temperature float64
	log         zerolog.Logger
}

// NewService builds the analysis orchestrator. Temperature is pinned at
// startup; keep it near zero for reproducible output.
func NewService(provider ProviderClient, temperature float64, log zerolog.Logger) Service {
	return &service{
		provider:    provider,
		temperature: temperature,
		log:         log,
	}
}

// Analyze runs the full provider path — prompt composition, invocation,
// parse, normalization — and absorbs every failure into the local fallback.
// There are exactly two outcomes and both satisfy the AnalysisResult
// contract; the caller never observes an error. A single provider attempt
// is made per call, no retries.
func (s *service) Analyze(ctx context.Context, q SymptomQuery) AnalysisResult {
	result, err := s.analyzeWithProvider(ctx, q)
	if err != nil {
		s.log.Warn().Err(err).Msg("provider path failed, returning fallback response")
		result = Fallback(q)
		result.Source = SourceFallback
		return result
	}

	result.Source = SourceLLM
	return result
}

func (s *service) analyzeWithProvider(ctx context.Context, q SymptomQuery) (AnalysisResult, error) {
	content, err := s.provider.Invoke(ctx, systemPrompt, buildUserPrompt(q), s.temperature)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("provider invocation: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return AnalysisResult{}, fmt.Errorf("parse provider response: %w", err)
	}

	return Normalize(raw, q), nil
}
