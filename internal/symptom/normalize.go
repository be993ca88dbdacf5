package symptom

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	maxConditions = 5

	defaultDisclaimer = "This is educational information only and not a substitute for professional medical advice, diagnosis, or treatment. Always consult with a qualified healthcare professional."

	defaultConditionName      = "Unknown condition"
	defaultConditionRationale = "No rationale provided"
	defaultStepText           = "Consult with a healthcare professional"
	synthesizedStepText       = "Consult with a healthcare professional for proper evaluation"
)

// Normalize repairs raw, untrusted provider output into the strict
// AnalysisResult contract. It never fails: missing fields get defaults,
// wrong-typed fields are coerced or discarded, and the result always
// satisfies the contract invariants (0-5 conditions, >=1 next step,
// list-shaped red flags, educational disclaimer).
func Normalize(raw map[string]any, q SymptomQuery) AnalysisResult {
	conditions := normalizeConditions(raw["probable_conditions"])
	steps := normalizeNextSteps(raw["recommended_next_steps"])
	if len(steps) == 0 {
		steps = append(steps, NextStep{Type: StepSeePhysician, Text: synthesizedStepText})
	}

	disclaimer, _ := raw["disclaimer"].(string)
	if !strings.Contains(strings.ToLower(disclaimer), "educational") {
		disclaimer = defaultDisclaimer
	}

	return AnalysisResult{
		ProbableConditions:   conditions,
		RecommendedNextSteps: steps,
		RedFlags:             normalizeRedFlags(raw["red_flags"]),
		Disclaimer:           disclaimer,
		Timestamp:            time.Now().UTC(),
	}
}

// normalizeConditions keeps the first 5 usable entries in order. Entries
// that are not object-shaped at all are dropped silently; entries with
// missing or unusable fields are kept with placeholders and a zero
// confidence.
func normalizeConditions(v any) []Condition {
	items, ok := v.([]any)
	if !ok {
		return []Condition{}
	}

	conditions := []Condition{}
	for _, item := range items {
		if len(conditions) == maxConditions {
			break
		}
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		conditions = append(conditions, Condition{
			Condition:  stringOr(entry["condition"], defaultConditionName),
			Confidence: coerceConfidence(entry["confidence"]),
			Rationale:  stringOr(entry["rationale"], defaultConditionRationale),
		})
	}
	return conditions
}

// normalizeNextSteps repairs every entry rather than dropping it: an
// unrecognized category becomes see_physician and missing text becomes a
// generic consult message.
func normalizeNextSteps(v any) []NextStep {
	items, ok := v.([]any)
	if !ok {
		return []NextStep{}
	}

	steps := make([]NextStep, 0, len(items))
	for _, item := range items {
		step := NextStep{Type: StepSeePhysician, Text: defaultStepText}
		if entry, ok := item.(map[string]any); ok {
			if t, ok := entry["type"].(string); ok && isValidStepType(t) {
				step.Type = StepType(t)
			}
			if text, ok := entry["text"].(string); ok && text != "" {
				step.Text = text
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// normalizeRedFlags discards anything that is not list-shaped wholesale;
// no per-element repair is attempted.
func normalizeRedFlags(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	flags := []string{}
	for _, item := range items {
		if s, ok := item.(string); ok {
			flags = append(flags, s)
		}
	}
	return flags
}

func isValidStepType(t string) bool {
	switch StepType(t) {
	case StepSelfCare, StepSeePhysician, StepUrgentCare:
		return true
	}
	return false
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// coerceConfidence converts any value to a confidence in [0,1]. Values that
// cannot be coerced, or that fall outside the range, come back as 0.0 —
// untrustworthy scores are floored, never guessed at.
func coerceConfidence(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0
	}
	return f
}
