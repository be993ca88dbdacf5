package symptom

import (
	"fmt"
	"strings"
	"time"
)

// StepType is the urgency category of a recommended next step.
type StepType string

const (
	StepSelfCare     StepType = "self_care"
	StepSeePhysician StepType = "see_physician"
	StepUrgentCare   StepType = "urgent_care"
)

// Sex and severity enumerations accepted on input.
const (
	SexMale   = "male"
	SexFemale = "female"
	SexOther  = "other"

	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Source values recorded on AnalysisResult for observability.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

const (
	maxSymptomsLen  = 2000
	maxContextLen   = 1000
	maxAge          = 120
	maxDurationDays = 3650
)

// SymptomQuery is the validated input to the analysis pipeline. Age and
// DurationDays are pointers so zero values stay distinguishable from absent
// fields.
type SymptomQuery struct {
	Symptoms     string `json:"symptoms"`
	Age          *int   `json:"age,omitempty"`
	Sex          string `json:"sex,omitempty"`
	DurationDays *int   `json:"duration_days,omitempty"`
	Severity     string `json:"severity,omitempty"`
	Context      string `json:"context,omitempty"`
}

// ValidationError reports a query field that fails its structural
// constraints. It is the only failure a caller of the service boundary ever
// sees; everything downstream of validation is absorbed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate trims the symptom text and checks every field constraint. Must be
// called before Analyze; the core assumes a validated query.
func (q *SymptomQuery) Validate() error {
	q.Symptoms = strings.TrimSpace(q.Symptoms)
	if q.Symptoms == "" {
		return &ValidationError{Field: "symptoms", Message: "symptoms description cannot be empty"}
	}
	if len(q.Symptoms) > maxSymptomsLen {
		return &ValidationError{Field: "symptoms", Message: fmt.Sprintf("symptoms description exceeds %d characters", maxSymptomsLen)}
	}
	if q.Age != nil && (*q.Age < 0 || *q.Age > maxAge) {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("age must be between 0 and %d", maxAge)}
	}
	if q.Sex != "" && q.Sex != SexMale && q.Sex != SexFemale && q.Sex != SexOther {
		return &ValidationError{Field: "sex", Message: "sex must be one of male, female, other"}
	}
	if q.DurationDays != nil && (*q.DurationDays < 0 || *q.DurationDays > maxDurationDays) {
		return &ValidationError{Field: "duration_days", Message: fmt.Sprintf("duration_days must be between 0 and %d", maxDurationDays)}
	}
	if q.Severity != "" && q.Severity != SeverityMild && q.Severity != SeverityModerate && q.Severity != SeveritySevere {
		return &ValidationError{Field: "severity", Message: "severity must be one of mild, moderate, severe"}
	}
	if len(q.Context) > maxContextLen {
		return &ValidationError{Field: "context", Message: fmt.Sprintf("context exceeds %d characters", maxContextLen)}
	}
	return nil
}

// Condition is one probable condition surfaced by the analysis.
type Condition struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// NextStep is one categorized recommendation.
type NextStep struct {
	Type StepType `json:"type"`
	Text string   `json:"text"`
}

// AnalysisResult is the single output contract of the core. Regardless of
// code path it always holds 0-5 conditions, at least one next step, a
// red-flag list (possibly empty, never nil), and a disclaimer containing the
// word "educational".
type AnalysisResult struct {
	ProbableConditions   []Condition `json:"probable_conditions"`
	RecommendedNextSteps []NextStep  `json:"recommended_next_steps"`
	RedFlags             []string    `json:"red_flags"`
	Disclaimer           string      `json:"disclaimer"`
	Timestamp            time.Time   `json:"timestamp"`
	Source               string      `json:"source,omitempty"`
}
