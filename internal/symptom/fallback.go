package symptom

import "time"

// Fallback builds a complete, conservative AnalysisResult locally, for use
// when the provider path fails at any stage. Red-flag detection still runs
// over the symptom text: detected flags produce a single urgent-care step,
// otherwise a self-care step followed by a see-physician escalation. The
// placeholder condition carries a deliberately low confidence to avoid
// false certainty.
func Fallback(q SymptomQuery) AnalysisResult {
	redFlags := DetectRedFlags(q.Symptoms)

	var steps []NextStep
	if len(redFlags) > 0 {
		steps = []NextStep{
			{
				Type: StepUrgentCare,
				Text: "Potential red flags detected. Seek urgent medical attention or call local emergency services.",
			},
		}
	} else {
		steps = []NextStep{
			{
				Type: StepSelfCare,
				Text: "Monitor symptoms, rest, hydrate, and consider over-the-counter remedies if appropriate.",
			},
			{
				Type: StepSeePhysician,
				Text: "If symptoms persist, worsen, or you are concerned, consult a healthcare professional.",
			},
		}
	}

	return AnalysisResult{
		ProbableConditions: []Condition{
			{
				Condition:  "Non-specific symptom complex",
				Confidence: 0.2,
				Rationale:  "Symptoms are non-specific without clinical evaluation.",
			},
		},
		RecommendedNextSteps: steps,
		RedFlags:             redFlags,
		Disclaimer:           defaultDisclaimer,
		Timestamp:            time.Now().UTC(),
	}
}
