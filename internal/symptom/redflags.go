package symptom

import "strings"

// redFlagKeywords are the urgent-care indicator phrases scanned for in
// symptom text. Extending the list changes detection coverage without
// touching the algorithm. Output order follows this list, not input
// position.
var redFlagKeywords = []string{
	"chest pain", "chest pressure", "heart attack",
	"difficulty breathing", "shortness of breath", "can't breathe",
	"stroke", "facial drooping", "arm weakness", "speech difficulties",
	"severe abdominal pain", "severe headache", "neck stiffness",
	"high fever", "rash", "dehydration", "unconscious", "fainting",
	"severe bleeding", "allergic reaction", "anaphylaxis",
	"poisoning", "overdose", "suicidal", "self harm",
}

// DetectRedFlags scans free text for known urgent-care indicators using
// case-insensitive substring matching. Deterministic and side-effect free;
// an empty result means none detected.
func DetectRedFlags(text string) []string {
	lower := strings.ToLower(text)
	flags := []string{}
	for _, keyword := range redFlagKeywords {
		if strings.Contains(lower, keyword) {
			flags = append(flags, "Potential red flag detected: "+keyword)
		}
	}
	return flags
}
