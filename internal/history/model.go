package history

import (
	"time"

	"github.com/google/uuid"

	"symptom-checker/internal/symptom"
)

// QueryRecord is one persisted request/response pair. Created once per
// accepted query and immutable afterwards except for deletion.
type QueryRecord struct {
	ID           uuid.UUID              `json:"id"`
	Symptoms     string                 `json:"symptoms"`
	Age          *int                   `json:"age,omitempty"`
	Sex          string                 `json:"sex,omitempty"`
	DurationDays *int                   `json:"duration_days,omitempty"`
	Severity     string                 `json:"severity,omitempty"`
	Context      string                 `json:"context,omitempty"`
	Response     symptom.AnalysisResult `json:"response"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Page is one page of history records, newest first.
type Page struct {
	Queries  []QueryRecord `json:"queries"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
