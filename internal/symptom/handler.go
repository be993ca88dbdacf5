package symptom

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HistoryWriter is the slice of the history store the check endpoint needs:
// the core only ever creates records, it never reads them back.
type HistoryWriter interface {
	Save(ctx context.Context, q SymptomQuery, result AnalysisResult) (uuid.UUID, error)
}

type Handler struct {
	svc     Service
	history HistoryWriter
	log     zerolog.Logger
}

func NewHandler(svc Service, history HistoryWriter, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, history: history, log: log}
}

type errorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Disclaimer string `json:"disclaimer"`
}

// CheckSymptoms accepts a SymptomQuery, validates it at the boundary, and
// returns the analysis. Validation failures are the only 4xx this endpoint
// produces; provider failures are absorbed by the service and still yield
// a 200 with a schema-valid body.
func (h *Handler) CheckSymptoms(w http.ResponseWriter, r *http.Request) {
	var q SymptomQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON")
		return
	}

	if err := q.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result := h.svc.Analyze(r.Context(), q)

	if _, err := h.history.Save(r.Context(), q, result); err != nil {
		// History is best-effort; the analysis still goes back to the user.
		h.log.Error().Err(err).Msg("failed to save query to history")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Error:      code,
		Message:    message,
		Disclaimer: defaultDisclaimer,
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/check", h.CheckSymptoms)
}
