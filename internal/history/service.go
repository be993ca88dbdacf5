package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"symptom-checker/internal/symptom"
)

type Service interface {
	Save(ctx context.Context, q symptom.SymptomQuery, result symptom.AnalysisResult) (uuid.UUID, error)
	List(ctx context.Context, page, pageSize int) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*QueryRecord, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Save(ctx context.Context, q symptom.SymptomQuery, result symptom.AnalysisResult) (uuid.UUID, error) {
	rec := &QueryRecord{
		ID:           uuid.New(),
		Symptoms:     q.Symptoms,
		Age:          q.Age,
		Sex:          q.Sex,
		DurationDays: q.DurationDays,
		Severity:     q.Severity,
		Context:      q.Context,
		Response:     result,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return uuid.Nil, err
	}
	s.log.Info().Str("record_id", rec.ID.String()).Msg("saved query to history")
	return rec.ID, nil
}

func (s *service) List(ctx context.Context, page, pageSize int) (*Page, error) {
	offset := (page - 1) * pageSize
	records, total, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	return &Page{
		Queries:  records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*QueryRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}
