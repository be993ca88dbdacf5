package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("query record not found")

type Repository interface {
	Create(ctx context.Context, rec *QueryRecord) error
	List(ctx context.Context, limit, offset int) ([]QueryRecord, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*QueryRecord, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Create(ctx context.Context, rec *QueryRecord) error {
	responseJSON, err := json.Marshal(rec.Response)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	query := `
		INSERT INTO query_records (id, symptoms, age, sex, duration_days, severity, context, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.Symptoms, rec.Age, nullableString(rec.Sex), rec.DurationDays,
		nullableString(rec.Severity), nullableString(rec.Context), responseJSON, rec.CreatedAt)
	return err
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]QueryRecord, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_records`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	query := `
		SELECT id, symptoms, age, sex, duration_days, severity, context, response, created_at
		FROM query_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := []QueryRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*QueryRecord, error) {
	query := `
		SELECT id, symptoms, age, sex, duration_days, severity, context, response, created_at
		FROM query_records
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM query_records WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanRecord(scan func(dest ...any) error) (*QueryRecord, error) {
	var rec QueryRecord
	var age, durationDays sql.NullInt64
	var sex, recContext, severity sql.NullString
	var responseJSON []byte

	err := scan(
		&rec.ID,
		&rec.Symptoms,
		&age,
		&sex,
		&durationDays,
		&severity,
		&recContext,
		&responseJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		rec.Age = &v
	}
	if durationDays.Valid {
		v := int(durationDays.Int64)
		rec.DurationDays = &v
	}
	rec.Sex = sex.String
	rec.Severity = severity.String
	rec.Context = recContext.String

	if len(responseJSON) > 0 {
		if err := json.Unmarshal(responseJSON, &rec.Response); err != nil {
			return nil, fmt.Errorf("unmarshal stored response: %w", err)
		}
	}

	return &rec, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
