package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgSafetyRecordRepository is the PostgreSQL implementation of SafetyRecordRepository.
type PgSafetyRecordRepository struct {
	pool *pgxpool.Pool
}

// NewPgSafetyRecordRepository creates a PgSafetyRecordRepository.
func NewPgSafetyRecordRepository(pool *pgxpool.Pool) *PgSafetyRecordRepository {
	return &PgSafetyRecordRepository{pool: pool}
}

const safetySelectCols = `id, business_id, job_id, created_by, title, site, notes, status, occurred_on, created_at, updated_at`

func scanSafetyRecord(scan func(...any) error) (*model.SafetyRecord, error) {
	var s model.SafetyRecord
	if err := scan(&s.ID, &s.BusinessID, &s.JobID, &s.CreatedBy, &s.Title, &s.Site, &s.Notes, &s.Status, &s.OccurredOn, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByBusinessID returns the business's safety records, newest first.
func (r *PgSafetyRecordRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*model.SafetyRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+safetySelectCols+` FROM safety_records
		 WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSafetyRecords(rows)
}

// ListByJobID returns the job's safety records, newest first.
func (r *PgSafetyRecordRepository) ListByJobID(ctx context.Context, jobID string) ([]*model.SafetyRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+safetySelectCols+` FROM safety_records
		 WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSafetyRecords(rows)
}

func collectSafetyRecords(rows pgx.Rows) ([]*model.SafetyRecord, error) {
	var records []*model.SafetyRecord
	for rows.Next() {
		record, err := scanSafetyRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByID fetches a safety record by id.
func (r *PgSafetyRecordRepository) GetByID(ctx context.Context, id string) (*model.SafetyRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+safetySelectCols+` FROM safety_records WHERE id = $1`, id)
	return scanSafetyRecord(row.Scan)
}

// Create inserts a safety record.
func (r *PgSafetyRecordRepository) Create(ctx context.Context, record *model.SafetyRecord) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO safety_records (business_id, job_id, created_by, title, site, notes, status, occurred_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		record.BusinessID, record.JobID, record.CreatedBy, record.Title, record.Site,
		record.Notes, record.Status, record.OccurredOn,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

// Update rewrites a safety record's editable fields.
func (r *PgSafetyRecordRepository) Update(ctx context.Context, record *model.SafetyRecord) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE safety_records
		 SET title=$1, site=$2, notes=$3, status=$4, occurred_on=$5, updated_at=NOW()
		 WHERE id=$6`,
		record.Title, record.Site, record.Notes, record.Status, record.OccurredOn, record.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a safety record.
func (r *PgSafetyRecordRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM safety_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
