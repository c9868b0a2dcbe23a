package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgJobRepository is the PostgreSQL implementation of JobRepository.
type PgJobRepository struct {
	pool *pgxpool.Pool
}

// NewPgJobRepository creates a PgJobRepository.
func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

const jobSelectCols = `id, business_id, name, COALESCE(site_address, ''), client_id, status, created_at, updated_at`

// ListByBusinessID returns the business's jobs, oldest first.
func (r *PgJobRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*model.Job, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobSelectCols+` FROM jobs
		 WHERE business_id = $1 ORDER BY created_at`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.BusinessID, &j.Name, &j.SiteAddress, &j.ClientID, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, &j)
	}
	return jobs, rows.Err()
}

// GetByID fetches a job by id.
func (r *PgJobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var j model.Job
	err := r.pool.QueryRow(ctx,
		`SELECT `+jobSelectCols+` FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.BusinessID, &j.Name, &j.SiteAddress, &j.ClientID, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Create inserts a job.
func (r *PgJobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO jobs (business_id, name, site_address, client_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		job.BusinessID, job.Name, job.SiteAddress, job.ClientID, job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

// UpdateStatus sets a job's status. ErrNotFound when the job does not exist.
func (r *PgJobRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
