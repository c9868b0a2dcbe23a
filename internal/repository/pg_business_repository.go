package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgBusinessRepository is the PostgreSQL implementation of BusinessRepository.
type PgBusinessRepository struct {
	pool *pgxpool.Pool
}

// NewPgBusinessRepository creates a PgBusinessRepository.
func NewPgBusinessRepository(pool *pgxpool.Pool) *PgBusinessRepository {
	return &PgBusinessRepository{pool: pool}
}

// Ping verifies database connectivity (DB interface).
func (r *PgBusinessRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const businessSelectCols = `id, owner_id, name, COALESCE(gst_number, ''), COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at`

func scanBusiness(scan func(...any) error) (*model.Business, error) {
	var b model.Business
	if err := scan(&b.ID, &b.OwnerID, &b.Name, &b.GSTNumber, &b.Address, &b.Email, &b.Phone, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetByID fetches a business by id.
func (r *PgBusinessRepository) GetByID(ctx context.Context, id string) (*model.Business, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+businessSelectCols+` FROM businesses WHERE id = $1`, id)
	return scanBusiness(row.Scan)
}

// GetByOwnerID fetches the oldest business owned by ownerID.
func (r *PgBusinessRepository) GetByOwnerID(ctx context.Context, ownerID string) (*model.Business, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+businessSelectCols+` FROM businesses
		 WHERE owner_id = $1 ORDER BY created_at LIMIT 1`, ownerID)
	return scanBusiness(row.Scan)
}

// Create inserts a business. A second business for the same owner returns
// ErrConflict; the unique index on owner_id is the source of truth, so two
// concurrent creates cannot both succeed.
func (r *PgBusinessRepository) Create(ctx context.Context, business *model.Business) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO businesses (owner_id, name, gst_number, address, email, phone)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		business.OwnerID, business.Name, business.GSTNumber, business.Address, business.Email, business.Phone,
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}
