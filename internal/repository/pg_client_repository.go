package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgClientRepository is the PostgreSQL implementation of ClientRepository.
type PgClientRepository struct {
	pool *pgxpool.Pool
}

// NewPgClientRepository creates a PgClientRepository.
func NewPgClientRepository(pool *pgxpool.Pool) *PgClientRepository {
	return &PgClientRepository{pool: pool}
}

const clientSelectCols = `id, business_id, name, email, phone, address, created_at, updated_at`

// ListByBusinessID returns the business's clients, oldest first.
func (r *PgClientRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*model.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clientSelectCols+` FROM clients
		 WHERE business_id = $1 ORDER BY created_at`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// GetByID fetches a client by id.
func (r *PgClientRepository) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var c model.Client
	err := r.pool.QueryRow(ctx,
		`SELECT `+clientSelectCols+` FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a client.
func (r *PgClientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO clients (business_id, name, email, phone, address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		client.BusinessID, client.Name, client.Email, client.Phone, client.Address,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

// Update rewrites a client's contact fields.
func (r *PgClientRepository) Update(ctx context.Context, client *model.Client) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET name=$1, email=$2, phone=$3, address=$4, updated_at=NOW()
		 WHERE id=$5`,
		client.Name, client.Email, client.Phone, client.Address, client.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a client.
func (r *PgClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
