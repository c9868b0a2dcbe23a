package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// JobRepository persists jobs.
type JobRepository interface {
	ListByBusinessID(ctx context.Context, businessID string) ([]*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, job *model.Job) error
	UpdateStatus(ctx context.Context, id, status string) error
}
