package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// SafetyRecordRepository persists site safety records.
type SafetyRecordRepository interface {
	ListByBusinessID(ctx context.Context, businessID string) ([]*model.SafetyRecord, error)
	ListByJobID(ctx context.Context, jobID string) ([]*model.SafetyRecord, error)
	GetByID(ctx context.Context, id string) (*model.SafetyRecord, error)
	Create(ctx context.Context, record *model.SafetyRecord) error
	Update(ctx context.Context, record *model.SafetyRecord) error
	Delete(ctx context.Context, id string) error
}
