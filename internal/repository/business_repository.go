package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// BusinessRepository persists businesses (tenants).
type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*model.Business, error)
	// GetByOwnerID returns the owner's business, oldest first when more than
	// one row exists. ErrNotFound when the owner has no business yet.
	GetByOwnerID(ctx context.Context, ownerID string) (*model.Business, error)
	Create(ctx context.Context, business *model.Business) error
}
