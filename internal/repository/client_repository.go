package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// ClientRepository persists clients.
type ClientRepository interface {
	ListByBusinessID(ctx context.Context, businessID string) ([]*model.Client, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string) error
}
