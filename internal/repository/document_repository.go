package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// DocumentRepository persists documents and their line items. Line items are
// written once, at document creation; there is no partial item edit.
type DocumentRepository interface {
	ListByBusiness(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error)
	ListByJob(ctx context.Context, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error)
	GetByID(ctx context.Context, id string) (*model.Document, error)
	// ListItems returns a document's line items in sort order.
	ListItems(ctx context.Context, documentID string) ([]*model.LineItem, error)
	// CreateWithItems inserts the document and its items in one transaction,
	// assigning item sort order 1..n.
	CreateWithItems(ctx context.Context, doc *model.Document, items []*model.LineItem) error
	UpdateStatus(ctx context.Context, id, status string) error
}
