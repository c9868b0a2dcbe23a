package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgDocumentRepository is the PostgreSQL implementation of DocumentRepository.
type PgDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPgDocumentRepository creates a PgDocumentRepository.
func NewPgDocumentRepository(pool *pgxpool.Pool) *PgDocumentRepository {
	return &PgDocumentRepository{pool: pool}
}

const documentSelectCols = `id, business_id, job_id, client_id, type, status, number,
	issue_date, due_date, subtotal, gst, total, notes, created_at, updated_at`

func scanDocument(scan func(...any) error) (*model.Document, error) {
	var d model.Document
	if err := scan(
		&d.ID, &d.BusinessID, &d.JobID, &d.ClientID, &d.Type, &d.Status, &d.Number,
		&d.IssueDate, &d.DueDate, &d.Subtotal, &d.GST, &d.Total, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByBusiness returns the business's documents of one type, newest first.
func (r *PgDocumentRepository) ListByBusiness(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentSelectCols+` FROM documents
		 WHERE business_id = $1 AND type = $2 ORDER BY created_at DESC`,
		businessID, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*model.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// ListByJob returns the reduced document listing for a job, newest first.
func (r *PgDocumentRepository) ListByJob(ctx context.Context, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, job_id, type, status, number, total, created_at FROM documents
		 WHERE job_id = $1 AND type = $2 ORDER BY created_at DESC`,
		jobID, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*model.DocumentListItem
	for rows.Next() {
		var d model.DocumentListItem
		if err := rows.Scan(&d.ID, &d.JobID, &d.Type, &d.Status, &d.Number, &d.Total, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// GetByID fetches a document by id, without items.
func (r *PgDocumentRepository) GetByID(ctx context.Context, id string) (*model.Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+documentSelectCols+` FROM documents WHERE id = $1`, id)
	return scanDocument(row.Scan)
}

// ListItems returns the document's line items in sort order.
func (r *PgDocumentRepository) ListItems(ctx context.Context, documentID string) ([]*model.LineItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, document_id, description, qty, unit, rate, amount, sort_order, created_at
		 FROM document_items WHERE document_id = $1 ORDER BY sort_order`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.LineItem
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(
			&item.ID, &item.DocumentID, &item.Description, &item.Qty, &item.Unit,
			&item.Rate, &item.Amount, &item.SortOrder, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// CreateWithItems inserts the document and its line items transactionally.
func (r *PgDocumentRepository) CreateWithItems(ctx context.Context, doc *model.Document, items []*model.LineItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO documents (business_id, job_id, client_id, type, status, number,
		                        issue_date, due_date, subtotal, gst, total, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		doc.BusinessID, doc.JobID, doc.ClientID, doc.Type, doc.Status, doc.Number,
		doc.IssueDate, doc.DueDate, doc.Subtotal, doc.GST, doc.Total, doc.Notes,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return err
	}

	for i, item := range items {
		item.DocumentID = doc.ID
		item.SortOrder = i + 1
		if err := tx.QueryRow(ctx,
			`INSERT INTO document_items (document_id, description, qty, unit, rate, amount, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, created_at`,
			doc.ID, item.Description, item.Qty, item.Unit, item.Rate, item.Amount, item.SortOrder,
		).Scan(&item.ID, &item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateStatus sets a document's status. ErrNotFound when the document does
// not exist.
func (r *PgDocumentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE documents SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
