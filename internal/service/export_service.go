package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/pdf"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
	"github.com/kiwidudedev/Tradesstack/internal/storage"
)

// signedURLTTL is how long an export download link stays valid.
const signedURLTTL = time.Hour

// ExportResult describes a stored export: where it lives, a time-limited
// download link, and the PDF's size.
type ExportResult struct {
	Path      string `json:"path"`
	SignedURL string `json:"signed_url"`
	SizeBytes int    `json:"size_bytes"`
}

// ExportService renders documents to PDF and stores the result.
type ExportService interface {
	Export(ctx context.Context, businessID, documentID string) (*ExportResult, error)
}

type exportService struct {
	docs    repository.DocumentRepository
	clients repository.ClientRepository
	jobs    repository.JobRepository
	store   storage.Storage
}

// NewExportService creates an ExportService.
func NewExportService(
	docs repository.DocumentRepository,
	clients repository.ClientRepository,
	jobs repository.JobRepository,
	store storage.Storage,
) ExportService {
	return &exportService{docs: docs, clients: clients, jobs: jobs, store: store}
}

func (s *exportService) Export(ctx context.Context, businessID, documentID string) (*ExportResult, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.BusinessID != businessID {
		return nil, ErrForbidden
	}

	path, err := pdf.StoragePath(doc.Type, doc.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.docs.ListItems(ctx, documentID)
	if err != nil {
		return nil, err
	}

	renderable := pdf.RenderableDocument{
		Kind:   doc.Type,
		Number: doc.Number,
		Date:   documentDate(doc),
	}
	if doc.ClientID != nil {
		// Client name is display-only on the PDF; a missing client just
		// leaves the field as a dash.
		if client, err := s.clients.GetByID(ctx, *doc.ClientID); err == nil {
			renderable.IssuedTo = client.Name
		}
	}
	if job, err := s.jobs.GetByID(ctx, doc.JobID); err == nil {
		renderable.Project = job.Name
	}
	for _, item := range items {
		renderable.Items = append(renderable.Items, pdf.Item{
			Description: item.Description,
			Qty:         item.Qty,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	out, err := pdf.Render(renderable)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Save(ctx, path, bytes.NewReader(out), "application/pdf"); err != nil {
		return nil, fmt.Errorf("store export: %w", err)
	}

	signedURL, err := s.store.SignedURL(ctx, path, signedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("sign export url: %w", err)
	}

	return &ExportResult{Path: path, SignedURL: signedURL, SizeBytes: len(out)}, nil
}

func documentDate(doc *model.Document) string {
	if doc.IssueDate != nil && *doc.IssueDate != "" {
		return *doc.IssueDate
	}
	return doc.CreatedAt.UTC().Format("2006-01-02")
}
