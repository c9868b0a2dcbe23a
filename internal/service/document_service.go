package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/money"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// ErrForbidden is returned when a caller touches another business's resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput is returned for request payloads that fail validation.
var ErrInvalidInput = errors.New("invalid input")

// CreateDocumentParams is the input for creating any document type.
type CreateDocumentParams struct {
	JobID     string
	ClientID  *string
	Type      model.DocumentType
	Notes     string
	Items     []model.LineItemInput
	IssueDate *string
	DueDate   *string
}

// DocumentService provides business logic for quotes, invoices, purchase
// orders, and variations.
type DocumentService interface {
	List(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error)
	ListByJob(ctx context.Context, businessID, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error)
	// GetWithItems loads a document and its line items, enforcing ownership.
	GetWithItems(ctx context.Context, businessID, id string) (*model.Document, error)
	Create(ctx context.Context, businessID string, params CreateDocumentParams) (*model.Document, error)
	UpdateStatus(ctx context.Context, businessID, id, status string) error
	// ConvertQuoteToInvoice creates a draft invoice from an existing quote,
	// duplicating its totals and line items.
	ConvertQuoteToInvoice(ctx context.Context, businessID, quoteID string) (*model.Document, error)
}

type documentService struct {
	docs repository.DocumentRepository
	jobs repository.JobRepository
	now  func() time.Time
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(docs repository.DocumentRepository, jobs repository.JobRepository) DocumentService {
	return &documentService{docs: docs, jobs: jobs, now: time.Now}
}

func (s *documentService) List(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error) {
	if !model.ValidDocumentType(t) {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, t)
	}
	return s.docs.ListByBusiness(ctx, businessID, t)
}

func (s *documentService) ListByJob(ctx context.Context, businessID, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error) {
	if !model.ValidDocumentType(t) {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, t)
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return s.docs.ListByJob(ctx, jobID, t)
}

func (s *documentService) GetWithItems(ctx context.Context, businessID, id string) (*model.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.BusinessID != businessID {
		return nil, ErrForbidden
	}
	items, err := s.docs.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

func (s *documentService) Create(ctx context.Context, businessID string, params CreateDocumentParams) (*model.Document, error) {
	if !model.ValidDocumentType(params.Type) {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, params.Type)
	}
	if params.JobID == "" {
		return nil, fmt.Errorf("%w: job_id is required", ErrInvalidInput)
	}
	if len(params.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", ErrInvalidInput)
	}

	job, err := s.jobs.GetByID(ctx, params.JobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}

	lines := make([]money.Line, 0, len(params.Items))
	items := make([]*model.LineItem, 0, len(params.Items))
	for i, input := range params.Items {
		description := strings.TrimSpace(input.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: item %d: description is required", ErrInvalidInput, i+1)
		}
		if input.Qty <= 0 {
			return nil, fmt.Errorf("%w: item %d: qty must be positive", ErrInvalidInput, i+1)
		}
		if input.Rate < 0 {
			return nil, fmt.Errorf("%w: item %d: rate must not be negative", ErrInvalidInput, i+1)
		}
		lines = append(lines, money.Line{Qty: input.Qty, Rate: input.Rate})
		items = append(items, &model.LineItem{
			Description: description,
			Qty:         input.Qty,
			Unit:        input.Unit,
			Rate:        input.Rate,
			Amount:      money.LineAmount(input.Qty, input.Rate),
		})
	}

	// Totals are always recomputed server-side; client-supplied figures are
	// never trusted.
	totals := money.ComputeTotals(lines, money.DefaultGSTRate)

	now := s.now()
	issueDate := now.UTC().Format("2006-01-02")
	if params.IssueDate != nil && *params.IssueDate != "" {
		issueDate = *params.IssueDate
	}

	doc := &model.Document{
		BusinessID: businessID,
		JobID:      params.JobID,
		ClientID:   params.ClientID,
		Type:       params.Type,
		Status:     "draft",
		Number:     model.NumberFor(params.Type, now),
		IssueDate:  &issueDate,
		DueDate:    params.DueDate,
		Subtotal:   totals.Subtotal,
		GST:        totals.GST,
		Total:      totals.Total,
		Notes:      trimmedOrNil(params.Notes),
	}

	if err := s.docs.CreateWithItems(ctx, doc, items); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	doc.Items = items
	return doc, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.BusinessID != businessID {
		return ErrForbidden
	}
	if !model.ValidDocumentStatus(doc.Type, status) {
		return fmt.Errorf("%w: status %q not allowed for %s", ErrInvalidInput, status, doc.Type)
	}
	return s.docs.UpdateStatus(ctx, id, status)
}

func (s *documentService) ConvertQuoteToInvoice(ctx context.Context, businessID, quoteID string) (*model.Document, error) {
	quote, err := s.docs.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.BusinessID != businessID {
		return nil, ErrForbidden
	}
	if quote.Type != model.DocumentTypeQuote {
		return nil, fmt.Errorf("%w: document %s is not a quote", ErrInvalidInput, quoteID)
	}
	if quote.JobID == "" {
		return nil, fmt.Errorf("%w: quote is missing a job", ErrInvalidInput)
	}

	quoteItems, err := s.docs.ListItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	noteSuffix := "Converted from quote"
	if quote.Number != "" {
		noteSuffix = "Converted from " + quote.Number
	}
	notes := noteSuffix
	if quote.Notes != nil && *quote.Notes != "" {
		notes = *quote.Notes + "\n" + noteSuffix
	}

	now := s.now()
	issueDate := now.UTC().Format("2006-01-02")

	// Totals and amounts carry over verbatim: the invoice bills exactly what
	// the quote offered.
	invoice := &model.Document{
		BusinessID: quote.BusinessID,
		JobID:      quote.JobID,
		ClientID:   quote.ClientID,
		Type:       model.DocumentTypeInvoice,
		Status:     "draft",
		Number:     model.NumberFor(model.DocumentTypeInvoice, now),
		IssueDate:  &issueDate,
		Subtotal:   quote.Subtotal,
		GST:        quote.GST,
		Total:      quote.Total,
		Notes:      &notes,
	}

	items := make([]*model.LineItem, 0, len(quoteItems))
	for _, item := range quoteItems {
		amount := item.Amount
		if amount == 0 {
			amount = money.LineAmount(item.Qty, item.Rate)
		}
		items = append(items, &model.LineItem{
			Description: item.Description,
			Qty:         item.Qty,
			Unit:        item.Unit,
			Rate:        item.Rate,
			Amount:      amount,
		})
	}

	if err := s.docs.CreateWithItems(ctx, invoice, items); err != nil {
		return nil, fmt.Errorf("convert quote: %w", err)
	}
	invoice.Items = items
	return invoice, nil
}

func trimmedOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
