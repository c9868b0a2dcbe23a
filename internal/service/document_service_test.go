package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockDocumentRepository struct {
	listByBusinessFunc  func(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error)
	listByJobFunc       func(ctx context.Context, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error)
	getByIDFunc         func(ctx context.Context, id string) (*model.Document, error)
	listItemsFunc       func(ctx context.Context, documentID string) ([]*model.LineItem, error)
	createWithItemsFunc func(ctx context.Context, doc *model.Document, items []*model.LineItem) error
	updateStatusFunc    func(ctx context.Context, id, status string) error
}

func (m *mockDocumentRepository) ListByBusiness(ctx context.Context, businessID string, t model.DocumentType) ([]*model.Document, error) {
	if m.listByBusinessFunc != nil {
		return m.listByBusinessFunc(ctx, businessID, t)
	}
	return nil, nil
}
func (m *mockDocumentRepository) ListByJob(ctx context.Context, jobID string, t model.DocumentType) ([]*model.DocumentListItem, error) {
	if m.listByJobFunc != nil {
		return m.listByJobFunc(ctx, jobID, t)
	}
	return nil, nil
}
func (m *mockDocumentRepository) GetByID(ctx context.Context, id string) (*model.Document, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockDocumentRepository) ListItems(ctx context.Context, documentID string) ([]*model.LineItem, error) {
	if m.listItemsFunc != nil {
		return m.listItemsFunc(ctx, documentID)
	}
	return nil, nil
}
func (m *mockDocumentRepository) CreateWithItems(ctx context.Context, doc *model.Document, items []*model.LineItem) error {
	if m.createWithItemsFunc != nil {
		return m.createWithItemsFunc(ctx, doc, items)
	}
	return nil
}
func (m *mockDocumentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockJobRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Job, error)
	createFunc  func(ctx context.Context, job *model.Job) error
}

func (m *mockJobRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*model.Job, error) {
	return nil, nil
}
func (m *mockJobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockJobRepository) Create(ctx context.Context, job *model.Job) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, job)
	}
	return nil
}
func (m *mockJobRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func ownJob(businessID string) *mockJobRepository {
	return &mockJobRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Job, error) {
			return &model.Job{ID: id, BusinessID: businessID, Name: "Renovation"}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// DocumentService.Create tests
// ---------------------------------------------------------------------------

func TestDocumentService_Create_ComputesTotalsServerSide(t *testing.T) {
	var created *model.Document
	docs := &mockDocumentRepository{
		createWithItemsFunc: func(ctx context.Context, doc *model.Document, items []*model.LineItem) error {
			created = doc
			return nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	doc, err := svc.Create(context.Background(), "biz-1", CreateDocumentParams{
		JobID: "job-1",
		Type:  model.DocumentTypeQuote,
		Items: []model.LineItemInput{
			{Description: "Labour", Qty: 2.5, Rate: 19.99},
			{Description: "Materials", Qty: 1, Rate: 100},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected CreateWithItems to be called")
	}
	// 49.97 + 100.00 = 149.97; GST 15% = 22.50 (round2(22.4955)); total 172.47
	if doc.Subtotal != 149.97 {
		t.Errorf("expected subtotal 149.97, got %v", doc.Subtotal)
	}
	if doc.GST != 22.50 {
		t.Errorf("expected GST 22.50, got %v", doc.GST)
	}
	if doc.Total != 172.47 {
		t.Errorf("expected total 172.47, got %v", doc.Total)
	}
	if doc.Status != "draft" {
		t.Errorf("expected status draft, got %q", doc.Status)
	}
}

func TestDocumentService_Create_RecomputesLineAmounts(t *testing.T) {
	var capturedItems []*model.LineItem
	docs := &mockDocumentRepository{
		createWithItemsFunc: func(ctx context.Context, doc *model.Document, items []*model.LineItem) error {
			capturedItems = items
			return nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	_, err := svc.Create(context.Background(), "biz-1", CreateDocumentParams{
		JobID: "job-1",
		Type:  model.DocumentTypeInvoice,
		Items: []model.LineItemInput{{Description: "  Downlights  ", Qty: 3, Rate: 14.995}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capturedItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(capturedItems))
	}
	if capturedItems[0].Description != "Downlights" {
		t.Errorf("expected trimmed description, got %q", capturedItems[0].Description)
	}
	if capturedItems[0].Amount != 44.99 {
		t.Errorf("expected amount 44.99, got %v", capturedItems[0].Amount)
	}
}

func TestDocumentService_Create_NumberPrefixPerType(t *testing.T) {
	cases := []struct {
		docType model.DocumentType
		prefix  string
	}{
		{model.DocumentTypeQuote, "Q-"},
		{model.DocumentTypeInvoice, "INV-"},
		{model.DocumentTypePO, "PO-"},
		{model.DocumentTypeVariation, "VAR-"},
	}
	for _, tc := range cases {
		svc := NewDocumentService(&mockDocumentRepository{}, ownJob("biz-1"))
		doc, err := svc.Create(context.Background(), "biz-1", CreateDocumentParams{
			JobID: "job-1",
			Type:  tc.docType,
			Items: []model.LineItemInput{{Description: "Work", Qty: 1, Rate: 10}},
		})
		if err != nil {
			t.Fatalf("type %s: unexpected error: %v", tc.docType, err)
		}
		if len(doc.Number) <= len(tc.prefix) || doc.Number[:len(tc.prefix)] != tc.prefix {
			t.Errorf("type %s: expected number prefix %q, got %q", tc.docType, tc.prefix, doc.Number)
		}
	}
}

func TestDocumentService_Create_RejectsInvalidInput(t *testing.T) {
	svc := NewDocumentService(&mockDocumentRepository{}, ownJob("biz-1"))

	cases := []struct {
		name   string
		params CreateDocumentParams
	}{
		{"unknown type", CreateDocumentParams{JobID: "job-1", Type: "receipt", Items: []model.LineItemInput{{Description: "x", Qty: 1, Rate: 1}}}},
		{"missing job", CreateDocumentParams{Type: model.DocumentTypeQuote, Items: []model.LineItemInput{{Description: "x", Qty: 1, Rate: 1}}}},
		{"no items", CreateDocumentParams{JobID: "job-1", Type: model.DocumentTypeQuote}},
		{"blank description", CreateDocumentParams{JobID: "job-1", Type: model.DocumentTypeQuote, Items: []model.LineItemInput{{Description: "  ", Qty: 1, Rate: 1}}}},
		{"zero qty", CreateDocumentParams{JobID: "job-1", Type: model.DocumentTypeQuote, Items: []model.LineItemInput{{Description: "x", Qty: 0, Rate: 1}}}},
		{"negative rate", CreateDocumentParams{JobID: "job-1", Type: model.DocumentTypeQuote, Items: []model.LineItemInput{{Description: "x", Qty: 1, Rate: -1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "biz-1", tc.params); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDocumentService_Create_ForbiddenForOtherBusinessJob(t *testing.T) {
	svc := NewDocumentService(&mockDocumentRepository{}, ownJob("biz-other"))

	_, err := svc.Create(context.Background(), "biz-1", CreateDocumentParams{
		JobID: "job-1",
		Type:  model.DocumentTypeQuote,
		Items: []model.LineItemInput{{Description: "x", Qty: 1, Rate: 1}},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DocumentService.UpdateStatus tests
// ---------------------------------------------------------------------------

func TestDocumentService_UpdateStatus_ValidatesPerType(t *testing.T) {
	docs := &mockDocumentRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Document, error) {
			return &model.Document{ID: id, BusinessID: "biz-1", Type: model.DocumentTypeInvoice}, nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	if err := svc.UpdateStatus(context.Background(), "biz-1", "doc-1", "paid"); err != nil {
		t.Errorf("expected paid to be valid for invoice, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), "biz-1", "doc-1", "accepted"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for accepted invoice, got %v", err)
	}
}

func TestDocumentService_UpdateStatus_Forbidden(t *testing.T) {
	docs := &mockDocumentRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Document, error) {
			return &model.Document{ID: id, BusinessID: "biz-other", Type: model.DocumentTypeQuote}, nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	if err := svc.UpdateStatus(context.Background(), "biz-1", "doc-1", "sent"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DocumentService.ConvertQuoteToInvoice tests
// ---------------------------------------------------------------------------

func TestDocumentService_ConvertQuoteToInvoice_CopiesTotalsAndItems(t *testing.T) {
	notes := "Original scope"
	quote := &model.Document{
		ID: "quote-1", BusinessID: "biz-1", JobID: "job-1",
		Type: model.DocumentTypeQuote, Number: "Q-1700000000000",
		Subtotal: 200, GST: 30, Total: 230, Notes: &notes,
		CreatedAt: time.Now(),
	}
	quoteItems := []*model.LineItem{
		{Description: "First fix", Qty: 1, Rate: 120, Amount: 120, SortOrder: 1},
		{Description: "Second fix", Qty: 1, Rate: 80, Amount: 80, SortOrder: 2},
	}

	var created *model.Document
	var createdItems []*model.LineItem
	docs := &mockDocumentRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Document, error) {
			return quote, nil
		},
		listItemsFunc: func(ctx context.Context, documentID string) ([]*model.LineItem, error) {
			return quoteItems, nil
		},
		createWithItemsFunc: func(ctx context.Context, doc *model.Document, items []*model.LineItem) error {
			created = doc
			createdItems = items
			return nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	invoice, err := svc.ConvertQuoteToInvoice(context.Background(), "biz-1", "quote-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected CreateWithItems to be called")
	}
	if invoice.Type != model.DocumentTypeInvoice {
		t.Errorf("expected invoice type, got %s", invoice.Type)
	}
	if invoice.Subtotal != 200 || invoice.GST != 30 || invoice.Total != 230 {
		t.Errorf("expected totals copied verbatim, got %+v", invoice)
	}
	if invoice.Notes == nil || *invoice.Notes != "Original scope\nConverted from Q-1700000000000" {
		t.Errorf("unexpected notes: %v", invoice.Notes)
	}
	if len(createdItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(createdItems))
	}
	if createdItems[0].Description != "First fix" || createdItems[0].Amount != 120 {
		t.Errorf("unexpected first item: %+v", createdItems[0])
	}
}

func TestDocumentService_ConvertQuoteToInvoice_RejectsNonQuote(t *testing.T) {
	docs := &mockDocumentRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Document, error) {
			return &model.Document{ID: id, BusinessID: "biz-1", JobID: "job-1", Type: model.DocumentTypeInvoice}, nil
		},
	}
	svc := NewDocumentService(docs, ownJob("biz-1"))

	if _, err := svc.ConvertQuoteToInvoice(context.Background(), "biz-1", "doc-1"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDocumentService_GetWithItems_NotFound(t *testing.T) {
	svc := NewDocumentService(&mockDocumentRepository{}, ownJob("biz-1"))
	if _, err := svc.GetWithItems(context.Background(), "biz-1", "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
