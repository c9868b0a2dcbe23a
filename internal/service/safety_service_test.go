package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

type mockSafetyRecordRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.SafetyRecord, error)
	createFunc  func(ctx context.Context, record *model.SafetyRecord) error
	updateFunc  func(ctx context.Context, record *model.SafetyRecord) error
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockSafetyRecordRepository) ListByBusinessID(ctx context.Context, businessID string) ([]*model.SafetyRecord, error) {
	return nil, nil
}
func (m *mockSafetyRecordRepository) ListByJobID(ctx context.Context, jobID string) ([]*model.SafetyRecord, error) {
	return nil, nil
}
func (m *mockSafetyRecordRepository) GetByID(ctx context.Context, id string) (*model.SafetyRecord, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockSafetyRecordRepository) Create(ctx context.Context, record *model.SafetyRecord) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, record)
	}
	return nil
}
func (m *mockSafetyRecordRepository) Update(ctx context.Context, record *model.SafetyRecord) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, record)
	}
	return nil
}
func (m *mockSafetyRecordRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestSafetyService_Create_NormalizesStatusAndDefaultsDate(t *testing.T) {
	var created *model.SafetyRecord
	records := &mockSafetyRecordRepository{
		createFunc: func(ctx context.Context, record *model.SafetyRecord) error {
			created = record
			return nil
		},
	}
	svc := NewSafetyService(records, ownJob("biz-1")).(*safetyService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)
	}

	record, err := svc.Create(context.Background(), "biz-1", "user-1", "job-1", model.SafetyRecordPayload{
		Title:  "Toolbox talk",
		Site:   "14 Kauri Rd",
		Status: "Drafted",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if record.Status != model.SafetyStatusDraft {
		t.Errorf("expected draft, got %q", record.Status)
	}
	if record.OccurredOn != "2026-03-09" {
		t.Errorf("expected occurred_on 2026-03-09, got %q", record.OccurredOn)
	}
	if record.CreatedBy != "user-1" {
		t.Errorf("expected created_by user-1, got %q", record.CreatedBy)
	}
}

func TestSafetyService_Create_RequiresTitleAndSite(t *testing.T) {
	svc := NewSafetyService(&mockSafetyRecordRepository{}, ownJob("biz-1"))

	if _, err := svc.Create(context.Background(), "biz-1", "user-1", "job-1", model.SafetyRecordPayload{Site: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "biz-1", "user-1", "job-1", model.SafetyRecordPayload{Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing site, got %v", err)
	}
}

func TestSafetyService_Create_ForbiddenForOtherBusinessJob(t *testing.T) {
	svc := NewSafetyService(&mockSafetyRecordRepository{}, ownJob("biz-other"))

	_, err := svc.Create(context.Background(), "biz-1", "user-1", "job-1", model.SafetyRecordPayload{Title: "x", Site: "y"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestSafetyService_Update_KeepsOwnership(t *testing.T) {
	records := &mockSafetyRecordRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.SafetyRecord, error) {
			return &model.SafetyRecord{ID: id, BusinessID: "biz-other", Title: "t", Site: "s"}, nil
		},
	}
	svc := NewSafetyService(records, ownJob("biz-1"))

	if _, err := svc.Update(context.Background(), "biz-1", "rec-1", model.SafetyRecordPayload{Title: "t", Site: "s"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestSafetyService_Delete_NotFound(t *testing.T) {
	svc := NewSafetyService(&mockSafetyRecordRepository{}, ownJob("biz-1"))
	if err := svc.Delete(context.Background(), "biz-1", "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
