package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// SafetyService provides business logic for site safety records.
type SafetyService interface {
	List(ctx context.Context, businessID string) ([]*model.SafetyRecord, error)
	ListByJob(ctx context.Context, businessID, jobID string) ([]*model.SafetyRecord, error)
	Get(ctx context.Context, businessID, id string) (*model.SafetyRecord, error)
	Create(ctx context.Context, businessID, userID, jobID string, payload model.SafetyRecordPayload) (*model.SafetyRecord, error)
	Update(ctx context.Context, businessID, id string, payload model.SafetyRecordPayload) (*model.SafetyRecord, error)
	Delete(ctx context.Context, businessID, id string) error
}

type safetyService struct {
	records repository.SafetyRecordRepository
	jobs    repository.JobRepository
	now     func() time.Time
}

// NewSafetyService creates a SafetyService.
func NewSafetyService(records repository.SafetyRecordRepository, jobs repository.JobRepository) SafetyService {
	return &safetyService{records: records, jobs: jobs, now: time.Now}
}

func (s *safetyService) List(ctx context.Context, businessID string) ([]*model.SafetyRecord, error) {
	return s.records.ListByBusinessID(ctx, businessID)
}

func (s *safetyService) ListByJob(ctx context.Context, businessID, jobID string) ([]*model.SafetyRecord, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return s.records.ListByJobID(ctx, jobID)
}

func (s *safetyService) Get(ctx context.Context, businessID, id string) (*model.SafetyRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return record, nil
}

func (s *safetyService) Create(ctx context.Context, businessID, userID, jobID string, payload model.SafetyRecordPayload) (*model.SafetyRecord, error) {
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	site := strings.TrimSpace(payload.Site)
	if site == "" {
		return nil, fmt.Errorf("%w: site is required", ErrInvalidInput)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}

	occurredOn := payload.OccurredOn
	if occurredOn == "" {
		occurredOn = s.now().UTC().Format("2006-01-02")
	}

	record := &model.SafetyRecord{
		BusinessID: businessID,
		JobID:      jobID,
		CreatedBy:  userID,
		Title:      title,
		Site:       site,
		Notes:      payload.Notes,
		Status:     model.NormalizeSafetyStatus(payload.Status),
		OccurredOn: occurredOn,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *safetyService) Update(ctx context.Context, businessID, id string, payload model.SafetyRecordPayload) (*model.SafetyRecord, error) {
	record, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	site := strings.TrimSpace(payload.Site)
	if site == "" {
		return nil, fmt.Errorf("%w: site is required", ErrInvalidInput)
	}

	record.Title = title
	record.Site = site
	record.Notes = payload.Notes
	record.Status = model.NormalizeSafetyStatus(payload.Status)
	if payload.OccurredOn != "" {
		record.OccurredOn = payload.OccurredOn
	} else {
		record.OccurredOn = s.now().UTC().Format("2006-01-02")
	}

	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *safetyService) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}
