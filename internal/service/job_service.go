package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// JobService provides business logic for job management.
type JobService interface {
	List(ctx context.Context, businessID string) ([]*model.Job, error)
	Get(ctx context.Context, businessID, id string) (*model.Job, error)
	Create(ctx context.Context, businessID string, payload model.JobPayload) (*model.Job, error)
	UpdateStatus(ctx context.Context, businessID, id, status string) error
}

type jobService struct {
	repo repository.JobRepository
}

// NewJobService creates a JobService.
func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) List(ctx context.Context, businessID string) ([]*model.Job, error) {
	return s.repo.ListByBusinessID(ctx, businessID)
}

func (s *jobService) Get(ctx context.Context, businessID, id string) (*model.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, businessID string, payload model.JobPayload) (*model.Job, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	status := payload.Status
	if status == "" {
		status = model.JobStatusActive
	}
	if !model.ValidJobStatus(status) {
		return nil, fmt.Errorf("%w: unknown job status %q", ErrInvalidInput, status)
	}

	job := &model.Job{
		BusinessID:  businessID,
		Name:        name,
		SiteAddress: strings.TrimSpace(payload.SiteAddress),
		ClientID:    payload.ClientID,
		Status:      status,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	if !model.ValidJobStatus(status) {
		return fmt.Errorf("%w: unknown job status %q", ErrInvalidInput, status)
	}
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
