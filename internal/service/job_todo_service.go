package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

// JobTodoService provides business logic for job todo checklists.
type JobTodoService interface {
	ListByJob(ctx context.Context, businessID, jobID string) ([]*model.JobTodo, error)
	Get(ctx context.Context, businessID, id string) (*model.JobTodo, error)
	Create(ctx context.Context, businessID, jobID string, input model.JobTodoInput) (*model.JobTodo, error)
	Update(ctx context.Context, businessID, id string, input model.JobTodoInput) (*model.JobTodo, error)
	Toggle(ctx context.Context, businessID, id string, done bool) (*model.JobTodo, error)
	Delete(ctx context.Context, businessID, id string) error
}

type jobTodoService struct {
	todos repository.JobTodoRepository
	jobs  repository.JobRepository
}

// NewJobTodoService creates a JobTodoService.
func NewJobTodoService(todos repository.JobTodoRepository, jobs repository.JobRepository) JobTodoService {
	return &jobTodoService{todos: todos, jobs: jobs}
}

func (s *jobTodoService) ListByJob(ctx context.Context, businessID, jobID string) ([]*model.JobTodo, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return s.todos.ListByJobID(ctx, jobID)
}

func (s *jobTodoService) Get(ctx context.Context, businessID, id string) (*model.JobTodo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return todo, nil
}

func (s *jobTodoService) Create(ctx context.Context, businessID, jobID string, input model.JobTodoInput) (*model.JobTodo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != businessID {
		return nil, ErrForbidden
	}

	todo := &model.JobTodo{
		BusinessID: businessID,
		JobID:      jobID,
		Title:      title,
		Notes:      trimmedPtrOrNil(input.Notes),
		DueDate:    input.DueDate,
		IsDone:     false,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *jobTodoService) Update(ctx context.Context, businessID, id string, input model.JobTodoInput) (*model.JobTodo, error) {
	todo, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	todo.Title = title
	todo.Notes = trimmedPtrOrNil(input.Notes)
	todo.DueDate = input.DueDate
	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *jobTodoService) Toggle(ctx context.Context, businessID, id string, done bool) (*model.JobTodo, error) {
	todo, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := s.todos.SetDone(ctx, id, done); err != nil {
		return nil, err
	}
	todo.IsDone = done
	return todo, nil
}

func (s *jobTodoService) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}
	return s.todos.Delete(ctx, id)
}

func trimmedPtrOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
