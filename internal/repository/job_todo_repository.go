package repository

import (
	"context"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// JobTodoRepository persists job todos.
type JobTodoRepository interface {
	// ListByJobID returns open todos before done ones, newest first within
	// each group.
	ListByJobID(ctx context.Context, jobID string) ([]*model.JobTodo, error)
	GetByID(ctx context.Context, id string) (*model.JobTodo, error)
	Create(ctx context.Context, todo *model.JobTodo) error
	Update(ctx context.Context, todo *model.JobTodo) error
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
}
