package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
)

type mockJobTodoRepository struct {
	getByIDFunc func(ctx context.Context, id string) (*model.JobTodo, error)
	createFunc  func(ctx context.Context, todo *model.JobTodo) error
	setDoneFunc func(ctx context.Context, id string, done bool) error
}

func (m *mockJobTodoRepository) ListByJobID(ctx context.Context, jobID string) ([]*model.JobTodo, error) {
	return nil, nil
}
func (m *mockJobTodoRepository) GetByID(ctx context.Context, id string) (*model.JobTodo, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockJobTodoRepository) Create(ctx context.Context, todo *model.JobTodo) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, todo)
	}
	return nil
}
func (m *mockJobTodoRepository) Update(ctx context.Context, todo *model.JobTodo) error { return nil }
func (m *mockJobTodoRepository) SetDone(ctx context.Context, id string, done bool) error {
	if m.setDoneFunc != nil {
		return m.setDoneFunc(ctx, id, done)
	}
	return nil
}
func (m *mockJobTodoRepository) Delete(ctx context.Context, id string) error { return nil }

func TestJobTodoService_Create_TrimsAndDefaults(t *testing.T) {
	var created *model.JobTodo
	todos := &mockJobTodoRepository{
		createFunc: func(ctx context.Context, todo *model.JobTodo) error {
			created = todo
			return nil
		},
	}
	svc := NewJobTodoService(todos, ownJob("biz-1"))

	blank := "   "
	todo, err := svc.Create(context.Background(), "biz-1", "job-1", model.JobTodoInput{
		Title: "  Order switchboard  ",
		Notes: &blank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if todo.Title != "Order switchboard" {
		t.Errorf("expected trimmed title, got %q", todo.Title)
	}
	if todo.Notes != nil {
		t.Errorf("expected blank notes dropped, got %v", todo.Notes)
	}
	if todo.IsDone {
		t.Error("expected new todo to start not done")
	}
}

func TestJobTodoService_Create_RequiresTitle(t *testing.T) {
	svc := NewJobTodoService(&mockJobTodoRepository{}, ownJob("biz-1"))
	if _, err := svc.Create(context.Background(), "biz-1", "job-1", model.JobTodoInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobTodoService_Toggle_EnforcesOwnership(t *testing.T) {
	todos := &mockJobTodoRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.JobTodo, error) {
			return &model.JobTodo{ID: id, BusinessID: "biz-other", JobID: "job-1"}, nil
		},
	}
	svc := NewJobTodoService(todos, ownJob("biz-1"))

	if _, err := svc.Toggle(context.Background(), "biz-1", "todo-1", true); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestJobTodoService_Toggle_SetsDone(t *testing.T) {
	var setID string
	var setDone bool
	todos := &mockJobTodoRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.JobTodo, error) {
			return &model.JobTodo{ID: id, BusinessID: "biz-1", JobID: "job-1"}, nil
		},
		setDoneFunc: func(ctx context.Context, id string, done bool) error {
			setID, setDone = id, done
			return nil
		},
	}
	svc := NewJobTodoService(todos, ownJob("biz-1"))

	todo, err := svc.Toggle(context.Background(), "biz-1", "todo-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setID != "todo-1" || !setDone {
		t.Errorf("unexpected SetDone call %q %v", setID, setDone)
	}
	if !todo.IsDone {
		t.Error("expected returned todo marked done")
	}
}
