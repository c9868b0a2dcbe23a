package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// PgJobTodoRepository is the PostgreSQL implementation of JobTodoRepository.
type PgJobTodoRepository struct {
	pool *pgxpool.Pool
}

// NewPgJobTodoRepository creates a PgJobTodoRepository.
func NewPgJobTodoRepository(pool *pgxpool.Pool) *PgJobTodoRepository {
	return &PgJobTodoRepository{pool: pool}
}

const jobTodoSelectCols = `id, business_id, job_id, title, notes, due_date, is_done, created_at, updated_at`

func scanJobTodo(scan func(...any) error) (*model.JobTodo, error) {
	var t model.JobTodo
	if err := scan(&t.ID, &t.BusinessID, &t.JobID, &t.Title, &t.Notes, &t.DueDate, &t.IsDone, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByJobID returns the job's todos, open items first.
func (r *PgJobTodoRepository) ListByJobID(ctx context.Context, jobID string) ([]*model.JobTodo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobTodoSelectCols+` FROM jobs_todos
		 WHERE job_id = $1 ORDER BY is_done, created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*model.JobTodo
	for rows.Next() {
		todo, err := scanJobTodo(rows.Scan)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// GetByID fetches a todo by id.
func (r *PgJobTodoRepository) GetByID(ctx context.Context, id string) (*model.JobTodo, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+jobTodoSelectCols+` FROM jobs_todos WHERE id = $1`, id)
	return scanJobTodo(row.Scan)
}

// Create inserts a todo.
func (r *PgJobTodoRepository) Create(ctx context.Context, todo *model.JobTodo) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO jobs_todos (business_id, job_id, title, notes, due_date, is_done)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		todo.BusinessID, todo.JobID, todo.Title, todo.Notes, todo.DueDate, todo.IsDone,
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
}

// Update rewrites a todo's editable fields (title, notes, due date).
func (r *PgJobTodoRepository) Update(ctx context.Context, todo *model.JobTodo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE jobs_todos SET title=$1, notes=$2, due_date=$3, updated_at=NOW() WHERE id=$4`,
		todo.Title, todo.Notes, todo.DueDate, todo.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDone toggles a todo's completion flag.
func (r *PgJobTodoRepository) SetDone(ctx context.Context, id string, done bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE jobs_todos SET is_done=$1, updated_at=NOW() WHERE id=$2`, done, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a todo.
func (r *PgJobTodoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs_todos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
