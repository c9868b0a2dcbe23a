package model

import "time"

// JobTodo is a task on a job's checklist.
type JobTodo struct {
	ID         string     `json:"id"`
	BusinessID string     `json:"business_id"`
	JobID      string     `json:"job_id"`
	Title      string     `json:"title"`
	Notes      *string    `json:"notes,omitempty"`
	DueDate    *string    `json:"due_date,omitempty"`
	IsDone     bool       `json:"is_done"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// JobTodoInput is the create/update request body for a job todo.
type JobTodoInput struct {
	Title   string  `json:"title"`
	Notes   *string `json:"notes"`
	DueDate *string `json:"due_date"`
}
