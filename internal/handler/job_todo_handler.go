package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// JobTodoHandler serves job todo checklist endpoints.
type JobTodoHandler struct {
	todoService service.JobTodoService
}

// NewJobTodoHandler creates a JobTodoHandler.
func NewJobTodoHandler(todoService service.JobTodoService) *JobTodoHandler {
	return &JobTodoHandler{todoService: todoService}
}

// ListByJob handles GET /api/jobs/{id}/todos.
func (h *JobTodoHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	todos, err := h.todoService.ListByJob(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if todos == nil {
		todos = []*model.JobTodo{}
	}

	writeJSON(w, http.StatusOK, todos)
}

// Create handles POST /api/jobs/{id}/todos.
func (h *JobTodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input model.JobTodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	todo, err := h.todoService.Create(r.Context(), businessID, r.PathValue("id"), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

// Update handles PUT /api/todos/{id}.
func (h *JobTodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input model.JobTodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	todo, err := h.todoService.Update(r.Context(), businessID, r.PathValue("id"), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// Toggle handles PATCH /api/todos/{id}/done.
func (h *JobTodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Done bool `json:"done"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	todo, err := h.todoService.Toggle(r.Context(), businessID, r.PathValue("id"), req.Done)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/{id}.
func (h *JobTodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.todoService.Delete(r.Context(), businessID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
