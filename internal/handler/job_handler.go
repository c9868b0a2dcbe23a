package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// JobHandler serves job endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles GET /api/jobs.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	jobs, err := h.jobService.List(r.Context(), businessID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}

	writeJSON(w, http.StatusOK, jobs)
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	job, err := h.jobService.Get(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload model.JobPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	job, err := h.jobService.Create(r.Context(), businessID, payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// PatchStatus handles PATCH /api/jobs/{id}/status.
func (h *JobHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	id := r.PathValue("id")
	if err := h.jobService.UpdateStatus(r.Context(), businessID, id, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}
