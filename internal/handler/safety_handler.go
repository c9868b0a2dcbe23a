package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// SafetyHandler serves site safety record endpoints.
type SafetyHandler struct {
	safetyService service.SafetyService
}

// NewSafetyHandler creates a SafetyHandler.
func NewSafetyHandler(safetyService service.SafetyService) *SafetyHandler {
	return &SafetyHandler{safetyService: safetyService}
}

// List handles GET /api/safety-records.
func (h *SafetyHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.safetyService.List(r.Context(), businessID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*model.SafetyRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

// ListByJob handles GET /api/jobs/{id}/safety-records.
func (h *SafetyHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.safetyService.ListByJob(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*model.SafetyRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /api/safety-records/{id}.
func (h *SafetyHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.safetyService.Get(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Create handles POST /api/jobs/{id}/safety-records.
func (h *SafetyHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload model.SafetyRecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	record, err := h.safetyService.Create(r.Context(), businessID, userID, r.PathValue("id"), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// Update handles PUT /api/safety-records/{id}.
func (h *SafetyHandler) Update(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload model.SafetyRecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	record, err := h.safetyService.Update(r.Context(), businessID, r.PathValue("id"), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/safety-records/{id}.
func (h *SafetyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.safetyService.Delete(r.Context(), businessID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
