package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/repository"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// BusinessHandler serves the onboarding and business profile endpoints.
type BusinessHandler struct {
	businessService service.BusinessService
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(businessService service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Get handles GET /api/business. A 404 means the user has not
// completed onboarding yet.
func (h *BusinessHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	business, err := h.businessService.GetForOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no_business")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, business)
}

// Create handles POST /api/business.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input model.BusinessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	business, err := h.businessService.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, business)
}
