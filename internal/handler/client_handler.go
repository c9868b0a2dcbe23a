package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// ClientHandler serves client CRUD endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	clients, err := h.clientService.List(r.Context(), businessID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if clients == nil {
		clients = []*model.Client{}
	}

	writeJSON(w, http.StatusOK, clients)
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	client, err := h.clientService.Get(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload model.ClientPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	client, err := h.clientService.Create(r.Context(), businessID, payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

// Update handles PUT /api/clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload model.ClientPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	client, err := h.clientService.Update(r.Context(), businessID, r.PathValue("id"), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.clientService.Delete(r.Context(), businessID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
