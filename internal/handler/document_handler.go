package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/model"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// DocumentHandler serves quote, invoice, purchase order, and variation
// endpoints. The document type rides on a query or body field rather than
// separate routes per type.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List handles GET /api/documents?type=quote.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docType := model.DocumentType(r.URL.Query().Get("type"))
	docs, err := h.documentService.List(r.Context(), businessID, docType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if docs == nil {
		docs = []*model.Document{}
	}

	writeJSON(w, http.StatusOK, docs)
}

// ListByJob handles GET /api/jobs/{id}/documents?type=invoice.
func (h *DocumentHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docType := model.DocumentType(r.URL.Query().Get("type"))
	docs, err := h.documentService.ListByJob(r.Context(), businessID, r.PathValue("id"), docType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if docs == nil {
		docs = []*model.DocumentListItem{}
	}

	writeJSON(w, http.StatusOK, docs)
}

// Get handles GET /api/documents/{id}. The response includes line items.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := h.documentService.GetWithItems(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Create handles POST /api/documents. Totals are always computed
// server-side; any client-sent figures are ignored.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		JobID     string                `json:"job_id"`
		ClientID  *string               `json:"client_id"`
		Type      string                `json:"type"`
		Notes     string                `json:"notes"`
		IssueDate *string               `json:"issue_date"`
		DueDate   *string               `json:"due_date"`
		Items     []model.LineItemInput `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	doc, err := h.documentService.Create(r.Context(), businessID, service.CreateDocumentParams{
		JobID:     req.JobID,
		ClientID:  req.ClientID,
		Type:      model.DocumentType(req.Type),
		Notes:     req.Notes,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Items:     req.Items,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// PatchStatus handles PATCH /api/documents/{id}/status.
func (h *DocumentHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
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
	if err := h.documentService.UpdateStatus(r.Context(), businessID, id, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

// Convert handles POST /api/documents/{id}/convert, turning an existing
// quote into a draft invoice.
func (h *DocumentHandler) Convert(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	invoice, err := h.documentService.ConvertQuoteToInvoice(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, invoice)
}
