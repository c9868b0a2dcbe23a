package handler

import (
	"errors"
	"net/http"

	"github.com/kiwidudedev/Tradesstack/internal/pdf"
	"github.com/kiwidudedev/Tradesstack/internal/service"
	"github.com/kiwidudedev/Tradesstack/pkg/auth"
)

// ExportHandler serves PDF export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles POST /api/documents/{id}/export. It renders the document
// to PDF, stores it, and returns the storage path and a signed download URL.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	businessID, ok := auth.BusinessIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.exportService.Export(r.Context(), businessID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, pdf.ErrUnsupportedKind) {
			writeError(w, http.StatusBadRequest, "unsupported_document_type")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
