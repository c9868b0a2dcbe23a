package model

import (
	"fmt"
	"time"
)

// DocumentType identifies the kind of business document.
type DocumentType string

const (
	DocumentTypeQuote     DocumentType = "quote"
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypePO        DocumentType = "po"
	DocumentTypeVariation DocumentType = "variation"
)

var documentStatuses = map[DocumentType]map[string]bool{
	DocumentTypeQuote:     {"draft": true, "sent": true, "accepted": true, "declined": true},
	DocumentTypeInvoice:   {"draft": true, "sent": true, "paid": true},
	DocumentTypePO:        {"draft": true, "sent": true},
	DocumentTypeVariation: {"draft": true, "sent": true},
}

// ValidDocumentType reports whether t is a known document type.
func ValidDocumentType(t DocumentType) bool {
	_, ok := documentStatuses[t]
	return ok
}

// ValidDocumentStatus reports whether status is allowed for documents of type t.
func ValidDocumentStatus(t DocumentType, status string) bool {
	return documentStatuses[t][status]
}

var numberPrefixes = map[DocumentType]string{
	DocumentTypeQuote:     "Q",
	DocumentTypeInvoice:   "INV",
	DocumentTypePO:        "PO",
	DocumentTypeVariation: "VAR",
}

// NumberFor generates a display number for a new document of type t,
// e.g. "INV-1756700000000". The stamp is unix milliseconds.
func NumberFor(t DocumentType, now time.Time) string {
	prefix, ok := numberPrefixes[t]
	if !ok {
		prefix = "Q"
	}
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// Document is a quote, invoice, purchase order, or variation. Subtotal, GST,
// and Total are derived from the line items at creation time and stored for
// display; they are recomputed, never accepted from the client.
type Document struct {
	ID         string       `json:"id"`
	BusinessID string       `json:"business_id"`
	JobID      string       `json:"job_id"`
	ClientID   *string      `json:"client_id,omitempty"`
	Type       DocumentType `json:"type"`
	Status     string       `json:"status"`
	Number     string       `json:"number"`
	IssueDate  *string      `json:"issue_date,omitempty"`
	DueDate    *string      `json:"due_date,omitempty"`
	Subtotal   float64      `json:"subtotal"`
	GST        float64      `json:"gst"`
	Total      float64      `json:"total"`
	Notes      *string      `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  *time.Time   `json:"updated_at,omitempty"`

	Items []*LineItem `json:"items,omitempty"`
}

// LineItem is one priced row on a document. Amount is qty × rate rounded to
// cents, recomputed from its inputs whenever items are written.
type LineItem struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"document_id"`
	Description string    `json:"description"`
	Qty         float64   `json:"qty"`
	Unit        *string   `json:"unit,omitempty"`
	Rate        float64   `json:"rate"`
	Amount      float64   `json:"amount"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// LineItemInput is one requested row when creating a document.
type LineItemInput struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Unit        *string `json:"unit"`
	Rate        float64 `json:"rate"`
}

// DocumentListItem is the reduced shape used by per-job document listings.
type DocumentListItem struct {
	ID        string       `json:"id"`
	JobID     string       `json:"job_id"`
	Type      DocumentType `json:"type"`
	Status    string       `json:"status"`
	Number    string       `json:"number"`
	Total     float64      `json:"total"`
	CreatedAt time.Time    `json:"created_at"`
}
