// Package pdf renders quotes, invoices, purchase orders, and variations as
// paginated A4 PDFs. Rendering is one-shot and stateless: every call builds a
// fresh document and either returns the finished bytes or fails atomically.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/kiwidudedev/Tradesstack/internal/model"
)

// ErrUnsupportedKind is returned when the document type is not renderable.
var ErrUnsupportedKind = errors.New("unsupported document kind")

// RenderableDocument is the export-time view of a document: descriptive
// header fields plus the ordered line items.
type RenderableDocument struct {
	Kind     model.DocumentType
	Number   string
	Date     string
	IssuedTo string
	Project  string
	Items    []Item
}

// Item is one table row. Zero-valued Rate or Amount means "no value
// recorded" and renders as a dash, not as $0.00.
type Item struct {
	Description string
	Qty         float64
	Rate        float64
	Amount      float64
}

type kindConfig struct {
	title      string
	pathPrefix string
}

var kindConfigs = map[model.DocumentType]kindConfig{
	model.DocumentTypeQuote:     {title: "Quote", pathPrefix: "quotes"},
	model.DocumentTypeInvoice:   {title: "Invoice", pathPrefix: "invoices"},
	model.DocumentTypePO:        {title: "Purchase Order", pathPrefix: "pos"},
	model.DocumentTypeVariation: {title: "Variation", pathPrefix: "variations"},
}

// StoragePath returns the storage key for an exported document,
// e.g. "invoices/<id>.pdf".
func StoragePath(kind model.DocumentType, documentID string) (string, error) {
	cfg, ok := kindConfigs[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	return cfg.pathPrefix + "/" + documentID + ".pdf", nil
}

// Page geometry (A4 portrait, points) and layout bands.
const (
	pageWidth    = 595.28
	pageHeight   = 841.89
	marginX      = 48.0
	headerHeight = 72.0
	accentHeight = 4.0
	lineHeight   = 14.0
	bottomMargin = 80.0
)

// Render produces the finished PDF bytes for doc. An unknown kind fails with
// ErrUnsupportedKind before any drawing happens; a drawing failure discards
// the partial document and returns a wrapped error.
func Render(doc RenderableDocument) ([]byte, error) {
	cfg, ok := kindConfigs[doc.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, doc.Kind)
	}

	f, _ := build(doc, cfg)
	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Kind, err)
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output %s: %w", doc.Kind, err)
	}
	return buf.Bytes(), nil
}

// build lays out the document. Split from Render so tests can inspect the
// page structure without parsing PDF bytes. The returned count is the number
// of banner draws; every page gets one.
func build(doc RenderableDocument, cfg kindConfig) (*gofpdf.Fpdf, int) {
	f := gofpdf.New("P", "pt", "A4", "")
	f.SetAutoPageBreak(false, 0)
	tr := f.UnicodeTranslatorFromDescriptor("")

	dash := tr("—")
	value := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return dash
		}
		return tr(s)
	}

	banners := 0
	drawBanner := func() {
		banners++
		f.SetFillColor(8, 43, 92)
		f.Rect(0, 0, pageWidth, headerHeight, "F")
		f.SetFillColor(247, 71, 23)
		f.Rect(0, headerHeight, pageWidth, accentHeight, "F")
		f.SetFont("Helvetica", "B", 20)
		f.SetTextColor(255, 255, 255)
		f.Text(marginX, 48, tr(cfg.title))
	}

	f.AddPage()
	drawBanner()
	y := headerHeight + accentHeight + 24

	// Header fields: muted bold label with the value underneath, each field
	// consuming a fixed vertical band.
	fields := [][2]string{
		{"Number", value(doc.Number)},
		{"Date", value(doc.Date)},
		{"Issued To", value(doc.IssuedTo)},
		{"Project", value(doc.Project)},
	}
	for _, field := range fields {
		f.SetFont("Helvetica", "B", 10)
		f.SetTextColor(89, 97, 112)
		f.Text(marginX, y, field[0])
		f.SetFont("Helvetica", "", 12)
		f.SetTextColor(20, 26, 38)
		f.Text(marginX, y+16, field[1])
		y += 16 + 12 + 12
	}
	y += 8

	colDesc := marginX
	colPrice := pageWidth - marginX - 160
	colTotal := pageWidth - marginX - 72

	f.SetFont("Helvetica", "B", 10)
	f.SetTextColor(89, 97, 112)
	f.Text(colDesc, y, "DESCRIPTION")
	f.Text(colPrice, y, "PRICE")
	f.Text(colTotal, y, "TOTAL")
	y += 14

	for _, item := range doc.Items {
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		amount := item.Amount
		if amount == 0 {
			amount = item.Rate * qty
		}

		f.SetFont("Helvetica", "", 11)
		f.SetTextColor(20, 26, 38)
		descLines := wrapText(f, value(item.Description), colPrice-colDesc-16)
		rowHeight := float64(max(len(descLines), 1))*lineHeight + 6

		// Greedy pagination: a row that does not fit above the bottom
		// margin moves whole to a new page.
		if y+rowHeight > pageHeight-bottomMargin {
			f.AddPage()
			drawBanner()
			y = headerHeight + accentHeight + 24 + 6
			f.SetFont("Helvetica", "", 11)
			f.SetTextColor(20, 26, 38)
		}

		lineY := y
		for _, line := range descLines {
			f.Text(colDesc, lineY, line)
			lineY += lineHeight
		}

		priceText := dash
		if item.Rate != 0 {
			priceText = fmt.Sprintf("$%.2f", item.Rate)
		}
		totalText := dash
		if amount != 0 {
			totalText = fmt.Sprintf("$%.2f", amount)
		}
		f.Text(colPrice, y, priceText)
		f.Text(colTotal, y, totalText)

		y += rowHeight
	}

	return f, banners
}

// wrapText greedily wraps text into lines no wider than maxWidth, measured
// with f's current font. Single words wider than the column get a line of
// their own rather than being broken mid-word.
func wrapText(f *gofpdf.Fpdf, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	var lines []string
	current := ""
	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if f.GetStringWidth(test) <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
