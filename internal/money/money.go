// Package money implements the line-item and totals arithmetic shared by
// quotes, invoices, purchase orders, and variations. Every persisted or
// displayed figure goes through Round2 so the stored subtotal, GST, and total
// each match what a sum over the rounded line amounts would show.
package money

import "math"

// DefaultGSTRate is the NZ GST fraction applied when a business has no
// explicit rate configured.
const DefaultGSTRate = 0.15

// Line is one priced row: a quantity times a unit rate.
type Line struct {
	Qty  float64
	Rate float64
}

// Totals is the aggregate financial summary of a document.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// Round2 rounds to the nearest cent, ties away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitize coerces NaN, infinities, and negative values to 0. User-entered
// form values arrive here unvalidated; bad numbers become zero rather than
// an error.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// LineAmount returns the rounded amount for one line (qty × rate).
func LineAmount(qty, rate float64) float64 {
	return Round2(sanitize(qty) * sanitize(rate))
}

// ComputeTotals computes subtotal, GST, and total for a set of lines at the
// given GST fraction (0.15 for 15%). Rounding happens at each stage: the
// subtotal is a rounded sum of rounded line amounts, GST is rounded from the
// rounded subtotal, and the total is rounded from their sum. Rounding once at
// the end would let the stored total drift a cent from subtotal + GST.
func ComputeTotals(lines []Line, gstRate float64) Totals {
	sum := 0.0
	for _, l := range lines {
		sum += LineAmount(l.Qty, l.Rate)
	}
	subtotal := Round2(sum)
	gst := Round2(subtotal * sanitize(gstRate))
	total := Round2(subtotal + gst)
	return Totals{Subtotal: subtotal, GST: gst, Total: total}
}
