package money

import (
	"math"
	"testing"
)

func TestLineAmount_RoundsTiesAwayFromZero(t *testing.T) {
	// 3 × 14.995 = 44.985, a true half-cent tie → 44.99, not 44.98
	if got := LineAmount(3, 14.995); got != 44.99 {
		t.Errorf("expected 44.99, got %v", got)
	}
	// 2.5 × 19.99 lands just under the half cent in float64 → 49.97
	if got := LineAmount(2.5, 19.99); got != 49.97 {
		t.Errorf("expected 49.97, got %v", got)
	}
}

func TestLineAmount_CoercesBadInputToZero(t *testing.T) {
	cases := []struct {
		name      string
		qty, rate float64
	}{
		{"negative qty", -2, 10},
		{"negative rate", 2, -10},
		{"nan qty", math.NaN(), 10},
		{"inf rate", 2, math.Inf(1)},
		{"negative inf qty", math.Inf(-1), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineAmount(tc.qty, tc.rate); got != 0 {
				t.Errorf("expected 0, got %v", got)
			}
		})
	}
}

func TestComputeTotals_ZeroRate(t *testing.T) {
	lines := []Line{{Qty: 3, Rate: 42.5}, {Qty: 1, Rate: 7.99}}
	totals := ComputeTotals(lines, 0)
	if totals.GST != 0 {
		t.Errorf("expected zero GST, got %v", totals.GST)
	}
	if totals.Total != totals.Subtotal {
		t.Errorf("expected total == subtotal, got total=%v subtotal=%v", totals.Total, totals.Subtotal)
	}
}

func TestComputeTotals_EmptyLines(t *testing.T) {
	totals := ComputeTotals(nil, 0.15)
	if totals != (Totals{}) {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestComputeTotals_RoundsAtEachStage(t *testing.T) {
	// Each 10.005 line rounds to 10.01 → subtotal 20.02.
	// GST = round2(20.02 × 0.15) = round2(3.003) = 3.00, total 23.02.
	// Rounding only once at the end would give a different total.
	lines := []Line{{Qty: 1, Rate: 10.005}, {Qty: 1, Rate: 10.005}}
	totals := ComputeTotals(lines, 0.15)
	if totals.Subtotal != 20.02 {
		t.Errorf("expected subtotal 20.02, got %v", totals.Subtotal)
	}
	if totals.GST != 3.00 {
		t.Errorf("expected GST 3.00, got %v", totals.GST)
	}
	if totals.Total != 23.02 {
		t.Errorf("expected total 23.02, got %v", totals.Total)
	}
}

func TestComputeTotals_TotalEqualsSubtotalPlusGST(t *testing.T) {
	lines := []Line{
		{Qty: 2.5, Rate: 19.99},
		{Qty: 0.75, Rate: 120},
		{Qty: 12, Rate: 3.33},
	}
	totals := ComputeTotals(lines, DefaultGSTRate)
	if totals.Total != Round2(totals.Subtotal+totals.GST) {
		t.Errorf("total %v != subtotal %v + GST %v", totals.Total, totals.Subtotal, totals.GST)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []Line{{Qty: 1.5, Rate: 99.95}, {Qty: 4, Rate: 12.125}}
	first := ComputeTotals(lines, 0.15)
	second := ComputeTotals(lines, 0.15)
	if first != second {
		t.Errorf("expected identical results, got %+v then %+v", first, second)
	}
}

func TestComputeTotals_NegativeRateTreatedAsZero(t *testing.T) {
	lines := []Line{{Qty: 1, Rate: 100}}
	totals := ComputeTotals(lines, -0.15)
	if totals.GST != 0 || totals.Total != 100 {
		t.Errorf("expected untaxed totals, got %+v", totals)
	}
}
