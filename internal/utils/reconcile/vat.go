package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// VATBreakdown holds the two-bucket VAT split. New items land in the 20%
// bucket, everything else in the margin-scheme 0% bucket.
type VATBreakdown struct {
	TTC0  decimal.Decimal
	TTC20 decimal.Decimal
	HT0   decimal.Decimal
	HT20  decimal.Decimal
	TVA20 decimal.Decimal

	TotalHT  decimal.Decimal
	TotalTVA decimal.Decimal
	TotalTTC decimal.Decimal
}

// accumulate adds each line's final net amount to the bucket selected by the
// product condition. Derived fields are not maintained here; call derive once
// all lines of the period are in.
func (b *VATBreakdown) accumulate(lines []domain.SaleLine, norm Normalized) {
	for i, l := range lines {
		if l.ProductCondition == domain.ConditionNew {
			b.TTC20 = b.TTC20.Add(norm.Lines[i].NetFinal)
		} else {
			b.TTC0 = b.TTC0.Add(norm.Lines[i].NetFinal)
		}
	}
}

// derive computes HT and TVA figures from the accumulated TTC buckets.
// HT-20 = round2(TTC-20 / 1.2); the 0% bucket passes through unchanged.
func (b *VATBreakdown) derive() {
	b.HT20 = Round2(b.TTC20.Div(vatDivisor20))
	b.TVA20 = Round2(b.TTC20.Sub(b.HT20))
	b.HT0 = b.TTC0
	b.TotalHT = Round2(b.HT0.Add(b.HT20))
	b.TotalTVA = b.TVA20
	b.TotalTTC = Round2(b.TTC0.Add(b.TTC20))
}

// SplitVAT buckets the normalized lines of a single sale and derives the
// HT/TVA/TTC subtotals.
func SplitVAT(lines []domain.SaleLine, norm Normalized) VATBreakdown {
	var b VATBreakdown
	b.accumulate(lines, norm)
	b.derive()
	return b
}
