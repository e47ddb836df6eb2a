package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// LineAmounts holds the discount arithmetic for a single sale line.
type LineAmounts struct {
	Gross        decimal.Decimal // unit price × quantity
	LineDiscount decimal.Decimal // round2(gross × pct/100)
	NetAfterLine decimal.Decimal // gross − line discount
	GlobalShare  decimal.Decimal // this line's prorated share of the flat discount
	NetFinal     decimal.Decimal // net after line discount and prorated share
}

// Normalized is the result of running the discount and proration pass over
// the ordered lines of one sale.
type Normalized struct {
	Lines           []LineAmounts
	GrossTotal      decimal.Decimal
	NetBeforeGlobal decimal.Decimal // Σ NetAfterLine
	NetTotal        decimal.Decimal // Σ NetFinal; persisted as the sale's net total
	TotalDiscounts  decimal.Decimal // Σ line discounts + flat discount
}

// NormalizeLines computes per-line net amounts after the percentage discount,
// then prorates the sale-level flat discount across lines proportionally to
// each line's post-line-discount net. Each prorated share is rounded to two
// decimals independently; the shares are deliberately not adjusted to sum
// exactly to the flat discount, so the total may drift from it by a cent.
// When the pre-proration net is zero no proration occurs.
func NormalizeLines(lines []domain.SaleLine, flatDiscount decimal.Decimal) Normalized {
	out := Normalized{Lines: make([]LineAmounts, len(lines))}

	for i, l := range lines {
		gross := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lineDiscount := Round2(gross.Mul(l.DiscountPct).Div(hundred))
		netAfterLine := gross.Sub(lineDiscount)

		out.Lines[i] = LineAmounts{
			Gross:        gross,
			LineDiscount: lineDiscount,
			NetAfterLine: netAfterLine,
			NetFinal:     netAfterLine,
		}
		out.GrossTotal = out.GrossTotal.Add(gross)
		out.NetBeforeGlobal = out.NetBeforeGlobal.Add(netAfterLine)
		out.TotalDiscounts = out.TotalDiscounts.Add(lineDiscount)
	}

	if flatDiscount.IsPositive() && out.NetBeforeGlobal.IsPositive() {
		for i := range out.Lines {
			share := Round2(out.Lines[i].NetAfterLine.Div(out.NetBeforeGlobal).Mul(flatDiscount))
			out.Lines[i].GlobalShare = share
			out.Lines[i].NetFinal = out.Lines[i].NetAfterLine.Sub(share)
		}
		out.TotalDiscounts = out.TotalDiscounts.Add(flatDiscount)
	}

	for i := range out.Lines {
		out.NetTotal = out.NetTotal.Add(out.Lines[i].NetFinal)
	}
	return out
}
