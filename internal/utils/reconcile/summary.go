package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// PeriodSummary aggregates the reconciliation of a set of sales. The same
// computation backs the ticket preview, the ticket print, the daily closure
// and the monthly closure; any divergence between those call sites shows up
// as a real accounting discrepancy, so they all go through Summarize.
type PeriodSummary struct {
	VAT VATBreakdown

	TotalCard      decimal.Decimal
	TotalAltCard   decimal.Decimal
	TotalCash      decimal.Decimal // retained, net of change
	TotalCheck     decimal.Decimal
	TotalCollected decimal.Decimal

	TotalDiscounts decimal.Decimal
	TotalTTC       decimal.Decimal // Σ persisted net totals

	SaleCount     int
	ClientCount   int // distinct known customers
	ItemCount     int
	AverageTicket decimal.Decimal
}

// Summarize runs the full line set of the given sales through the discount,
// VAT and tender calculators. Sales are expected to be non-cancelled and to
// carry their lines. The tender reconciliation uses each sale's persisted net
// total minus the voucher portion as the amount due.
func Summarize(sales []domain.Sale) PeriodSummary {
	var s PeriodSummary
	clients := make(map[string]struct{})

	for _, sale := range sales {
		norm := NormalizeLines(sale.Lines, sale.FlatDiscount)
		s.VAT.accumulate(sale.Lines, norm)
		s.TotalDiscounts = s.TotalDiscounts.Add(norm.TotalDiscounts)

		tender := Tender(TenderAmounts{
			Card:    sale.Card,
			Cash:    sale.Cash,
			Check:   sale.Check,
			AltCard: sale.AltCard,
		}, sale.NetTotal.Sub(sale.VoucherApplied))

		s.TotalCard = s.TotalCard.Add(sale.Card)
		s.TotalAltCard = s.TotalAltCard.Add(sale.AltCard)
		s.TotalCheck = s.TotalCheck.Add(sale.Check)
		s.TotalCash = s.TotalCash.Add(tender.CashRetained)

		s.TotalTTC = s.TotalTTC.Add(sale.NetTotal)

		s.SaleCount++
		if sale.ClientID != nil {
			clients[*sale.ClientID] = struct{}{}
		}
		for _, l := range sale.Lines {
			s.ItemCount += l.Quantity
		}
	}

	s.VAT.derive()
	s.TotalCash = Round2(s.TotalCash)
	s.TotalCollected = s.TotalCard.Add(s.TotalAltCard).Add(s.TotalCheck).Add(s.TotalCash)
	s.TotalTTC = Round2(s.TotalTTC)
	s.ClientCount = len(clients)
	if s.SaleCount > 0 {
		s.AverageTicket = Round2(s.TotalTTC.Div(decimal.NewFromInt(int64(s.SaleCount))))
	}
	return s
}
