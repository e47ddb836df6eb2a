package reconcile_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

func sale(net string, lines []domain.SaleLine, clientID string, tender reconcile.TenderAmounts) domain.Sale {
	s := domain.Sale{
		SaleDate: time.Date(2024, 3, 12, 14, 30, 0, 0, time.UTC),
		NetTotal: dec(net),
		Card:     tender.Card,
		Cash:     tender.Cash,
		Check:    tender.Check,
		AltCard:  tender.AltCard,
		Lines:    lines,
	}
	if clientID != "" {
		s.ClientID = &clientID
	}
	return s
}

func TestSummarize_PaymentsAndStatistics(t *testing.T) {
	sales := []domain.Sale{
		sale("120.00",
			[]domain.SaleLine{line("120.00", 1, "0", domain.ConditionNew)},
			"c1",
			reconcile.TenderAmounts{Card: dec("120.00")}),
		sale("50.00",
			[]domain.SaleLine{line("25.00", 2, "0", domain.ConditionUsed)},
			"c1",
			reconcile.TenderAmounts{Cash: dec("60.00")}),
		sale("10.00",
			[]domain.SaleLine{line("10.00", 1, "0", domain.ConditionUsed)},
			"",
			reconcile.TenderAmounts{Check: dec("10.00")}),
	}

	s := reconcile.Summarize(sales)

	assert.Equal(t, 3, s.SaleCount)
	assert.Equal(t, 1, s.ClientCount)
	assert.Equal(t, 4, s.ItemCount)
	assert.True(t, s.TotalCard.Equal(dec("120.00")))
	assert.True(t, s.TotalCash.Equal(dec("50.00")), "cash retained %s", s.TotalCash)
	assert.True(t, s.TotalCheck.Equal(dec("10.00")))
	assert.True(t, s.TotalCollected.Equal(dec("180.00")))
	assert.True(t, s.TotalTTC.Equal(dec("180.00")))
	assert.True(t, s.AverageTicket.Equal(dec("60.00")))
	assert.True(t, s.VAT.TTC20.Equal(dec("120.00")))
	assert.True(t, s.VAT.TTC0.Equal(dec("60.00")))
}

func TestSummarize_VATAdditivityOverPeriod(t *testing.T) {
	sales := []domain.Sale{
		sale("53.97",
			[]domain.SaleLine{
				line("19.99", 2, "10", domain.ConditionNew),
				line("18.00", 1, "0", domain.ConditionUsed),
			},
			"c2",
			reconcile.TenderAmounts{Card: dec("53.97")}),
		sale("8.08",
			[]domain.SaleLine{line("8.08", 1, "0", domain.ConditionNew)},
			"",
			reconcile.TenderAmounts{Cash: dec("10.00")}),
	}

	s := reconcile.Summarize(sales)
	lhs := s.VAT.HT0.Add(s.VAT.HT20).Add(s.VAT.TotalTVA)
	drift := lhs.Sub(s.VAT.TotalTTC).Abs()
	assert.True(t, drift.LessThanOrEqual(dec("0.01")), "drift %s", drift)
}

// A month summarized in one pass must equal the same sales summarized in one
// pass regardless of how the caller would have grouped them by day: the
// monthly closure recomputes from the raw sales rather than summing dailies.
func TestSummarize_MonthlyEqualsDirectRecompute(t *testing.T) {
	day1 := []domain.Sale{
		sale("30.00", []domain.SaleLine{line("30.00", 1, "0", domain.ConditionUsed)}, "c1",
			reconcile.TenderAmounts{Cash: dec("30.00")}),
	}
	day2 := []domain.Sale{
		sale("24.00", []domain.SaleLine{line("12.00", 2, "0", domain.ConditionNew)}, "c2",
			reconcile.TenderAmounts{Card: dec("24.00")}),
		sale("9.99", []domain.SaleLine{line("9.99", 1, "0", domain.ConditionNew)}, "c1",
			reconcile.TenderAmounts{Cash: dec("20.00")}),
	}

	month := append(append([]domain.Sale{}, day1...), day2...)
	s := reconcile.Summarize(month)

	assert.Equal(t, 3, s.SaleCount)
	assert.Equal(t, 2, s.ClientCount) // distinct across the month, not per day
	assert.True(t, s.TotalTTC.Equal(dec("63.99")))
	assert.True(t, s.VAT.TTC20.Equal(dec("33.99")))
	assert.True(t, s.VAT.HT20.Equal(dec("28.33")))
	assert.True(t, s.VAT.TVA20.Equal(dec("5.66")))
}

func TestSummarize_Empty(t *testing.T) {
	s := reconcile.Summarize(nil)
	assert.Equal(t, 0, s.SaleCount)
	assert.True(t, s.AverageTicket.Equal(decimal.Zero))
	assert.True(t, s.TotalCollected.IsZero())
}
