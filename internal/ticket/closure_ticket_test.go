package ticket_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/ticket"
)

func testClosure() domain.Closure {
	return domain.Closure{
		ClosureID: "z-1",
		Category:  domain.ClosureDaily,
		Date:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local),

		TotalHT:  dec("44.90"),
		TotalTVA: dec("2.98"),
		TotalTTC: dec("50.00"),

		HT0:   dec("32.14"),
		HT20:  dec("14.88"),
		TTC0:  dec("32.14"),
		TTC20: dec("17.86"),
		TVA20: dec("2.98"),

		TotalCash:      dec("50.00"),
		TotalCollected: dec("50.00"),

		TotalDiscounts:     dec("10.00"),
		TotalCancellations: dec("20.00"),
		TotalDeposits:      dec("15.00"),

		SaleCount:     1,
		ClientCount:   1,
		ItemCount:     2,
		AverageTicket: dec("50.00"),

		DrawerOpening:     dec("120.00"),
		DrawerTheoretical: dec("160.00"),
		DrawerCounted:     dec("158.00"),
	}
}

func TestRenderClosureDaily(t *testing.T) {
	sale := testSale()
	cancelled := testSale()
	cancelled.SaleID = "ccccdddd-0000-1111-2222-333344445555"
	cancelled.Cancelled = true
	cancelled.CancellationReason = "erreur de saisie"

	text := testRenderer().RenderClosure(ticket.ClosureData{
		Closure:     testClosure(),
		Sales:       []domain.Sale{sale},
		Cancelled:   []domain.Sale{cancelled},
		ClientNames: map[string]string{"c-1": "Marie Durand"},
		Deposits: []ticket.DepositDetail{
			{
				Payment: domain.DepositPayment{
					DepositID:     "d-1",
					ClientID:      "c-9",
					Amount:        dec("15.00"),
					PaymentMethod: "Espèces",
					ReceiptNumber: "R-2026-041",
					PaidAt:        time.Date(2026, 3, 5, 16, 20, 0, 0, time.Local),
				},
				ClientName: "Jeanne Martin",
				Lines: []domain.DepositPaymentLine{
					{ProductName: "Sac bandoulière", Condition: domain.ConditionUsed, Quantity: 1, Total: dec("15.00")},
				},
			},
		},
	})

	assert.Contains(t, text, "Clôture de caisse Z")
	assert.Contains(t, text, "05/03/2026")
	assert.Contains(t, text, "Nombre de ventes           : 1")
	assert.Contains(t, text, "Nombre d'article vendu     : 2")
	assert.Contains(t, text, "Total encaissé : 50.00 €")
	assert.Contains(t, text, "Total HT   : 44.90 €")
	assert.Contains(t, text, "Total TVA  : 2.98 €")
	assert.Contains(t, text, "Total remises         : 10.00 €")
	assert.Contains(t, text, "Total annulations     : 20.00 €")

	// Drawer block with the counted/theoretical difference.
	assert.Contains(t, text, "FOND DE CAISSE")
	assert.Contains(t, text, "Initial        : 120.00 €")
	assert.Contains(t, text, "Final (compté) : 158.00 €")
	assert.Contains(t, text, "Différence     : -2.00 €")

	// Cancelled sale listing with its reason.
	assert.Contains(t, text, "N°ccccdddd - Marie Durand")
	assert.Contains(t, text, "Motif : erreur de saisie")

	// Consignor payout detail.
	assert.Contains(t, text, "Total versé : 15.00 €")
	assert.Contains(t, text, "16:20 - Reçu: R-2026-041")
	assert.Contains(t, text, "Jeanne Martin")
	assert.Contains(t, text, "Sac bandoulière")

	// Per-sale payment detail.
	assert.Contains(t, text, "Vente n°aaaabbbb")
	assert.Contains(t, text, "  - Espèces : 60.00 €")
	assert.Contains(t, text, "  - Rendu : 10.00 €")
	assert.Contains(t, text, "  -> Total vente : 50.00 €")
}

func TestRenderClosureMonthlySkipsDrawer(t *testing.T) {
	closure := testClosure()
	closure.Category = domain.ClosureMonthly
	closure.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local)
	closure.DrawerOpening = decimal.Zero
	closure.DrawerTheoretical = decimal.Zero
	closure.DrawerCounted = decimal.Zero

	text := testRenderer().RenderClosure(ticket.ClosureData{
		Closure: closure,
		Sales:   []domain.Sale{testSale()},
	})

	assert.Contains(t, text, "Clôture mensuelle")
	assert.Contains(t, text, "28/02/2026")
	assert.NotContains(t, text, "FOND DE CAISSE")
}

func TestRenderClosureNoCancellations(t *testing.T) {
	text := testRenderer().RenderClosure(ticket.ClosureData{
		Closure: testClosure(),
		Sales:   []domain.Sale{testSale()},
	})

	assert.Contains(t, text, "(aucune vente annulée)")
}
