package ticket_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/ticket"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRenderer() *ticket.Renderer {
	return ticket.NewRenderer(ticket.ShopInfo{
		Name:    "VINTAGE ROYAN",
		Address: "12 rue des Halles",
		City:    "17200 Royan",
		Phone:   "05 46 00 00 00",
		SIRET:   "SIRET 123 456 789 00010",
	})
}

func testSale() domain.Sale {
	clientID := "c-1"
	return domain.Sale{
		SaleID:       "aaaabbbb-0000-1111-2222-333344445555",
		SaleDate:     time.Date(2026, 3, 5, 11, 30, 0, 0, time.Local),
		ClientID:     &clientID,
		GrossTotal:   dec("60.00"),
		NetTotal:     dec("50.00"),
		FlatDiscount: dec("6.00"),
		Cash:         dec("60.00"),
		Lines: []domain.SaleLine{
			{
				SaleLineID:       "l-1",
				ProductID:        "p-used",
				Quantity:         1,
				UnitPrice:        dec("40.00"),
				DiscountPct:      dec("10"),
				ProductName:      "Veste en cuir années 70",
				ProductCondition: domain.ConditionUsed,
			},
			{
				SaleLineID:       "l-2",
				ProductID:        "p-new",
				Quantity:         1,
				UnitPrice:        dec("20.00"),
				DiscountPct:      decimal.Zero,
				ProductName:      "Ceinture",
				ProductCondition: domain.ConditionNew,
			},
		},
	}
}

// assertPrintable checks that no line exceeds the printer width. Accented
// labels count as one column each, hence the rune count.
func assertPrintable(t *testing.T, text string) {
	t.Helper()
	for i, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), ticket.Width, "line %d too wide: %q", i+1, line)
	}
}

func TestRenderSale(t *testing.T) {
	text := testRenderer().RenderSale(ticket.SaleData{
		Sale:       testSale(),
		ClientName: "Marie Durand",
	})

	assertPrintable(t, text)
	assert.Contains(t, text, "VINTAGE ROYAN")
	assert.Contains(t, text, "*** VENTE ***")
	assert.Contains(t, text, "Vente n°aaaabbbb")
	assert.Contains(t, text, "Client : Marie Durand")
	assert.Contains(t, text, "Occasion - TVA 0%")
	assert.Contains(t, text, "Neuf - TVA 20%")
	assert.Contains(t, text, "Veste en cuir années 70")
	assert.Contains(t, text, "- Remise : 4.00 € (10%)")
	assert.Contains(t, text, "Remise globale")
	assert.Contains(t, text, "Total articles : 2")
	assert.Contains(t, text, "Merci de votre visite")

	// 50.00 due, 60.00 in cash: 10.00 back, nothing left to pay.
	assert.Contains(t, text, "Rendu")
	assert.Contains(t, text, "10.00 €")
	assert.Contains(t, text, "Reste à payer")
	assert.Contains(t, text, "0.00 €")
}

func TestRenderSaleTotalsLine(t *testing.T) {
	text := testRenderer().RenderSale(ticket.SaleData{Sale: testSale()})

	lines := strings.Split(text, "\n")
	var totalLine string
	for _, l := range lines {
		if strings.HasPrefix(l, "TOTAL TTC") {
			totalLine = l
			break
		}
	}
	require.NotEmpty(t, totalLine, "TOTAL TTC line missing")
	assert.Equal(t, ticket.Width, utf8.RuneCountInString(totalLine))
	assert.True(t, strings.HasSuffix(totalLine, "50.00 €"))
}

func TestRenderSaleAnonymous(t *testing.T) {
	sale := testSale()
	sale.ClientID = nil
	text := testRenderer().RenderSale(ticket.SaleData{Sale: sale})

	assert.Contains(t, text, "Client : Sans client")
}

func TestRenderSaleVouchers(t *testing.T) {
	sale := testSale()
	sale.Cash = decimal.Zero
	sale.VoucherApplied = dec("50.00")
	text := testRenderer().RenderSale(ticket.SaleData{
		Sale: sale,
		RedeemedVoucher: &domain.Voucher{
			VoucherID: "vvvvwwww-0000-1111-2222-333344445555",
			Amount:    dec("80.00"),
		},
		IssuedVoucher: &domain.Voucher{
			VoucherID: "xxxxyyyy-0000-1111-2222-333344445555",
			Amount:    dec("30.00"),
		},
	})

	assertPrintable(t, text)
	assert.Contains(t, text, "Avoir utilisé n°vvvvwwww")
	assert.Contains(t, text, "-80.00 €")
	assert.Contains(t, text, "Avoir émis n°xxxxyyyy")
	assert.Contains(t, text, "30.00 €")
}

func TestRenderSaleVATGrid(t *testing.T) {
	text := testRenderer().RenderSale(ticket.SaleData{Sale: testSale()})

	// Used line nets 32.14, new line 17.86 → HT20 14.88, TVA 2.98.
	assert.Contains(t, text, "Taux TVA")
	assert.Contains(t, text, "32.14 €")
	assert.Contains(t, text, "17.86 €")
	assert.Contains(t, text, "14.88 €")
	assert.Contains(t, text, "2.98 €")
}
