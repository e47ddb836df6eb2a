package ticket

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

// SaleData bundles everything the customer receipt needs beyond the sale
// itself.
type SaleData struct {
	Sale            domain.Sale
	ClientName      string // empty when the sale was anonymous
	RedeemedVoucher *domain.Voucher
	IssuedVoucher   *domain.Voucher // carry-forward credit issued by this sale
}

// shortID renders the printable form of an entity ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func conditionLabel(c domain.ProductCondition) string {
	if c == domain.ConditionNew {
		return "Neuf"
	}
	return "Occasion"
}

// RenderSale renders the 42-column customer receipt for a sale.
func (r *Renderer) RenderSale(data SaleData) string {
	sale := data.Sale
	norm := reconcile.NormalizeLines(sale.Lines, sale.FlatDiscount)
	vat := reconcile.SplitVAT(sale.Lines, norm)

	var b strings.Builder
	w := func(line string) { b.WriteString(line + "\n") }

	w(center(r.Shop.Name))
	w(center(r.Shop.Address))
	w(center(r.Shop.City))
	w(center(r.Shop.Phone))
	w(rule())
	w(center("*** VENTE ***"))
	w(rule())
	w("Vente n°" + shortID(sale.SaleID))
	w("Date : " + sale.SaleDate.Format("02/01/2006 15:04"))
	client := data.ClientName
	if client == "" {
		client = "Sans client"
	}
	w("Client : " + client)
	w(rule())

	totalItems := 0
	for i, l := range sale.Lines {
		la := norm.Lines[i]
		tvaLabel := "TVA 0%"
		if l.ProductCondition == domain.ConditionNew {
			tvaLabel = "TVA 20%"
		}
		w(conditionLabel(l.ProductCondition) + " - " + tvaLabel)
		w(truncate(l.ProductName, Width))
		w(fmt.Sprintf("%s x %s => %s",
			lpad(fmt.Sprintf("%d", l.Quantity), 10),
			money(l.UnitPrice),
			lpad(money(la.Gross), 10)))
		if la.LineDiscount.IsPositive() {
			w(fmt.Sprintf("- Remise : %s (%s%%)", money(la.LineDiscount), l.DiscountPct.StringFixed(0)))
		}
		w("Total net : " + money(la.NetAfterLine))
		w(rule())
		totalItems += l.Quantity
	}

	if sale.FlatDiscount.IsPositive() {
		w(amountLine("Remise globale", "-"+money(sale.FlatDiscount)))
		w(rule())
	}

	w(lpad(fmt.Sprintf("Total articles : %d", totalItems), Width))
	w(rule())
	w(amountLine("Sous-total HT", money(vat.TotalHT)))
	w(amountLine("TVA (20%)", money(vat.TotalTVA)))
	w(rule())
	w(amountLine("TOTAL TTC", money(sale.NetTotal)))
	w(rule())

	paid := decimal.Zero
	if data.RedeemedVoucher != nil {
		w(amountLine("Avoir utilisé n°"+shortID(data.RedeemedVoucher.VoucherID), "-"+money(data.RedeemedVoucher.Amount)))
		paid = paid.Add(sale.VoucherApplied)
	}

	tender := reconcile.Tender(reconcile.TenderAmounts{
		Card:    sale.Card,
		Cash:    sale.Cash,
		Check:   sale.Check,
		AltCard: sale.AltCard,
	}, sale.NetTotal.Sub(sale.VoucherApplied))

	methods := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"CB", sale.Card},
		{"Espèces", sale.Cash},
		{"Chèque", sale.Check},
		{"AMEX", sale.AltCard},
	}
	for _, m := range methods {
		if m.amount.IsZero() {
			continue
		}
		w(amountLine(m.label, "-"+money(m.amount)))
		paid = paid.Add(m.amount)
	}
	if tender.ChangeDue.IsPositive() {
		w(amountLine("Rendu", money(tender.ChangeDue)))
		paid = paid.Sub(tender.ChangeDue)
	}

	remaining := sale.NetTotal.Sub(paid)
	if remaining.Abs().LessThan(decimal.NewFromFloat(0.01)) {
		remaining = decimal.Zero
	}
	w(amountLine("Reste à payer", money(remaining)))
	w(rule())

	if data.IssuedVoucher != nil {
		w(amountLine("Avoir émis n°"+shortID(data.IssuedVoucher.VoucherID), money(data.IssuedVoucher.Amount)))
		w(rule())
	}

	w(gridRow("Taux TVA", "TVA", "HT", "TTC"))
	w(rule())
	w(gridRow("0%", money(decimal.Zero), money(vat.HT0), money(vat.TTC0)))
	w(gridRow("20%", money(vat.TVA20), money(vat.HT20), money(vat.TTC20)))
	w(rule())
	w(gridRow("TOTAL", money(vat.TotalTVA), money(vat.TotalHT), money(vat.TotalTTC)))

	w("")
	w(center("Horaires d'ouverture"))
	w(center("Lundi       14h30 - 19h00"))
	w(center("Mar -> Sam  10h00 - 19h00"))
	w(center("Dimanche    10h00 - 13h00"))
	w("")
	w(center("Merci de votre visite"))
	w(center("A bientôt"))
	w(center(r.Shop.Name))
	b.WriteString(strings.Repeat("\n", 10))

	return b.String()
}
