package ticket

import (
	"fmt"
	"strings"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

// DepositDetail is one consignor payout with its per-product breakdown, as
// listed on the closure ticket.
type DepositDetail struct {
	Payment    domain.DepositPayment
	ClientName string
	Lines      []domain.DepositPaymentLine
}

// ClosureData bundles the closure record with the period detail listed on the
// report ticket.
type ClosureData struct {
	Closure     domain.Closure
	Sales       []domain.Sale // non-cancelled, lines loaded, chronological
	Cancelled   []domain.Sale
	ClientNames map[string]string // clientID -> display name
	Deposits    []DepositDetail
}

func (d ClosureData) clientName(id *string) string {
	if id == nil {
		return "Sans client"
	}
	if name, ok := d.ClientNames[*id]; ok && name != "" {
		return name
	}
	return shortID(*id)
}

// RenderClosure renders the 42-column Z (or monthly) report ticket.
func (r *Renderer) RenderClosure(data ClosureData) string {
	c := data.Closure

	var b strings.Builder
	w := func(line string) { b.WriteString(line + "\n") }

	w(center(r.Shop.Name))
	w(center(r.Shop.Address))
	w(center(r.Shop.City))
	w(center(r.Shop.SIRET))
	title := "Clôture de caisse Z"
	if c.Category == domain.ClosureMonthly {
		title = "Clôture mensuelle"
	}
	w(center(title))
	w(center(c.Date.Format("02/01/2006")))
	w(rule())

	w("Ouverture : " + c.Date.Format("02/01/2006") + " à 00:00")
	w("Clôture   : " + c.Date.Format("02/01/2006") + " à 20:00")
	w(rule())

	w("STATISTIQUES")
	w(fmt.Sprintf("Nombre de ventes           : %d", c.SaleCount))
	w(fmt.Sprintf("Nombre d'article vendu     : %d", c.ItemCount))
	w(fmt.Sprintf("Nombre de nouveaux clients : %d", c.ClientCount))
	w("Ticket moyen               : " + money(c.AverageTicket))
	w(rule())

	w("PAIEMENTS")
	w("AMEX           : " + money(c.TotalAltCard))
	w("CB             : " + money(c.TotalCard))
	w("Espèces        : " + money(c.TotalCash))
	w("Chèque         : " + money(c.TotalCheck))
	w("Total encaissé : " + money(c.TotalCollected))
	w(rule())

	w("RECAPITULATIF TVA")
	w(closureGridRow("Taux", "HT", "TVA", "TTC"))
	w(closureGridRow("0%", money(c.HT0), "0.00 €", money(c.TTC0)))
	w(closureGridRow("20%", money(c.HT20), money(c.TVA20), money(c.TTC20)))
	w(rule())

	w("CHIFFRE D'AFFAIRES")
	w("Total HT   : " + money(c.TotalHT))
	w("Total TVA  : " + money(c.TotalTVA))
	w("Total TTC  : " + money(c.TotalTTC))
	w(rule())

	w("REMISES ET ANNULATIONS")
	w("Total remises         : " + money(c.TotalDiscounts))
	w("Total annulations     : " + money(c.TotalCancellations))
	w(rule())

	w("VENTES ANNULÉES")
	if len(data.Cancelled) == 0 {
		w("(aucune vente annulée)")
	} else {
		for _, sale := range data.Cancelled {
			w(fmt.Sprintf("N°%s - %s - %s - Total : %s€",
				shortID(sale.SaleID),
				data.clientName(sale.ClientID),
				sale.SaleDate.Format("15:04"),
				sale.NetTotal.StringFixed(2)))
			if reason := strings.TrimSpace(sale.CancellationReason); reason != "" {
				w("Motif : " + reason)
			}
			for _, l := range sale.Lines {
				w(fmt.Sprintf("   %s x%d à %s€ (remise %s%%)",
					l.ProductName, l.Quantity, l.UnitPrice.StringFixed(2), l.DiscountPct.StringFixed(0)))
			}
		}
	}
	w(rule())

	if c.Category == domain.ClosureDaily {
		difference := reconcile.Difference(c.DrawerCounted, c.DrawerTheoretical)
		w("FOND DE CAISSE")
		w("Initial        : " + money(c.DrawerOpening))
		w("Théorique     : " + money(c.DrawerTheoretical))
		w("Final (compté) : " + money(c.DrawerCounted))
		w("Différence     : " + signedMoney(difference))
		w(rule())
	}

	w("VERSEMENTS AUX DEPOSANTS")
	w("")
	w("Total versé : " + money(c.TotalDeposits))
	w(rule())

	w("DETAIL DES VENTES")
	w("")
	for _, sale := range data.Sales {
		w(fmt.Sprintf("Vente n°%s - %s - multi-paiement :", shortID(sale.SaleID), sale.SaleDate.Format("15:04")))
		tender := reconcile.Tender(reconcile.TenderAmounts{
			Card:    sale.Card,
			Cash:    sale.Cash,
			Check:   sale.Check,
			AltCard: sale.AltCard,
		}, sale.NetTotal.Sub(sale.VoucherApplied))
		for _, m := range []struct {
			label  string
			amount string
			zero   bool
		}{
			{"CB", money(sale.Card), sale.Card.IsZero()},
			{"Espèces", money(sale.Cash), sale.Cash.IsZero()},
			{"Chèque", money(sale.Check), sale.Check.IsZero()},
			{"AMEX", money(sale.AltCard), sale.AltCard.IsZero()},
		} {
			if m.zero {
				continue
			}
			w("  - " + m.label + " : " + m.amount)
		}
		if tender.ChangeDue.IsPositive() {
			w("  - Rendu : " + money(tender.ChangeDue))
		}

		norm := reconcile.NormalizeLines(sale.Lines, sale.FlatDiscount)
		for i, l := range sale.Lines {
			w("  " + truncate(l.ProductName, Width-2))
			w(fmt.Sprintf("    %s - x%d à %s", conditionLabel(l.ProductCondition), l.Quantity, money(l.UnitPrice)))
			if norm.Lines[i].LineDiscount.IsPositive() {
				w(fmt.Sprintf("    Remise : -%s (%s %%)", money(norm.Lines[i].LineDiscount), l.DiscountPct.StringFixed(0)))
			}
			w("    Total : " + money(norm.Lines[i].NetAfterLine))
		}
		if sale.FlatDiscount.IsPositive() {
			w("    Remise globale : -" + money(sale.FlatDiscount))
		}
		w("  -> Total vente : " + money(sale.NetTotal))
		w(rule())
	}

	w("DETAIL DES VERSEMENTS")
	w("")
	for _, d := range data.Deposits {
		w(d.Payment.PaidAt.Format("15:04") + " - Reçu: " + d.Payment.ReceiptNumber)
		w(d.ClientName)
		w("Montant : " + money(d.Payment.Amount))
		w("Produits de la déposante :")
		for _, l := range d.Lines {
			w(fmt.Sprintf("  - %s x%s = %s", rpad(l.ProductName, 18), rpad(fmt.Sprintf("%d", l.Quantity), 2), money(l.Total)))
		}
		w("")
	}
	w(rule())

	w("")
	w(center("Merci et à demain !"))
	b.WriteString(strings.Repeat("\n", 10))

	return b.String()
}

// closureGridRow lays out the VAT recap columns, 8 + 10 + 10 runes then the
// remainder.
func closureGridRow(c1, c2, c3, c4 string) string {
	return rpad(c1, 8) + rpad(c2, 10) + rpad(c3, 10) + c4
}
