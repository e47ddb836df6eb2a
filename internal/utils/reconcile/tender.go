package reconcile

import "github.com/shopspring/decimal"

// TenderAmounts are the amounts handed over per payment method for one sale.
type TenderAmounts struct {
	Card    decimal.Decimal
	Cash    decimal.Decimal
	Check   decimal.Decimal
	AltCard decimal.Decimal
}

// Other returns the non-cash tender total.
func (t TenderAmounts) Other() decimal.Decimal {
	return t.Card.Add(t.Check).Add(t.AltCard)
}

// Total returns the sum over all methods as tendered, change included.
func (t TenderAmounts) Total() decimal.Decimal {
	return t.Other().Add(t.Cash)
}

// AnyPositive reports whether at least one method carries a positive amount.
func (t TenderAmounts) AnyPositive() bool {
	return t.Card.IsPositive() || t.Cash.IsPositive() || t.Check.IsPositive() || t.AltCard.IsPositive()
}

// TenderResult is the reconciliation of one sale's payments.
type TenderResult struct {
	ChangeDue      decimal.Decimal // cash returned to the customer
	CashRetained   decimal.Decimal // cash that stays in the drawer
	TotalCollected decimal.Decimal // card + alt card + check + cash retained
}

// Tender computes change and retained cash for a sale. Change is only ever
// given on the cash portion: whatever cash exceeds the amount still due after
// the other methods goes back to the customer.
func Tender(amounts TenderAmounts, amountDue decimal.Decimal) TenderResult {
	changeDue := amounts.Cash.Sub(amountDue.Sub(amounts.Other()))
	if changeDue.IsNegative() {
		changeDue = decimal.Zero
	}
	cashRetained := Round2(amounts.Cash.Sub(changeDue))
	return TenderResult{
		ChangeDue:      changeDue,
		CashRetained:   cashRetained,
		TotalCollected: amounts.Other().Add(cashRetained),
	}
}
