package reconcile

import "github.com/shopspring/decimal"

// DrawerFigures are the inputs to the theoretical drawer balance.
type DrawerFigures struct {
	Opening         decimal.Decimal // opening float
	MovementsIn     decimal.Decimal // manual cash movements in
	MovementsOut    decimal.Decimal // manual cash movements out
	DepositPayouts  decimal.Decimal // consignor payouts made in cash
	CashRetained    decimal.Decimal // cash retained from the period's sales
}

// TheoreticalBalance is the cash amount the drawer should contain, derived
// from the movement ledger every time it is needed. It is never cached and
// never self-corrected against the counted balance.
func TheoreticalBalance(f DrawerFigures) decimal.Decimal {
	return f.Opening.
		Add(f.MovementsIn).
		Sub(f.MovementsOut).
		Sub(f.DepositPayouts).
		Add(f.CashRetained)
}

// Difference reports counted minus theoretical. A shortfall is negative.
func Difference(counted, theoretical decimal.Decimal) decimal.Decimal {
	return counted.Sub(theoretical)
}
