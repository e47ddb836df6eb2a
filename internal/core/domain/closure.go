package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosureCategory distinguishes end-of-day from end-of-month closures.
type ClosureCategory string

const (
	ClosureDaily   ClosureCategory = "daily"
	ClosureMonthly ClosureCategory = "monthly"
)

// Closure is an immutable end-of-period financial summary. At most one
// closure may exist per (Date, Category); it is derived from the sales,
// vouchers, cash movements and deposit payouts of the period at creation
// time and never recomputed in place.
type Closure struct {
	ClosureID string          `json:"closureID"`
	Category  ClosureCategory `json:"category"`
	Date      time.Time       `json:"date"` // the day, or the last day of the month

	TotalHT  decimal.Decimal `json:"totalHT"`
	TotalTVA decimal.Decimal `json:"totalTVA"`
	TotalTTC decimal.Decimal `json:"totalTTC"`

	HT0   decimal.Decimal `json:"ht0"`
	HT20  decimal.Decimal `json:"ht20"`
	TTC0  decimal.Decimal `json:"ttc0"`
	TTC20 decimal.Decimal `json:"ttc20"`
	TVA20 decimal.Decimal `json:"tva20"`

	TotalCard    decimal.Decimal `json:"totalCard"`
	TotalAltCard decimal.Decimal `json:"totalAltCard"`
	TotalCash    decimal.Decimal `json:"totalCash"` // cash actually retained, net of change
	TotalCheck   decimal.Decimal `json:"totalCheck"`
	TotalCollected decimal.Decimal `json:"totalCollected"`

	TotalDiscounts     decimal.Decimal `json:"totalDiscounts"`
	TotalCancellations decimal.Decimal `json:"totalCancellations"`
	TotalDeposits      decimal.Decimal `json:"totalDeposits"` // paid out to consignors

	SaleCount     int             `json:"saleCount"`
	ClientCount   int             `json:"clientCount"`
	ItemCount     int             `json:"itemCount"`
	AverageTicket decimal.Decimal `json:"averageTicket"`

	DrawerOpening     decimal.Decimal `json:"drawerOpening"`
	DrawerTheoretical decimal.Decimal `json:"drawerTheoretical"`
	DrawerCounted     decimal.Decimal `json:"drawerCounted"`

	AuditFields
}
