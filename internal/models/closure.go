package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Closure is the persistence shape of an end-of-period summary.
type Closure struct {
	ClosureID string    `json:"closureID" db:"closure_id"`
	Category  string    `json:"category" db:"category"`
	Date      time.Time `json:"date" db:"closure_date"`

	TotalHT  decimal.Decimal `json:"totalHT" db:"total_ht"`
	TotalTVA decimal.Decimal `json:"totalTVA" db:"total_tva"`
	TotalTTC decimal.Decimal `json:"totalTTC" db:"total_ttc"`

	HT0   decimal.Decimal `json:"ht0" db:"ht_0"`
	HT20  decimal.Decimal `json:"ht20" db:"ht_20"`
	TTC0  decimal.Decimal `json:"ttc0" db:"ttc_0"`
	TTC20 decimal.Decimal `json:"ttc20" db:"ttc_20"`
	TVA20 decimal.Decimal `json:"tva20" db:"tva_20"`

	TotalCard      decimal.Decimal `json:"totalCard" db:"total_card"`
	TotalAltCard   decimal.Decimal `json:"totalAltCard" db:"total_alt_card"`
	TotalCash      decimal.Decimal `json:"totalCash" db:"total_cash"`
	TotalCheck     decimal.Decimal `json:"totalCheck" db:"total_check"`
	TotalCollected decimal.Decimal `json:"totalCollected" db:"total_collected"`

	TotalDiscounts     decimal.Decimal `json:"totalDiscounts" db:"total_discounts"`
	TotalCancellations decimal.Decimal `json:"totalCancellations" db:"total_cancellations"`
	TotalDeposits      decimal.Decimal `json:"totalDeposits" db:"total_deposits"`

	SaleCount     int             `json:"saleCount" db:"sale_count"`
	ClientCount   int             `json:"clientCount" db:"client_count"`
	ItemCount     int             `json:"itemCount" db:"item_count"`
	AverageTicket decimal.Decimal `json:"averageTicket" db:"average_ticket"`

	DrawerOpening     decimal.Decimal `json:"drawerOpening" db:"drawer_opening"`
	DrawerTheoretical decimal.Decimal `json:"drawerTheoretical" db:"drawer_theoretical"`
	DrawerCounted     decimal.Decimal `json:"drawerCounted" db:"drawer_counted"`

	AuditFields
}
