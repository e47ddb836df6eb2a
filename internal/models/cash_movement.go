package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement is the persistence shape of a drawer adjustment.
type CashMovement struct {
	MovementID string          `json:"movementID" db:"movement_id"`
	Date       time.Time       `json:"date" db:"movement_date"`
	Direction  string          `json:"direction" db:"direction"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Reason     string          `json:"reason" db:"reason"`
	SaleID     *string         `json:"saleID" db:"sale_id"`
	AuditFields
}
