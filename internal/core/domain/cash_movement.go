package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection is the direction of a cash drawer movement.
type MovementDirection string

const (
	MovementIn  MovementDirection = "in"
	MovementOut MovementDirection = "out"
)

// CashMovement is a manual cash-drawer adjustment independent of ordinary
// sale retention: float top-ups, payouts, refunds in cash, corrections.
type CashMovement struct {
	MovementID string            `json:"movementID"`
	Date       time.Time         `json:"date"`
	Direction  MovementDirection `json:"direction"`
	Amount     decimal.Decimal   `json:"amount"`
	Reason     string            `json:"reason"`
	SaleID     *string           `json:"saleID,omitempty"`
	AuditFields
}
