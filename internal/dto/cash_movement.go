package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the payload to record a manual drawer movement.
type CreateMovementRequest struct {
	Direction string          `json:"direction" binding:"required,oneof=in out"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reason    string          `json:"reason" binding:"required"`
}

// MovementResponse defines the data returned for a drawer movement.
type MovementResponse struct {
	MovementID string          `json:"movementID"`
	Date       time.Time       `json:"date"`
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	SaleID     *string         `json:"saleID,omitempty"`
	CreatedBy  string          `json:"createdBy"`
}

// DrawerStatusResponse is the live theoretical state of the cash drawer for
// one day.
type DrawerStatusResponse struct {
	Date           time.Time       `json:"date"`
	Opening        decimal.Decimal `json:"opening"`
	MovementsIn    decimal.Decimal `json:"movementsIn"`
	MovementsOut   decimal.Decimal `json:"movementsOut"`
	DepositPayouts decimal.Decimal `json:"depositPayouts"`
	CashRetained   decimal.Decimal `json:"cashRetained"`
	Theoretical    decimal.Decimal `json:"theoretical"`
}

// ToMovementResponse converts a domain.CashMovement to MovementResponse DTO.
func ToMovementResponse(m *domain.CashMovement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		Date:       m.Date,
		Direction:  string(m.Direction),
		Amount:     m.Amount,
		Reason:     m.Reason,
		SaleID:     m.SaleID,
		CreatedBy:  m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain.CashMovement to []MovementResponse.
func ToMovementResponses(movements []domain.CashMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ToMovementResponse(&m)
	}
	return responses
}
