package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelCashMovement converts a domain CashMovement to a model CashMovement
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:  d.MovementID,
		Date:        d.Date,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		Reason:      d.Reason,
		SaleID:      d.SaleID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashMovement converts a model CashMovement to a domain CashMovement
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:  m.MovementID,
		Date:        m.Date,
		Direction:   domain.MovementDirection(m.Direction),
		Amount:      m.Amount,
		Reason:      m.Reason,
		SaleID:      m.SaleID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashMovementSlice converts a slice of model CashMovements to domain CashMovements
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}
