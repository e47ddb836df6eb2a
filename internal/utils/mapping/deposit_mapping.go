package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelDepositPayment converts a domain DepositPayment to a model
// DepositPayment. Linked sale IDs live in a join table and are not part
// of the row.
func ToModelDepositPayment(d domain.DepositPayment) models.DepositPayment {
	return models.DepositPayment{
		DepositID:     d.DepositID,
		ClientID:      d.ClientID,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		ReceiptNumber: d.ReceiptNumber,
		PaidAt:        d.PaidAt,
	}
}

// ToDomainDepositPayment converts a model DepositPayment to a domain
// DepositPayment. SaleIDs is left empty for the caller to populate.
func ToDomainDepositPayment(m models.DepositPayment) domain.DepositPayment {
	return domain.DepositPayment{
		DepositID:     m.DepositID,
		ClientID:      m.ClientID,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		ReceiptNumber: m.ReceiptNumber,
		PaidAt:        m.PaidAt,
	}
}

// ToDomainDepositPaymentSlice converts a slice of model DepositPayments to domain DepositPayments
func ToDomainDepositPaymentSlice(ms []models.DepositPayment) []domain.DepositPayment {
	ds := make([]domain.DepositPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepositPayment(m)
	}
	return ds
}
