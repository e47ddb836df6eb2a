package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositPaymentRequest defines the payload to pay out a consignor.
type CreateDepositPaymentRequest struct {
	ClientID      string          `json:"clientID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=Espèces Chèque Virement"`
	ReceiptNumber string          `json:"receiptNumber"`
	SaleIDs       []string        `json:"saleIDs"`
}

// DepositPaymentResponse defines the data returned for a consignment payout.
type DepositPaymentResponse struct {
	DepositID     string          `json:"depositID"`
	ClientID      string          `json:"clientID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptNumber string          `json:"receiptNumber,omitempty"`
	PaidAt        time.Time       `json:"paidAt"`
	SaleIDs       []string        `json:"saleIDs,omitempty"`
}

// ToDepositPaymentResponse converts a domain.DepositPayment to its DTO.
func ToDepositPaymentResponse(d *domain.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		DepositID:     d.DepositID,
		ClientID:      d.ClientID,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		ReceiptNumber: d.ReceiptNumber,
		PaidAt:        d.PaidAt,
		SaleIDs:       d.SaleIDs,
	}
}

// ToDepositPaymentResponses converts a slice of domain.DepositPayment to DTOs.
func ToDepositPaymentResponses(payments []domain.DepositPayment) []DepositPaymentResponse {
	responses := make([]DepositPaymentResponse, len(payments))
	for i, d := range payments {
		responses[i] = ToDepositPaymentResponse(&d)
	}
	return responses
}
