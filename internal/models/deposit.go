package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositPayment is the persistence shape of a consignment payout.
type DepositPayment struct {
	DepositID     string          `json:"depositID" db:"deposit_id"`
	ClientID      string          `json:"clientID" db:"client_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	ReceiptNumber string          `json:"receiptNumber" db:"receipt_number"`
	PaidAt        time.Time       `json:"paidAt" db:"paid_at"`
}
