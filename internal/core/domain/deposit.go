package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositPayment is a payout to a consignment supplier for items sold on
// their behalf. Consumed read-only by the closure engine.
type DepositPayment struct {
	DepositID     string          `json:"depositID"`
	ClientID      string          `json:"clientID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"` // "Espèces", "Chèque", ...
	ReceiptNumber string          `json:"receiptNumber"`
	PaidAt        time.Time       `json:"paidAt"`
	SaleIDs       []string        `json:"saleIDs,omitempty"` // sales consumed by this payout
}

// DepositPaymentLine is one consigned product aggregated within a payout,
// as shown on the closure ticket.
type DepositPaymentLine struct {
	ProductName string           `json:"productName"`
	Condition   ProductCondition `json:"condition"`
	Quantity    int              `json:"quantity"`
	Total       decimal.Decimal  `json:"total"`
}

// PaidInCash reports whether the payout left the drawer.
func (d DepositPayment) PaidInCash() bool {
	return d.PaymentMethod == "Espèces"
}
