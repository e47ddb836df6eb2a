package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents one completed customer transaction at the till.
// GrossTotal is the sum of line gross amounts; NetTotal is what the customer
// owed after line discounts and the sale-level flat discount. A redeemed
// voucher is a tender, not a discount: the amount actually due at payment is
// NetTotal minus VoucherApplied. NetTotal is persisted at creation time and
// never recomputed.
type Sale struct {
	SaleID             string          `json:"saleID"`
	SaleDate           time.Time       `json:"saleDate"`
	ClientID           *string         `json:"clientID,omitempty"`
	Cancelled          bool            `json:"cancelled"`
	CancellationReason string          `json:"cancellationReason,omitempty"` // required iff Cancelled
	GrossTotal         decimal.Decimal `json:"grossTotal"`
	NetTotal           decimal.Decimal `json:"netTotal"`
	FlatDiscount       decimal.Decimal `json:"flatDiscount"` // sale-level currency discount, zero when absent

	// Portion of NetTotal covered by a redeemed voucher, zero otherwise.
	VoucherApplied decimal.Decimal `json:"voucherApplied"`

	// Tendered amounts per payment method.
	Card     decimal.Decimal `json:"card"`
	Cash     decimal.Decimal `json:"cash"`
	Check    decimal.Decimal `json:"check"`
	AltCard  decimal.Decimal `json:"altCard"` // secondary card scheme (AMEX)
	AuditFields

	Lines []SaleLine `json:"lines,omitempty"` // loaded separately for list operations
}

// SaleLine is one product/quantity/discount entry within a Sale.
// UnitPrice and the product snapshot fields are captured at sale time.
type SaleLine struct {
	SaleLineID  string          `json:"saleLineID"`
	SaleID      string          `json:"saleID"`
	ProductID   string          `json:"productID"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	DiscountPct decimal.Decimal `json:"discountPct"` // 0..100

	// Snapshot of the product at sale time, used by reports.
	ProductName      string           `json:"productName"`
	ProductCondition ProductCondition `json:"productCondition"`
}
