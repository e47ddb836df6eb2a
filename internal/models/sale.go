package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the persistence shape of one till transaction.
type Sale struct {
	SaleID             string          `json:"saleID" db:"sale_id"`
	SaleDate           time.Time       `json:"saleDate" db:"sale_date"`
	ClientID           *string         `json:"clientID" db:"client_id"`
	Cancelled          bool            `json:"cancelled" db:"cancelled"`
	CancellationReason string          `json:"cancellationReason" db:"cancellation_reason"`
	GrossTotal         decimal.Decimal `json:"grossTotal" db:"gross_total"`
	NetTotal           decimal.Decimal `json:"netTotal" db:"net_total"`
	FlatDiscount       decimal.Decimal `json:"flatDiscount" db:"flat_discount"`
	VoucherApplied     decimal.Decimal `json:"voucherApplied" db:"voucher_applied"`
	Card               decimal.Decimal `json:"card" db:"card"`
	Cash               decimal.Decimal `json:"cash" db:"cash"`
	Check              decimal.Decimal `json:"check" db:"check_amount"`
	AltCard            decimal.Decimal `json:"altCard" db:"alt_card"`
	AuditFields
}

// SaleLine is the persistence shape of one product entry within a sale.
type SaleLine struct {
	SaleLineID       string          `json:"saleLineID" db:"sale_line_id"`
	SaleID           string          `json:"saleID" db:"sale_id"`
	ProductID        string          `json:"productID" db:"product_id"`
	Quantity         int             `json:"quantity" db:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice" db:"unit_price"`
	DiscountPct      decimal.Decimal `json:"discountPct" db:"discount_pct"`
	ProductName      string          `json:"productName" db:"product_name"`
	ProductCondition string          `json:"productCondition" db:"product_condition"`
}
