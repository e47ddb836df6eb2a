package models

import "github.com/shopspring/decimal"

// Voucher is the persistence shape of store credit.
type Voucher struct {
	VoucherID       string          `json:"voucherID" db:"voucher_id"`
	ClientID        string          `json:"clientID" db:"client_id"`
	IssuingSaleID   *string         `json:"issuingSaleID" db:"issuing_sale_id"`
	RedeemingSaleID *string         `json:"redeemingSaleID" db:"redeeming_sale_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Redeemed        bool            `json:"redeemed" db:"redeemed"`
	Remarks         string          `json:"remarks" db:"remarks"`
	AuditFields
}
