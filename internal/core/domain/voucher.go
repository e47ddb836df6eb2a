package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherValidityWindow is the rolling eligibility window for redemption.
const VoucherValidityWindow = 365 * 24 * time.Hour

// Voucher is store credit issued to a customer, redeemable exactly once
// within one year of creation. The sale links are weak references: a sale may
// be deleted in administrative flows without cascading to its vouchers.
type Voucher struct {
	VoucherID       string          `json:"voucherID"`
	ClientID        string          `json:"clientID"`
	IssuingSaleID   *string         `json:"issuingSaleID,omitempty"`
	RedeemingSaleID *string         `json:"redeemingSaleID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Redeemed        bool            `json:"redeemed"`
	Remarks         string          `json:"remarks"`
	AuditFields
}

// Redeemable reports whether the voucher can still be applied to a sale at
// the given instant: never redeemed and younger than the validity window.
func (v Voucher) Redeemable(now time.Time) bool {
	return !v.Redeemed && now.Sub(v.CreatedAt) < VoucherValidityWindow
}
