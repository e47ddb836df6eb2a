package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the payload to issue store credit manually.
type CreateVoucherRequest struct {
	ClientID string          `json:"clientID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Remarks  string          `json:"remarks"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID       string          `json:"voucherID"`
	ClientID        string          `json:"clientID"`
	IssuingSaleID   *string         `json:"issuingSaleID,omitempty"`
	RedeemingSaleID *string         `json:"redeemingSaleID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Redeemed        bool            `json:"redeemed"`
	Redeemable      bool            `json:"redeemable"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	Remarks         string          `json:"remarks,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// VoucherVerificationResponse reports what redeeming a voucher against a
// prospective sale total would do.
type VoucherVerificationResponse struct {
	Voucher        VoucherResponse `json:"voucher"`
	Redeemable     bool            `json:"redeemable"`
	AppliedAmount  decimal.Decimal `json:"appliedAmount"`
	AmountDueAfter decimal.Decimal `json:"amountDueAfter"`
	CarryForward   decimal.Decimal `json:"carryForward"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher, now time.Time) VoucherResponse {
	return VoucherResponse{
		VoucherID:       v.VoucherID,
		ClientID:        v.ClientID,
		IssuingSaleID:   v.IssuingSaleID,
		RedeemingSaleID: v.RedeemingSaleID,
		Amount:          v.Amount,
		Redeemed:        v.Redeemed,
		Redeemable:      v.Redeemable(now),
		ExpiresAt:       v.CreatedAt.Add(domain.VoucherValidityWindow),
		Remarks:         v.Remarks,
		CreatedAt:       v.CreatedAt,
	}
}

// ToVoucherResponses converts a slice of domain.Voucher to []VoucherResponse.
func ToVoucherResponses(vouchers []domain.Voucher, now time.Time) []VoucherResponse {
	responses := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		responses[i] = ToVoucherResponse(&v, now)
	}
	return responses
}
