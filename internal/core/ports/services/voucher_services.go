package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher data
type VoucherReaderSvc interface {
	// GetVoucherByID retrieves a voucher by ID.
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchersByClient retrieves the vouchers held by a client.
	ListVouchersByClient(ctx context.Context, clientID string) ([]domain.Voucher, error)

	// ListRedeemableVouchers retrieves the vouchers still applicable at the
	// till, newest first.
	ListRedeemableVouchers(ctx context.Context) ([]domain.Voucher, error)

	// VerifyVoucher checks a voucher against a prospective sale total and
	// reports what would happen at redemption.
	VerifyVoucher(ctx context.Context, voucherID string, total decimal.Decimal) (*dto.VoucherVerificationResponse, error)
}

// VoucherWriterSvc defines write operations for voucher data
type VoucherWriterSvc interface {
	// CreateVoucher issues store credit outside of any sale.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, operatorID string) (*domain.Voucher, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
