package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher by its unique identifier.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchersByClient retrieves all vouchers held by a client, newest
	// first.
	ListVouchersByClient(ctx context.Context, clientID string) ([]domain.Voucher, error)

	// ListRedeemableVouchers retrieves all unredeemed vouchers created after
	// the cutoff, newest first.
	ListRedeemableVouchers(ctx context.Context, cutoff time.Time) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a new voucher.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// SaveVoucherInTx persists a new voucher inside an existing transaction.
	SaveVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error

	// MarkRedeemedInTx persists the redeemed state of a voucher inside an
	// existing transaction. The voucher carries the redeeming sale link and
	// updated audit fields.
	MarkRedeemedInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
