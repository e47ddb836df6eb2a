package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale and its lines by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesBetween retrieves all sales whose sale date falls in
	// [from, to), cancelled ones included, with lines loaded. Ordered by
	// sale date ascending.
	ListSalesBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error)

	// ListRecentSales retrieves the most recent sales with lines loaded,
	// newest first.
	ListRecentSales(ctx context.Context, limit int) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a sale and its lines, decrements stock for the sold
	// products, and applies the optional voucher operations, all within a
	// single database transaction. redeemVoucher carries the redeemed state
	// to persist; issueVoucher is a carry-forward credit for the unspent
	// remainder of an over-large voucher.
	SaveSale(ctx context.Context, sale domain.Sale, soldQuantities map[string]int, redeemVoucher *domain.Voucher, issueVoucher *domain.Voucher) error

	// CancelSale marks the sale cancelled, restocks the given products and
	// records the refund movements and the compensating voucher within a
	// single database transaction. The sale carries the cancelled flag,
	// reason and updated audit fields.
	CancelSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int, refunds []domain.CashMovement, issueVoucher *domain.Voucher) error

	// RefundLine removes one line, persists the adjusted sale totals,
	// restocks the line's product and records the refund movement or
	// compensating voucher within a single database transaction. The sale
	// itself stays valid; the sale argument carries the adjusted totals and
	// updated audit fields.
	RefundLine(ctx context.Context, sale domain.Sale, saleLineID string, restockQuantities map[string]int, refund *domain.CashMovement, issueVoucher *domain.Voucher) error

	// DeleteSale removes the sale and its lines and restocks the given
	// products within a single database transaction. Voucher and movement
	// links to the sale are cleared, not cascaded. Returns
	// apperrors.ErrConflict when a consignor payout references the sale.
	DeleteSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
