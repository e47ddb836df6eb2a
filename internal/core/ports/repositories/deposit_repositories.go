package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// DepositReader defines read operations for consignment payout data
type DepositReader interface {
	// ListDepositPaymentsBetween retrieves payouts dated in [from, to),
	// oldest first.
	ListDepositPaymentsBetween(ctx context.Context, from, to time.Time) ([]domain.DepositPayment, error)

	// ListDepositPaymentLines retrieves the per-product breakdown of a
	// payout for ticket rendering.
	ListDepositPaymentLines(ctx context.Context, depositID string) ([]domain.DepositPaymentLine, error)
}

// DepositWriter defines write operations for consignment payout data
type DepositWriter interface {
	// SaveDepositPayment persists a payout and its sale links.
	SaveDepositPayment(ctx context.Context, payment domain.DepositPayment) error
}

// DepositRepositoryFacade combines all payout-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}

// DepositRepositoryWithTx extends DepositRepositoryFacade with transaction capabilities
type DepositRepositoryWithTx interface {
	DepositRepositoryFacade
	TransactionManager
}
