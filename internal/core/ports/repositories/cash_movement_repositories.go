package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CashMovementReader defines read operations for drawer movement data
type CashMovementReader interface {
	// ListMovementsBetween retrieves all drawer movements dated in
	// [from, to), oldest first.
	ListMovementsBetween(ctx context.Context, from, to time.Time) ([]domain.CashMovement, error)
}

// CashMovementWriter defines write operations for drawer movement data
type CashMovementWriter interface {
	// SaveMovement persists a drawer movement.
	SaveMovement(ctx context.Context, movement domain.CashMovement) error

	// SaveMovementInTx persists a drawer movement inside an existing
	// transaction.
	SaveMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error
}

// CashMovementRepositoryFacade combines all movement-related repository interfaces
type CashMovementRepositoryFacade interface {
	CashMovementReader
	CashMovementWriter
}

// CashMovementRepositoryWithTx extends CashMovementRepositoryFacade with transaction capabilities
type CashMovementRepositoryWithTx interface {
	CashMovementRepositoryFacade
	TransactionManager
}
