package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// ClosureReader defines read operations for closure data
type ClosureReader interface {
	// FindClosureByPeriod retrieves the closure for the given category and
	// period date, if any.
	FindClosureByPeriod(ctx context.Context, category domain.ClosureCategory, date time.Time) (*domain.Closure, error)

	// FindClosureByID retrieves a closure by its unique identifier.
	FindClosureByID(ctx context.Context, closureID string) (*domain.Closure, error)

	// ListClosures retrieves closures of a category, most recent first.
	ListClosures(ctx context.Context, category domain.ClosureCategory, limit int) ([]domain.Closure, error)

	// CountClosuresBetween counts closures of a category whose period date
	// falls in [from, to).
	CountClosuresBetween(ctx context.Context, category domain.ClosureCategory, from, to time.Time) (int, error)
}

// ClosureWriter defines write operations for closure data
type ClosureWriter interface {
	// SaveClosure persists a closure. Returns apperrors.ErrDuplicate when a
	// closure already exists for the same category and period date.
	SaveClosure(ctx context.Context, closure domain.Closure) error
}

// ClosureRepositoryFacade combines all closure-related repository interfaces
type ClosureRepositoryFacade interface {
	ClosureReader
	ClosureWriter
}

// ClosureRepositoryWithTx extends ClosureRepositoryFacade with transaction capabilities
type ClosureRepositoryWithTx interface {
	ClosureRepositoryFacade
	TransactionManager
}
