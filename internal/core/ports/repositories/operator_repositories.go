package repositories

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// OperatorReader defines read operations for operator data
type OperatorReader interface {
	// FindOperatorByID retrieves an operator by its unique identifier.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// FindOperatorByUsername retrieves an operator by username for login.
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// OperatorWriter defines write operations for operator data
type OperatorWriter interface {
	// SaveOperator persists an operator.
	SaveOperator(ctx context.Context, operator domain.Operator) error
}

// OperatorRepositoryFacade combines all operator-related repository interfaces
type OperatorRepositoryFacade interface {
	OperatorReader
	OperatorWriter
}

// OperatorRepositoryWithTx extends OperatorRepositoryFacade with transaction capabilities
type OperatorRepositoryWithTx interface {
	OperatorRepositoryFacade
	TransactionManager
}
