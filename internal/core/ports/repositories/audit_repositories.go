package repositories

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditEventReader defines read operations for the audit log
type AuditEventReader interface {
	// FindLatestEvent retrieves the most recent event, or nil when the log
	// is empty.
	FindLatestEvent(ctx context.Context) (*domain.AuditEvent, error)

	// ListEvents retrieves events in chain order, oldest first.
	ListEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// AuditEventWriter defines write operations for the audit log
type AuditEventWriter interface {
	// AppendEvent chains and persists an event. Sequence, PrevHash and Hash
	// are assigned by the repository under lock.
	AppendEvent(ctx context.Context, event domain.AuditEvent) error

	// AppendEventInTx chains and persists an event inside an existing
	// transaction.
	AppendEventInTx(ctx context.Context, tx pgx.Tx, event domain.AuditEvent) error
}

// AuditRepositoryFacade combines all audit-log repository interfaces
type AuditRepositoryFacade interface {
	AuditEventReader
	AuditEventWriter
}

// AuditRepositoryWithTx extends AuditRepositoryFacade with transaction capabilities
type AuditRepositoryWithTx interface {
	AuditRepositoryFacade
	TransactionManager
}
