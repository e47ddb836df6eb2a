package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caisse-pos/caisse_backend/internal/audit"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/caisse-pos/caisse_backend/internal/models"
	"github.com/caisse-pos/caisse_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the append-only audit log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryWithTx {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuditRepositoryWithTx = (*PgxAuditRepository)(nil)

const auditEventColumns = `event_id, sequence, action, entity_id, payload, prev_hash, hash, created_at, created_by`

func scanAuditEvent(row pgx.Row) (models.AuditEvent, error) {
	var e models.AuditEvent
	err := row.Scan(
		&e.EventID,
		&e.Sequence,
		&e.Action,
		&e.EntityID,
		&e.Payload,
		&e.PrevHash,
		&e.Hash,
		&e.CreatedAt,
		&e.CreatedBy,
	)
	return e, err
}

// FindLatestEvent retrieves the highest-sequence event, or nil when the log is
// empty.
func (r *PgxAuditRepository) FindLatestEvent(ctx context.Context) (*domain.AuditEvent, error) {
	query := `
		SELECT ` + auditEventColumns + `
		FROM audit_events
		ORDER BY sequence DESC
		LIMIT 1;
	`
	modelEvent, err := scanAuditEvent(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest audit event: %w", err)
	}

	domainEvent := mapping.ToDomainAuditEvent(modelEvent)
	return &domainEvent, nil
}

// ListEvents retrieves events in chain order, oldest first. A non-positive
// limit returns the whole log.
func (r *PgxAuditRepository) ListEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	query := `
		SELECT ` + auditEventColumns + `
		FROM audit_events
		ORDER BY sequence ASC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditEvent, error) {
		return scanAuditEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit events: %w", err)
	}

	return mapping.ToDomainAuditEventSlice(modelEvents), nil
}

// AppendEvent chains and persists an event in its own transaction.
func (r *PgxAuditRepository) AppendEvent(ctx context.Context, event domain.AuditEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.AppendEventInTx(ctx, tx, event); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// AppendEventInTx chains and persists an event inside an existing transaction.
// The latest row is locked so concurrent appends serialize and sequences never
// collide.
func (r *PgxAuditRepository) AppendEventInTx(ctx context.Context, tx pgx.Tx, event domain.AuditEvent) error {
	latestQuery := `
		SELECT ` + auditEventColumns + `
		FROM audit_events
		ORDER BY sequence DESC
		LIMIT 1
		FOR UPDATE;
	`
	var prev *domain.AuditEvent
	modelPrev, err := scanAuditEvent(tx.QueryRow(ctx, latestQuery))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to lock latest audit event: %w", err)
		}
	} else {
		domainPrev := mapping.ToDomainAuditEvent(modelPrev)
		prev = &domainPrev
	}

	chained := audit.Chain(event, prev)
	modelEvent := mapping.ToModelAuditEvent(chained)

	insertQuery := `
		INSERT INTO audit_events (` + auditEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelEvent.EventID,
		modelEvent.Sequence,
		modelEvent.Action,
		modelEvent.EntityID,
		modelEvent.Payload,
		modelEvent.PrevHash,
		modelEvent.Hash,
		modelEvent.CreatedAt,
		modelEvent.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event %s: %w", modelEvent.EventID, err)
	}
	return nil
}
