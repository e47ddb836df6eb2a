package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/caisse-pos/caisse_backend/internal/models"
	"github.com/caisse-pos/caisse_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashMovementRepository struct {
	BaseRepository
}

// newPgxCashMovementRepository creates a new repository for drawer movements.
func newPgxCashMovementRepository(pool *pgxpool.Pool) portsrepo.CashMovementRepositoryWithTx {
	return &PgxCashMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CashMovementRepositoryWithTx = (*PgxCashMovementRepository)(nil)

const cashMovementColumns = `movement_id, movement_date, direction, amount, reason, sale_id, created_at, created_by, last_updated_at, last_updated_by`

// ListMovementsBetween retrieves drawer movements dated in [from, to), oldest
// first.
func (r *PgxCashMovementRepository) ListMovementsBetween(ctx context.Context, from, to time.Time) ([]domain.CashMovement, error) {
	query := `
		SELECT ` + cashMovementColumns + `
		FROM cash_movements
		WHERE movement_date >= $1 AND movement_date < $2
		ORDER BY movement_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash movements: %w", err)
	}
	defer rows.Close()

	modelMovements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashMovement, error) {
		var m models.CashMovement
		err := row.Scan(
			&m.MovementID,
			&m.Date,
			&m.Direction,
			&m.Amount,
			&m.Reason,
			&m.SaleID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash movements: %w", err)
	}

	return mapping.ToDomainCashMovementSlice(modelMovements), nil
}

// SaveMovement persists a drawer movement.
func (r *PgxCashMovementRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	_, err := r.Pool.Exec(ctx, insertMovementQuery, insertMovementArgs(movement)...)
	if err != nil {
		return fmt.Errorf("failed to save cash movement %s: %w", movement.MovementID, err)
	}
	return nil
}

// SaveMovementInTx persists a drawer movement inside an existing transaction.
func (r *PgxCashMovementRepository) SaveMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error {
	_, err := tx.Exec(ctx, insertMovementQuery, insertMovementArgs(movement)...)
	if err != nil {
		return fmt.Errorf("failed to save cash movement %s: %w", movement.MovementID, err)
	}
	return nil
}

const insertMovementQuery = `
	INSERT INTO cash_movements (` + cashMovementColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

func insertMovementArgs(movement domain.CashMovement) []any {
	modelMovement := mapping.ToModelCashMovement(movement)
	return []any{
		modelMovement.MovementID,
		modelMovement.Date,
		modelMovement.Direction,
		modelMovement.Amount,
		modelMovement.Reason,
		modelMovement.SaleID,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	}
}
