package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/caisse-pos/caisse_backend/internal/models"
	"github.com/caisse-pos/caisse_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClosureRepository struct {
	BaseRepository
}

// newPgxClosureRepository creates a new repository for closure records.
func newPgxClosureRepository(pool *pgxpool.Pool) portsrepo.ClosureRepositoryWithTx {
	return &PgxClosureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClosureRepositoryWithTx = (*PgxClosureRepository)(nil)

const closureColumns = `closure_id, category, closure_date, total_ht, total_tva, total_ttc, ht_0, ht_20, ttc_0, ttc_20, tva_20, total_card, total_alt_card, total_cash, total_check, total_collected, total_discounts, total_cancellations, total_deposits, sale_count, client_count, item_count, average_ticket, drawer_opening, drawer_theoretical, drawer_counted, created_at, created_by, last_updated_at, last_updated_by`

func scanClosure(row pgx.Row) (models.Closure, error) {
	var c models.Closure
	err := row.Scan(
		&c.ClosureID,
		&c.Category,
		&c.Date,
		&c.TotalHT,
		&c.TotalTVA,
		&c.TotalTTC,
		&c.HT0,
		&c.HT20,
		&c.TTC0,
		&c.TTC20,
		&c.TVA20,
		&c.TotalCard,
		&c.TotalAltCard,
		&c.TotalCash,
		&c.TotalCheck,
		&c.TotalCollected,
		&c.TotalDiscounts,
		&c.TotalCancellations,
		&c.TotalDeposits,
		&c.SaleCount,
		&c.ClientCount,
		&c.ItemCount,
		&c.AverageTicket,
		&c.DrawerOpening,
		&c.DrawerTheoretical,
		&c.DrawerCounted,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// FindClosureByPeriod retrieves the closure for a category and period date.
func (r *PgxClosureRepository) FindClosureByPeriod(ctx context.Context, category domain.ClosureCategory, date time.Time) (*domain.Closure, error) {
	query := `
		SELECT ` + closureColumns + `
		FROM closures
		WHERE category = $1 AND closure_date = $2;
	`
	modelClosure, err := scanClosure(r.Pool.QueryRow(ctx, query, string(category), date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s closure for %s: %w", category, date.Format("2006-01-02"), err)
	}

	domainClosure := mapping.ToDomainClosure(modelClosure)
	return &domainClosure, nil
}

// FindClosureByID retrieves a closure by its unique identifier.
func (r *PgxClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.Closure, error) {
	query := `
		SELECT ` + closureColumns + `
		FROM closures
		WHERE closure_id = $1;
	`
	modelClosure, err := scanClosure(r.Pool.QueryRow(ctx, query, closureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closure by id %s: %w", closureID, err)
	}

	domainClosure := mapping.ToDomainClosure(modelClosure)
	return &domainClosure, nil
}

// ListClosures retrieves closures of a category, most recent first.
func (r *PgxClosureRepository) ListClosures(ctx context.Context, category domain.ClosureCategory, limit int) ([]domain.Closure, error) {
	query := `
		SELECT ` + closureColumns + `
		FROM closures
		WHERE category = $1
		ORDER BY closure_date DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query closures: %w", err)
	}
	defer rows.Close()

	modelClosures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Closure, error) {
		return scanClosure(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan closures: %w", err)
	}

	return mapping.ToDomainClosureSlice(modelClosures), nil
}

// CountClosuresBetween counts closures of a category dated in [from, to).
func (r *PgxClosureRepository) CountClosuresBetween(ctx context.Context, category domain.ClosureCategory, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM closures
		WHERE category = $1 AND closure_date >= $2 AND closure_date < $3;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, string(category), from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count closures: %w", err)
	}
	return count, nil
}

// SaveClosure persists a closure. The UNIQUE(category, closure_date)
// constraint turns a replay into apperrors.ErrDuplicate.
func (r *PgxClosureRepository) SaveClosure(ctx context.Context, closure domain.Closure) error {
	modelClosure := mapping.ToModelClosure(closure)
	query := `
		INSERT INTO closures (` + closureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClosure.ClosureID,
		modelClosure.Category,
		modelClosure.Date,
		modelClosure.TotalHT,
		modelClosure.TotalTVA,
		modelClosure.TotalTTC,
		modelClosure.HT0,
		modelClosure.HT20,
		modelClosure.TTC0,
		modelClosure.TTC20,
		modelClosure.TVA20,
		modelClosure.TotalCard,
		modelClosure.TotalAltCard,
		modelClosure.TotalCash,
		modelClosure.TotalCheck,
		modelClosure.TotalCollected,
		modelClosure.TotalDiscounts,
		modelClosure.TotalCancellations,
		modelClosure.TotalDeposits,
		modelClosure.SaleCount,
		modelClosure.ClientCount,
		modelClosure.ItemCount,
		modelClosure.AverageTicket,
		modelClosure.DrawerOpening,
		modelClosure.DrawerTheoretical,
		modelClosure.DrawerCounted,
		modelClosure.CreatedAt,
		modelClosure.CreatedBy,
		modelClosure.LastUpdatedAt,
		modelClosure.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save closure %s: %w", closure.ClosureID, err)
	}
	return nil
}
