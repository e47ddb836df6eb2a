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

type PgxDepositRepository struct {
	BaseRepository
}

// newPgxDepositRepository creates a new repository for consignment payouts.
func newPgxDepositRepository(pool *pgxpool.Pool) portsrepo.DepositRepositoryWithTx {
	return &PgxDepositRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DepositRepositoryWithTx = (*PgxDepositRepository)(nil)

const depositColumns = `deposit_id, client_id, amount, payment_method, receipt_number, paid_at`

// ListDepositPaymentsBetween retrieves payouts dated in [from, to), oldest
// first, with their linked sale IDs.
func (r *PgxDepositRepository) ListDepositPaymentsBetween(ctx context.Context, from, to time.Time) ([]domain.DepositPayment, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposit_payments
		WHERE paid_at >= $1 AND paid_at < $2
		ORDER BY paid_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DepositPayment, error) {
		var p models.DepositPayment
		err := row.Scan(
			&p.DepositID,
			&p.ClientID,
			&p.Amount,
			&p.PaymentMethod,
			&p.ReceiptNumber,
			&p.PaidAt,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deposit payments: %w", err)
	}

	payments := mapping.ToDomainDepositPaymentSlice(modelPayments)
	if len(payments) == 0 {
		return payments, nil
	}

	depositIDs := make([]string, len(payments))
	for i, p := range payments {
		depositIDs[i] = p.DepositID
	}
	linkQuery := `
		SELECT deposit_id, sale_id
		FROM deposit_payment_sales
		WHERE deposit_id = ANY($1)
		ORDER BY deposit_id, sale_id;
	`
	linkRows, err := r.Pool.Query(ctx, linkQuery, depositIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit sale links: %w", err)
	}
	defer linkRows.Close()

	byDeposit := make(map[string][]string)
	for linkRows.Next() {
		var depositID, saleID string
		if err := linkRows.Scan(&depositID, &saleID); err != nil {
			return nil, fmt.Errorf("failed to scan deposit sale link: %w", err)
		}
		byDeposit[depositID] = append(byDeposit[depositID], saleID)
	}
	if err := linkRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deposit sale links: %w", err)
	}
	for i := range payments {
		payments[i].SaleIDs = byDeposit[payments[i].DepositID]
	}
	return payments, nil
}

// ListDepositPaymentLines aggregates the consigned products covered by a
// payout, one row per product of the payout's consignor across the linked
// sales.
func (r *PgxDepositRepository) ListDepositPaymentLines(ctx context.Context, depositID string) ([]domain.DepositPaymentLine, error) {
	query := `
		SELECT sl.product_name,
			sl.product_condition,
			SUM(sl.quantity)::int,
			SUM(sl.quantity * sl.unit_price * (1 - sl.discount_pct / 100))
		FROM deposit_payment_sales dps
		JOIN deposit_payments dp ON dp.deposit_id = dps.deposit_id
		JOIN sale_lines sl ON sl.sale_id = dps.sale_id
		JOIN products p ON p.product_id = sl.product_id
		WHERE dps.deposit_id = $1 AND p.consignor_id = dp.client_id
		GROUP BY sl.product_name, sl.product_condition
		ORDER BY sl.product_name;
	`
	rows, err := r.Pool.Query(ctx, query, depositID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of deposit %s: %w", depositID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepositPaymentLine, error) {
		var l domain.DepositPaymentLine
		var condition string
		err := row.Scan(&l.ProductName, &condition, &l.Quantity, &l.Total)
		l.Condition = domain.ProductCondition(condition)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of deposit %s: %w", depositID, err)
	}
	return lines, nil
}

// SaveDepositPayment persists a payout and its sale links in one transaction.
func (r *PgxDepositRepository) SaveDepositPayment(ctx context.Context, payment domain.DepositPayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelPayment := mapping.ToModelDepositPayment(payment)
	query := `
		INSERT INTO deposit_payments (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		modelPayment.DepositID,
		modelPayment.ClientID,
		modelPayment.Amount,
		modelPayment.PaymentMethod,
		modelPayment.ReceiptNumber,
		modelPayment.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit payment %s: %w", payment.DepositID, err)
	}

	if len(payment.SaleIDs) > 0 {
		linkQuery := `INSERT INTO deposit_payment_sales (deposit_id, sale_id) VALUES ($1, $2);`
		batch := &pgx.Batch{}
		for _, saleID := range payment.SaleIDs {
			batch.Queue(linkQuery, payment.DepositID, saleID)
		}
		results := tx.SendBatch(ctx, batch)
		for range payment.SaleIDs {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to link sales of deposit %s: %w", payment.DepositID, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to link sales of deposit %s: %w", payment.DepositID, err)
		}
	}

	return r.Commit(ctx, tx)
}
