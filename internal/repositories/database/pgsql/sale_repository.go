package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/caisse-pos/caisse_backend/internal/models"
	"github.com/caisse-pos/caisse_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
	productRepo      portsrepo.ProductRepositoryFacade
	voucherRepo      portsrepo.VoucherRepositoryFacade
	cashMovementRepo portsrepo.CashMovementRepositoryFacade
	auditRepo        portsrepo.AuditRepositoryFacade
}

// newPgxSaleRepository creates a new repository for sale data. Stock, voucher,
// movement and audit writes share the sale's transaction through the injected
// repositories.
func newPgxSaleRepository(
	pool *pgxpool.Pool,
	productRepo portsrepo.ProductRepositoryFacade,
	voucherRepo portsrepo.VoucherRepositoryFacade,
	cashMovementRepo portsrepo.CashMovementRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		productRepo:      productRepo,
		voucherRepo:      voucherRepo,
		cashMovementRepo: cashMovementRepo,
		auditRepo:        auditRepo,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, sale_date, client_id, cancelled, cancellation_reason, gross_total, net_total, flat_discount, voucher_applied, card, cash, check_amount, alt_card, created_at, created_by, last_updated_at, last_updated_by`

const saleLineColumns = `sale_line_id, sale_id, product_id, quantity, unit_price, discount_pct, product_name, product_condition`

func scanSale(row pgx.Row) (models.Sale, error) {
	var s models.Sale
	err := row.Scan(
		&s.SaleID,
		&s.SaleDate,
		&s.ClientID,
		&s.Cancelled,
		&s.CancellationReason,
		&s.GrossTotal,
		&s.NetTotal,
		&s.FlatDiscount,
		&s.VoucherApplied,
		&s.Card,
		&s.Cash,
		&s.Check,
		&s.AltCard,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func scanSaleLine(row pgx.Row) (models.SaleLine, error) {
	var l models.SaleLine
	err := row.Scan(
		&l.SaleLineID,
		&l.SaleID,
		&l.ProductID,
		&l.Quantity,
		&l.UnitPrice,
		&l.DiscountPct,
		&l.ProductName,
		&l.ProductCondition,
	)
	return l, err
}

// FindSaleByID retrieves a sale and its lines.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_id = $1;
	`
	modelSale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by id %s: %w", saleID, err)
	}

	lines, err := r.findLines(ctx, saleID)
	if err != nil {
		return nil, err
	}

	domainSale := mapping.ToDomainSale(modelSale)
	domainSale.Lines = lines
	return &domainSale, nil
}

func (r *PgxSaleRepository) findLines(ctx context.Context, saleID string) ([]domain.SaleLine, error) {
	query := `
		SELECT ` + saleLineColumns + `
		FROM sale_lines
		WHERE sale_id = $1
		ORDER BY sale_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of sale %s: %w", saleID, err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SaleLine, error) {
		return scanSaleLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of sale %s: %w", saleID, err)
	}
	return mapping.ToDomainSaleLineSlice(modelLines), nil
}

// ListSalesBetween retrieves sales dated in [from, to) with lines loaded,
// cancelled ones included, ordered by sale date ascending.
func (r *PgxSaleRepository) ListSalesBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}
	return r.attachLines(ctx, modelSales)
}

// ListRecentSales retrieves the most recent sales with lines loaded, newest
// first.
func (r *PgxSaleRepository) ListRecentSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY sale_date DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales: %w", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent sales: %w", err)
	}
	return r.attachLines(ctx, modelSales)
}

// attachLines loads all lines of the given sales in one query and distributes
// them.
func (r *PgxSaleRepository) attachLines(ctx context.Context, modelSales []models.Sale) ([]domain.Sale, error) {
	sales := make([]domain.Sale, len(modelSales))
	if len(modelSales) == 0 {
		return sales, nil
	}

	saleIDs := make([]string, len(modelSales))
	for i, m := range modelSales {
		sales[i] = mapping.ToDomainSale(m)
		saleIDs[i] = m.SaleID
	}

	query := `
		SELECT ` + saleLineColumns + `
		FROM sale_lines
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, sale_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SaleLine, error) {
		return scanSaleLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale lines: %w", err)
	}

	bySale := make(map[string][]domain.SaleLine, len(sales))
	for _, ml := range modelLines {
		bySale[ml.SaleID] = append(bySale[ml.SaleID], mapping.ToDomainSaleLine(ml))
	}
	for i := range sales {
		sales[i].Lines = bySale[sales[i].SaleID]
	}
	return sales, nil
}

// SaveSale persists the sale, its lines, the stock decrements and the voucher
// operations within a single DB transaction, then appends the audit event.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, soldQuantities map[string]int, redeemVoucher *domain.Voucher, issueVoucher *domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelSale := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.SaleDate,
		modelSale.ClientID,
		modelSale.Cancelled,
		modelSale.CancellationReason,
		modelSale.GrossTotal,
		modelSale.NetTotal,
		modelSale.FlatDiscount,
		modelSale.VoucherApplied,
		modelSale.Card,
		modelSale.Cash,
		modelSale.Check,
		modelSale.AltCard,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+modelSale.SaleID, err)
	}

	lineQuery := `
		INSERT INTO sale_lines (` + saleLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, line := range sale.Lines {
		modelLine := mapping.ToModelSaleLine(line)
		batch.Queue(lineQuery,
			modelLine.SaleLineID,
			modelLine.SaleID,
			modelLine.ProductID,
			modelLine.Quantity,
			modelLine.UnitPrice,
			modelLine.DiscountPct,
			modelLine.ProductName,
			modelLine.ProductCondition,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range sale.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert lines of sale "+modelSale.SaleID, err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines of sale "+modelSale.SaleID, err)
	}

	if err := r.productRepo.DecrementStockInTx(ctx, tx, soldQuantities, sale.CreatedBy, sale.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to decrement stock", err)
	}

	if redeemVoucher != nil {
		if err := r.voucherRepo.MarkRedeemedInTx(ctx, tx, *redeemVoucher); err != nil {
			return apperrors.NewAppError(500, "failed to redeem voucher "+redeemVoucher.VoucherID, err)
		}
	}
	if issueVoucher != nil {
		if err := r.voucherRepo.SaveVoucherInTx(ctx, tx, *issueVoucher); err != nil {
			return apperrors.NewAppError(500, "failed to issue voucher "+issueVoucher.VoucherID, err)
		}
	}

	if err := r.appendSaleEvent(ctx, tx, domain.AuditSaleCreated, sale); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// CancelSale flags the sale cancelled, restocks and records the refund
// movements within a single DB transaction, then appends the audit event.
func (r *PgxSaleRepository) CancelSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int, refunds []domain.CashMovement, issueVoucher *domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE sales
		SET cancelled = TRUE,
			cancellation_reason = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE sale_id = $1 AND cancelled = FALSE;
	`
	tag, err := tx.Exec(ctx, query,
		sale.SaleID,
		sale.CancellationReason,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to cancel sale "+sale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	if err := r.applyRefund(ctx, tx, sale, restockQuantities, refunds, issueVoucher); err != nil {
		return err
	}

	if err := r.appendSaleEvent(ctx, tx, domain.AuditSaleCancelled, sale); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// RefundLine removes one line, persists the adjusted sale totals, restocks and
// records the refund within a single DB transaction, then appends the audit
// event.
func (r *PgxSaleRepository) RefundLine(ctx context.Context, sale domain.Sale, saleLineID string, restockQuantities map[string]int, refund *domain.CashMovement, issueVoucher *domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteQuery := `DELETE FROM sale_lines WHERE sale_line_id = $1 AND sale_id = $2;`
	tag, err := tx.Exec(ctx, deleteQuery, saleLineID, sale.SaleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove sale line "+saleLineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	updateQuery := `
		UPDATE sales
		SET gross_total = $2,
			net_total = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE sale_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		sale.SaleID,
		sale.GrossTotal,
		sale.NetTotal,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update totals of sale "+sale.SaleID, err)
	}

	var refunds []domain.CashMovement
	if refund != nil {
		refunds = append(refunds, *refund)
	}
	if err := r.applyRefund(ctx, tx, sale, restockQuantities, refunds, issueVoucher); err != nil {
		return err
	}

	if err := r.appendSaleEvent(ctx, tx, domain.AuditLineRefunded, sale); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteSale removes the sale and its lines and restocks within a single DB
// transaction. The audit event is appended before the rows go, so the log
// keeps the final snapshot of the deleted sale.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.appendSaleEvent(ctx, tx, domain.AuditSaleDeleted, sale); err != nil {
		return err
	}

	if len(restockQuantities) > 0 {
		if err := r.productRepo.RestockInTx(ctx, tx, restockQuantities, sale.LastUpdatedBy, sale.LastUpdatedAt); err != nil {
			return apperrors.NewAppError(500, "failed to restock", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_lines WHERE sale_id = $1;`, sale.SaleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of sale "+sale.SaleID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, sale.SaleID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete sale "+sale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// applyRefund restocks and records the refund movements and the optional
// voucher inside the caller's transaction.
func (r *PgxSaleRepository) applyRefund(ctx context.Context, tx pgx.Tx, sale domain.Sale, restockQuantities map[string]int, refunds []domain.CashMovement, issueVoucher *domain.Voucher) error {
	if err := r.productRepo.RestockInTx(ctx, tx, restockQuantities, sale.LastUpdatedBy, sale.LastUpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to restock", err)
	}
	for _, refund := range refunds {
		if err := r.cashMovementRepo.SaveMovementInTx(ctx, tx, refund); err != nil {
			return apperrors.NewAppError(500, "failed to record refund movement", err)
		}
	}
	if issueVoucher != nil {
		if err := r.voucherRepo.SaveVoucherInTx(ctx, tx, *issueVoucher); err != nil {
			return apperrors.NewAppError(500, "failed to issue voucher "+issueVoucher.VoucherID, err)
		}
	}
	return nil
}

// appendSaleEvent snapshots the sale into the hash-chained audit log.
func (r *PgxSaleRepository) appendSaleEvent(ctx context.Context, tx pgx.Tx, action string, sale domain.Sale) error {
	payload, err := json.Marshal(sale)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode audit payload for sale "+sale.SaleID, err)
	}
	event := domain.AuditEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		EntityID:  sale.SaleID,
		Payload:   string(payload),
		CreatedAt: sale.LastUpdatedAt,
		CreatedBy: sale.LastUpdatedBy,
	}
	if err := r.auditRepo.AppendEventInTx(ctx, tx, event); err != nil {
		return apperrors.NewAppError(500, "failed to append audit event for sale "+sale.SaleID, err)
	}
	return nil
}
