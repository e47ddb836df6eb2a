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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for store credit.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, client_id, issuing_sale_id, redeeming_sale_id, amount, redeemed, remarks, created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var v models.Voucher
	err := row.Scan(
		&v.VoucherID,
		&v.ClientID,
		&v.IssuingSaleID,
		&v.RedeemingSaleID,
		&v.Amount,
		&v.Redeemed,
		&v.Remarks,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	return v, err
}

// FindVoucherByID retrieves a voucher by its unique identifier.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE voucher_id = $1;
	`
	modelVoucher, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher by id %s: %w", voucherID, err)
	}

	domainVoucher := mapping.ToDomainVoucher(modelVoucher)
	return &domainVoucher, nil
}

// ListVouchersByClient retrieves all vouchers held by a client, newest first.
func (r *PgxVoucherRepository) ListVouchersByClient(ctx context.Context, clientID string) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE client_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers for client %s: %w", clientID, err)
	}
	defer rows.Close()

	modelVouchers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Voucher, error) {
		return scanVoucher(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}

	return mapping.ToDomainVoucherSlice(modelVouchers), nil
}

// ListRedeemableVouchers retrieves all unredeemed vouchers created after the
// cutoff, newest first.
func (r *PgxVoucherRepository) ListRedeemableVouchers(ctx context.Context, cutoff time.Time) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE redeemed = FALSE AND created_at > $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query redeemable vouchers: %w", err)
	}
	defer rows.Close()

	modelVouchers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Voucher, error) {
		return scanVoucher(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}

	return mapping.ToDomainVoucherSlice(modelVouchers), nil
}

// SaveVoucher persists a new voucher.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	_, err := r.Pool.Exec(ctx, insertVoucherQuery, insertVoucherArgs(voucher)...)
	if err != nil {
		return fmt.Errorf("failed to save voucher %s: %w", voucher.VoucherID, err)
	}
	return nil
}

// SaveVoucherInTx persists a new voucher inside an existing transaction.
func (r *PgxVoucherRepository) SaveVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	_, err := tx.Exec(ctx, insertVoucherQuery, insertVoucherArgs(voucher)...)
	if err != nil {
		return fmt.Errorf("failed to save voucher %s: %w", voucher.VoucherID, err)
	}
	return nil
}

// MarkRedeemedInTx persists the redeemed state inside an existing transaction.
func (r *PgxVoucherRepository) MarkRedeemedInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	query := `
		UPDATE vouchers
		SET redeemed = $2,
			redeeming_sale_id = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE voucher_id = $1;
	`
	modelVoucher := mapping.ToModelVoucher(voucher)
	tag, err := tx.Exec(ctx, query,
		modelVoucher.VoucherID,
		modelVoucher.Redeemed,
		modelVoucher.RedeemingSaleID,
		modelVoucher.LastUpdatedAt,
		modelVoucher.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to mark voucher %s redeemed: %w", voucher.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const insertVoucherQuery = `
	INSERT INTO vouchers (` + voucherColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func insertVoucherArgs(voucher domain.Voucher) []any {
	modelVoucher := mapping.ToModelVoucher(voucher)
	return []any{
		modelVoucher.VoucherID,
		modelVoucher.ClientID,
		modelVoucher.IssuingSaleID,
		modelVoucher.RedeemingSaleID,
		modelVoucher.Amount,
		modelVoucher.Redeemed,
		modelVoucher.Remarks,
		modelVoucher.CreatedAt,
		modelVoucher.CreatedBy,
		modelVoucher.LastUpdatedAt,
		modelVoucher.LastUpdatedBy,
	}
}
