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

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productColumns = `product_id, barcode, name, category, condition, price, promo_price, purchase_price, deposit_price, stock, on_deposit, consignor_id, sold, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Barcode,
		&p.Name,
		&p.Category,
		&p.Condition,
		&p.Price,
		&p.PromoPrice,
		&p.PurchasePrice,
		&p.DepositPrice,
		&p.Stock,
		&p.OnDeposit,
		&p.ConsignorID,
		&p.Sold,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// FindProductByID retrieves a product by its unique identifier.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1;
	`
	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by id %s: %w", productID, err)
	}

	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}

// FindProductByBarcode retrieves a product by its barcode, sold or not.
func (r *PgxProductRepository) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE barcode = $1;
	`
	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by barcode %s: %w", barcode, err)
	}

	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}

// ReviveZeroStock sets a sold-out product back to one in stock and clears the
// sold flag.
func (r *PgxProductRepository) ReviveZeroStock(ctx context.Context, productID string, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET stock = 1,
			sold = FALSE,
			last_updated_at = $2
		WHERE product_id = $1 AND stock = 0;
	`
	if _, err := r.Pool.Exec(ctx, query, productID, updatedAt); err != nil {
		return fmt.Errorf("failed to revive product %s: %w", productID, err)
	}
	return nil
}

// DecrementStockInTx reduces stock inside an existing transaction, flooring at
// zero, and flags exhausted products as sold.
func (r *PgxProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0),
			sold = (stock - $2 <= 0),
			last_updated_at = $3,
			last_updated_by = $4
		WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for productID, quantity := range quantities {
		batch.Queue(query, productID, quantity, updatedAt, updatedBy)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range quantities {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
	}
	return nil
}

// RestockInTx adds quantities back inside an existing transaction and clears
// the sold flag.
func (r *PgxProductRepository) RestockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET stock = stock + $2,
			sold = FALSE,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for productID, quantity := range quantities {
		batch.Queue(query, productID, quantity, updatedAt, updatedBy)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range quantities {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to restock: %w", err)
		}
	}
	return nil
}
