package repositories

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByBarcode retrieves a product by its barcode. Sold-out
	// products are returned too; the till decides what to do with them.
	FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// DecrementStockInTx reduces stock by the given quantities inside an
	// existing transaction, flooring at zero, and flags products with no
	// remaining stock as sold.
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error

	// RestockInTx adds the given quantities back inside an existing
	// transaction and clears the sold flag.
	RestockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error

	// ReviveZeroStock sets a sold-out product back to one in stock and clears
	// the sold flag. No-op when stock is not zero.
	ReviveZeroStock(ctx context.Context, productID string, updatedAt time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
