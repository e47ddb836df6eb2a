package services

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// ProductReaderSvc defines read operations for catalog data
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// LookupBarcode retrieves a product by scanned barcode, correcting
	// AZERTY keyboard-wedge input first.
	LookupBarcode(ctx context.Context, rawBarcode string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
}
