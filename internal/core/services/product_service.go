package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
	"github.com/caisse-pos/caisse_backend/internal/utils/scanner"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new catalog read service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// GetProductByID retrieves a product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product " + productID + " not found")
		}
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// LookupBarcode retrieves a product by scanned barcode. The scan arrives
// through a keyboard-wedge scanner on an AZERTY layout, so digit keys come
// in as symbols and are corrected before the lookup. Scanning a sold-out
// product puts it back at one in stock: the shop routinely re-sells returned
// one-off items, and the physical item in the operator's hand wins over the
// ledger.
func (s *productService) LookupBarcode(ctx context.Context, rawBarcode string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	barcode := scanner.CorrectInput(rawBarcode)
	if barcode != rawBarcode {
		logger.Debug("Corrected scanner input", slog.String("raw", rawBarcode), slog.String("barcode", barcode))
	}

	product, err := s.productRepo.FindProductByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no product with barcode " + barcode)
		}
		return nil, fmt.Errorf("failed to look up barcode %s: %w", barcode, err)
	}

	if product.Stock == 0 {
		if err := s.productRepo.ReviveZeroStock(ctx, product.ProductID, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to revive product %s: %w", product.ProductID, err)
		}
		product.Stock = 1
		product.Sold = false
		logger.Info("Revived sold-out product on scan", slog.String("product_id", product.ProductID))
	}
	return product, nil
}
