package services

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// SaleReaderSvc defines read operations for sale data
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale and its lines by ID.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales for a period together with running totals.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// GetSaleTicket renders the customer receipt for a sale.
	GetSaleTicket(ctx context.Context, saleID string) (string, error)

	// PrintSaleTicket renders the receipt and dispatches it to the shop
	// printer.
	PrintSaleTicket(ctx context.Context, saleID string) error
}

// SaleWriterSvc defines write operations for sale data
type SaleWriterSvc interface {
	// CreateSale registers a completed sale: reconciles the cart, redeems
	// the optional voucher, decrements stock and records the payment split.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorOperatorID string) (*domain.Sale, error)

	// CancelSale voids a sale, restocks its products and refunds the
	// customer by the requested method.
	CancelSale(ctx context.Context, saleID string, req dto.CancelSaleRequest, operatorID string) (*domain.Sale, error)

	// RefundSaleLine refunds a single line of a sale without voiding it.
	RefundSaleLine(ctx context.Context, saleID string, saleLineID string, req dto.RefundLineRequest, operatorID string) error

	// DeleteSale removes an erroneous sale outright, restocking its
	// products. Administrative flow, no refund.
	DeleteSale(ctx context.Context, saleID string, operatorID string) error
}

// SaleCalculatorSvc defines pure calculation operations on carts
type SaleCalculatorSvc interface {
	// PreviewSale reconciles a cart without persisting anything: totals,
	// VAT split, voucher application and change due.
	PreviewSale(ctx context.Context, req dto.PreviewSaleRequest) (*dto.SalePreviewResponse, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
	SaleCalculatorSvc
}
