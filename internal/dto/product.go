package dto

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse defines the data returned for a catalog product.
type ProductResponse struct {
	ProductID    string           `json:"productID"`
	Barcode      string           `json:"barcode"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Condition    string           `json:"condition"`
	Price        decimal.Decimal  `json:"price"`
	PromoPrice   *decimal.Decimal `json:"promoPrice,omitempty"`
	DisplayPrice decimal.Decimal  `json:"displayPrice"`
	Stock        int              `json:"stock"`
	OnDeposit    bool             `json:"onDeposit"`
	Sold         bool             `json:"sold"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Category:     p.Category,
		Condition:    string(p.Condition),
		Price:        p.Price,
		PromoPrice:   p.PromoPrice,
		DisplayPrice: p.DisplayPrice(),
		Stock:        p.Stock,
		OnDeposit:    p.OnDeposit,
		Sold:         p.Sold,
	}
}
