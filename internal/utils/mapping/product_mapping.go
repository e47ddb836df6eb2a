package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Barcode:       d.Barcode,
		Name:          d.Name,
		Category:      d.Category,
		Condition:     string(d.Condition),
		Price:         d.Price,
		PromoPrice:    d.PromoPrice,
		PurchasePrice: d.PurchasePrice,
		DepositPrice:  d.DepositPrice,
		Stock:         d.Stock,
		OnDeposit:     d.OnDeposit,
		ConsignorID:   d.ConsignorID,
		Sold:          d.Sold,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Barcode:       m.Barcode,
		Name:          m.Name,
		Category:      m.Category,
		Condition:     domain.ProductCondition(m.Condition),
		Price:         m.Price,
		PromoPrice:    m.PromoPrice,
		PurchasePrice: m.PurchasePrice,
		DepositPrice:  m.DepositPrice,
		Stock:         m.Stock,
		OnDeposit:     m.OnDeposit,
		ConsignorID:   m.ConsignorID,
		Sold:          m.Sold,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
