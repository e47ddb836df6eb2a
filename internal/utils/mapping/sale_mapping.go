package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:             d.SaleID,
		SaleDate:           d.SaleDate,
		ClientID:           d.ClientID,
		Cancelled:          d.Cancelled,
		CancellationReason: d.CancellationReason,
		GrossTotal:         d.GrossTotal,
		NetTotal:           d.NetTotal,
		FlatDiscount:       d.FlatDiscount,
		VoucherApplied:     d.VoucherApplied,
		Card:               d.Card,
		Cash:               d.Cash,
		Check:              d.Check,
		AltCard:            d.AltCard,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:             m.SaleID,
		SaleDate:           m.SaleDate,
		ClientID:           m.ClientID,
		Cancelled:          m.Cancelled,
		CancellationReason: m.CancellationReason,
		GrossTotal:         m.GrossTotal,
		NetTotal:           m.NetTotal,
		FlatDiscount:       m.FlatDiscount,
		VoucherApplied:     m.VoucherApplied,
		Card:               m.Card,
		Cash:               m.Cash,
		Check:              m.Check,
		AltCard:            m.AltCard,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleLine converts a domain SaleLine to a model SaleLine
func ToModelSaleLine(d domain.SaleLine) models.SaleLine {
	return models.SaleLine{
		SaleLineID:       d.SaleLineID,
		SaleID:           d.SaleID,
		ProductID:        d.ProductID,
		Quantity:         d.Quantity,
		UnitPrice:        d.UnitPrice,
		DiscountPct:      d.DiscountPct,
		ProductName:      d.ProductName,
		ProductCondition: string(d.ProductCondition),
	}
}

// ToDomainSaleLine converts a model SaleLine to a domain SaleLine
func ToDomainSaleLine(m models.SaleLine) domain.SaleLine {
	return domain.SaleLine{
		SaleLineID:       m.SaleLineID,
		SaleID:           m.SaleID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		DiscountPct:      m.DiscountPct,
		ProductName:      m.ProductName,
		ProductCondition: domain.ProductCondition(m.ProductCondition),
	}
}

// ToDomainSaleLineSlice converts a slice of model SaleLines to domain SaleLines
func ToDomainSaleLineSlice(ms []models.SaleLine) []domain.SaleLine {
	ds := make([]domain.SaleLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleLine(m)
	}
	return ds
}
