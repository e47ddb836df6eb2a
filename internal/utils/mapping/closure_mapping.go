package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelClosure converts a domain Closure to a model Closure
func ToModelClosure(d domain.Closure) models.Closure {
	return models.Closure{
		ClosureID:          d.ClosureID,
		Category:           string(d.Category),
		Date:               d.Date,
		TotalHT:            d.TotalHT,
		TotalTVA:           d.TotalTVA,
		TotalTTC:           d.TotalTTC,
		HT0:                d.HT0,
		HT20:               d.HT20,
		TTC0:               d.TTC0,
		TTC20:              d.TTC20,
		TVA20:              d.TVA20,
		TotalCard:          d.TotalCard,
		TotalAltCard:       d.TotalAltCard,
		TotalCash:          d.TotalCash,
		TotalCheck:         d.TotalCheck,
		TotalCollected:     d.TotalCollected,
		TotalDiscounts:     d.TotalDiscounts,
		TotalCancellations: d.TotalCancellations,
		TotalDeposits:      d.TotalDeposits,
		SaleCount:          d.SaleCount,
		ClientCount:        d.ClientCount,
		ItemCount:          d.ItemCount,
		AverageTicket:      d.AverageTicket,
		DrawerOpening:      d.DrawerOpening,
		DrawerTheoretical:  d.DrawerTheoretical,
		DrawerCounted:      d.DrawerCounted,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClosure converts a model Closure to a domain Closure
func ToDomainClosure(m models.Closure) domain.Closure {
	return domain.Closure{
		ClosureID:          m.ClosureID,
		Category:           domain.ClosureCategory(m.Category),
		Date:               m.Date,
		TotalHT:            m.TotalHT,
		TotalTVA:           m.TotalTVA,
		TotalTTC:           m.TotalTTC,
		HT0:                m.HT0,
		HT20:               m.HT20,
		TTC0:               m.TTC0,
		TTC20:              m.TTC20,
		TVA20:              m.TVA20,
		TotalCard:          m.TotalCard,
		TotalAltCard:       m.TotalAltCard,
		TotalCash:          m.TotalCash,
		TotalCheck:         m.TotalCheck,
		TotalCollected:     m.TotalCollected,
		TotalDiscounts:     m.TotalDiscounts,
		TotalCancellations: m.TotalCancellations,
		TotalDeposits:      m.TotalDeposits,
		SaleCount:          m.SaleCount,
		ClientCount:        m.ClientCount,
		ItemCount:          m.ItemCount,
		AverageTicket:      m.AverageTicket,
		DrawerOpening:      m.DrawerOpening,
		DrawerTheoretical:  m.DrawerTheoretical,
		DrawerCounted:      m.DrawerCounted,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClosureSlice converts a slice of model Closures to domain Closures
func ToDomainClosureSlice(ms []models.Closure) []domain.Closure {
	ds := make([]domain.Closure, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClosure(m)
	}
	return ds
}
