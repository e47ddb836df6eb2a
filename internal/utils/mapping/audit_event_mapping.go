package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelAuditEvent converts a domain AuditEvent to a model AuditEvent
func ToModelAuditEvent(d domain.AuditEvent) models.AuditEvent {
	return models.AuditEvent{
		EventID:   d.EventID,
		Sequence:  d.Sequence,
		Action:    d.Action,
		EntityID:  d.EntityID,
		Payload:   d.Payload,
		PrevHash:  d.PrevHash,
		Hash:      d.Hash,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainAuditEvent converts a model AuditEvent to a domain AuditEvent
func ToDomainAuditEvent(m models.AuditEvent) domain.AuditEvent {
	return domain.AuditEvent{
		EventID:   m.EventID,
		Sequence:  m.Sequence,
		Action:    m.Action,
		EntityID:  m.EntityID,
		Payload:   m.Payload,
		PrevHash:  m.PrevHash,
		Hash:      m.Hash,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainAuditEventSlice converts a slice of model AuditEvents to domain AuditEvents
func ToDomainAuditEventSlice(ms []models.AuditEvent) []domain.AuditEvent {
	ds := make([]domain.AuditEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEvent(m)
	}
	return ds
}
