package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// AuditEventResponse defines the data returned for one audit log entry.
type AuditEventResponse struct {
	EventID   string    `json:"eventID"`
	Sequence  int64     `json:"sequence"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entityID"`
	PrevHash  string    `json:"prevHash"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// AuditChainStatusResponse reports the integrity of the audit log.
type AuditChainStatusResponse struct {
	Intact      bool   `json:"intact"`
	EventCount  int    `json:"eventCount"`
	BrokenAtSeq *int64 `json:"brokenAtSeq,omitempty"`
}

// ToAuditEventResponse converts a domain.AuditEvent to its DTO.
func ToAuditEventResponse(e *domain.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		EventID:   e.EventID,
		Sequence:  e.Sequence,
		Action:    e.Action,
		EntityID:  e.EntityID,
		PrevHash:  e.PrevHash,
		Hash:      e.Hash,
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}

// ToAuditEventResponses converts a slice of domain.AuditEvent to DTOs.
func ToAuditEventResponses(events []domain.AuditEvent) []AuditEventResponse {
	responses := make([]AuditEventResponse, len(events))
	for i, e := range events {
		responses[i] = ToAuditEventResponse(&e)
	}
	return responses
}
