package domain

import "time"

// Audit actions recorded in the tamper-evident event log.
const (
	AuditSaleCreated   = "sale.created"
	AuditSaleCancelled = "sale.cancelled"
	AuditLineRefunded  = "sale.line_refunded"
	AuditSaleDeleted   = "sale.deleted"
)

// AuditEvent is one entry of the append-only audit log. Events form a hash
// chain: Hash covers the event payload and the Hash of the previous event, so
// any retroactive edit of the log breaks every later entry.
type AuditEvent struct {
	EventID   string    `json:"eventID"`
	Sequence  int64     `json:"sequence"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entityID"`
	Payload   string    `json:"payload"` // canonical JSON snapshot of the entity
	PrevHash  string    `json:"prevHash"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
