package models

import "time"

// AuditEvent is the persistence shape of one hash-chained audit log entry.
type AuditEvent struct {
	EventID   string    `json:"eventID" db:"event_id"`
	Sequence  int64     `json:"sequence" db:"sequence"`
	Action    string    `json:"action" db:"action"`
	EntityID  string    `json:"entityID" db:"entity_id"`
	Payload   string    `json:"payload" db:"payload"`
	PrevHash  string    `json:"prevHash" db:"prev_hash"`
	Hash      string    `json:"hash" db:"hash"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CreatedBy string    `json:"createdBy" db:"created_by"`
}
