// Package audit implements the hash chaining of the append-only event log.
// Each event's hash covers its own fields plus the previous event's hash, so
// any retroactive edit invalidates every later entry.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

// GenesisHash anchors the first event of the chain.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// ComputeHash derives the chained hash for an event. Sequence and PrevHash
// must already be set.
func ComputeHash(e domain.AuditEvent) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%s|%s|%s|%s|%s",
		e.Sequence,
		e.Action,
		e.EntityID,
		e.Payload,
		e.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z"),
		e.CreatedBy,
		e.PrevHash,
	)
	return hex.EncodeToString(h.Sum(nil))
}

// Chain fills in Sequence, PrevHash and Hash from the previous event. A nil
// prev starts a new chain at sequence 1 from the genesis hash.
func Chain(e domain.AuditEvent, prev *domain.AuditEvent) domain.AuditEvent {
	if prev == nil {
		e.Sequence = 1
		e.PrevHash = GenesisHash
	} else {
		e.Sequence = prev.Sequence + 1
		e.PrevHash = prev.Hash
	}
	e.Hash = ComputeHash(e)
	return e
}

// Verify walks events in chain order and returns the sequence of the first
// broken link, or nil when the chain is intact.
func Verify(events []domain.AuditEvent) *int64 {
	prevHash := GenesisHash
	for i := range events {
		e := events[i]
		if e.PrevHash != prevHash || ComputeHash(e) != e.Hash {
			seq := e.Sequence
			return &seq
		}
		prevHash = e.Hash
	}
	return nil
}
