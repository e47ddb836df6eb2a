package audit_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caisse-pos/caisse_backend/internal/audit"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
)

func event(action, entityID, payload string) domain.AuditEvent {
	return domain.AuditEvent{
		EventID:   "e-" + entityID,
		Action:    action,
		EntityID:  entityID,
		Payload:   payload,
		CreatedAt: time.Date(2026, 3, 5, 11, 30, 0, 123456000, time.UTC),
		CreatedBy: "op-1",
	}
}

func chainOf(n int) []domain.AuditEvent {
	events := make([]domain.AuditEvent, 0, n)
	var prev *domain.AuditEvent
	for i := 0; i < n; i++ {
		e := audit.Chain(event(domain.AuditSaleCreated, "s-1", `{"n":`+strconv.Itoa(i)+`}`), prev)
		events = append(events, e)
		prev = &events[len(events)-1]
	}
	return events
}

func TestChainStartsAtGenesis(t *testing.T) {
	e := audit.Chain(event(domain.AuditSaleCreated, "s-1", `{}`), nil)

	assert.Equal(t, int64(1), e.Sequence)
	assert.Equal(t, audit.GenesisHash, e.PrevHash)
	assert.Equal(t, audit.ComputeHash(e), e.Hash)
	assert.Len(t, e.Hash, 64)
}

func TestChainLinksToPrevious(t *testing.T) {
	events := chainOf(3)

	assert.Equal(t, int64(2), events[1].Sequence)
	assert.Equal(t, events[0].Hash, events[1].PrevHash)
	assert.Equal(t, events[1].Hash, events[2].PrevHash)
	assert.NotEqual(t, events[0].Hash, events[1].Hash)
}

func TestComputeHashDeterministic(t *testing.T) {
	e := audit.Chain(event(domain.AuditSaleCancelled, "s-2", `{"cancelled":true}`), nil)

	assert.Equal(t, audit.ComputeHash(e), audit.ComputeHash(e))

	tampered := e
	tampered.Payload = `{"cancelled":false}`
	assert.NotEqual(t, e.Hash, audit.ComputeHash(tampered))
}

func TestVerifyIntactChain(t *testing.T) {
	assert.Nil(t, audit.Verify(chainOf(5)))
	assert.Nil(t, audit.Verify(nil))
}

func TestVerifyDetectsTamperedPayload(t *testing.T) {
	events := chainOf(5)
	events[2].Payload = `{"amount":"999.00"}`

	broken := audit.Verify(events)
	require.NotNil(t, broken)
	assert.Equal(t, int64(3), *broken)
}

func TestVerifyDetectsRewrittenEvent(t *testing.T) {
	events := chainOf(4)
	// Recompute event 2's hash after editing it: the event itself is
	// consistent, but event 3 no longer links to it.
	events[1].Payload = `{"amount":"999.00"}`
	events[1].Hash = audit.ComputeHash(events[1])

	broken := audit.Verify(events)
	require.NotNil(t, broken)
	assert.Equal(t, int64(3), *broken)
}

func TestVerifyDetectsDeletedEvent(t *testing.T) {
	events := chainOf(4)
	truncated := append([]domain.AuditEvent{events[0]}, events[2:]...)

	broken := audit.Verify(truncated)
	require.NotNil(t, broken)
	assert.Equal(t, int64(3), *broken)
}
