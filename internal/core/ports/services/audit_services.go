package services

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// AuditSvc defines read operations on the tamper-evident audit log
type AuditSvc interface {
	// ListEvents retrieves audit events in chain order.
	ListEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error)

	// VerifyChain walks the event chain and reports the first break, if
	// any.
	VerifyChain(ctx context.Context) (*dto.AuditChainStatusResponse, error)
}
