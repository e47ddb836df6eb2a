package services

import (
	"context"
	"fmt"

	"github.com/caisse-pos/caisse_backend/internal/audit"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new audit log service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvc {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// ListEvents retrieves audit events in chain order. A non-positive limit
// returns the whole log.
func (s *auditService) ListEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	events, err := s.auditRepo.ListEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

// VerifyChain walks the whole event chain and reports the first break.
func (s *auditService) VerifyChain(ctx context.Context) (*dto.AuditChainStatusResponse, error) {
	events, err := s.auditRepo.ListEvents(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit events: %w", err)
	}
	broken := audit.Verify(events)
	return &dto.AuditChainStatusResponse{
		Intact:      broken == nil,
		EventCount:  len(events),
		BrokenAtSeq: broken,
	}, nil
}
