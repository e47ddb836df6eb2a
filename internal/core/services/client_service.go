package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, operatorID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	client := domain.Client{
		ClientID:    uuid.NewString(),
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		AuditFields: newAuditFields(operatorID, now),
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

// GetClientByID retrieves a client.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client " + clientID + " not found")
		}
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

// SearchClients retrieves clients matching a name query.
func (s *clientService) SearchClients(ctx context.Context, query string, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	clients, err := s.clientRepo.SearchClients(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}
