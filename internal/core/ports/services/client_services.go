package services

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client by ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// SearchClients retrieves clients matching a name query.
	SearchClients(ctx context.Context, query string, limit int) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient registers a client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, operatorID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
