package services

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// CashMovementReaderSvc defines read operations for drawer movements
type CashMovementReaderSvc interface {
	// ListMovements retrieves the drawer movements of one day.
	ListMovements(ctx context.Context, day time.Time) ([]domain.CashMovement, error)

	// GetDrawerStatus computes the live theoretical drawer balance for one
	// day.
	GetDrawerStatus(ctx context.Context, day time.Time) (*dto.DrawerStatusResponse, error)
}

// CashMovementWriterSvc defines write operations for drawer movements
type CashMovementWriterSvc interface {
	// RecordMovement persists a manual drawer movement.
	RecordMovement(ctx context.Context, req dto.CreateMovementRequest, operatorID string) (*domain.CashMovement, error)
}

// CashMovementSvcFacade combines all movement-related service interfaces
type CashMovementSvcFacade interface {
	CashMovementReaderSvc
	CashMovementWriterSvc
}
