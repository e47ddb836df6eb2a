package services

import (
	"context"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// AuthSvc defines authentication operations for till operators
type AuthSvc interface {
	// Login verifies credentials and returns a signed JWT.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// RegisterOperator creates a till operator with a hashed password.
	RegisterOperator(ctx context.Context, req dto.RegisterOperatorRequest, creatorOperatorID string) (*domain.Operator, error)
}
