package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	operatorRepo portsrepo.OperatorRepositoryFacade
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService creates a new authentication service.
func NewAuthService(operatorRepo portsrepo.OperatorRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvc {
	return &authService{
		operatorRepo: operatorRepo,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		jwtIssuer:    jwtIssuer,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies credentials and returns a signed JWT whose subject is the
// operator ID.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same answer as a bad password, no username probing.
			return nil, apperrors.NewAppError(401, "invalid credentials", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Failed login attempt", slog.String("username", req.Username))
		return nil, apperrors.NewAppError(401, "invalid credentials", ErrInvalidCredentials)
	}

	now := time.Now()
	expiresAt := now.Add(s.jwtExpiry)
	claims := jwt.RegisteredClaims{
		Subject:   operator.OperatorID,
		Issuer:    s.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("Operator logged in", slog.String("operator_id", operator.OperatorID))
	return &dto.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		OperatorID: operator.OperatorID,
		Name:       operator.Name,
	}, nil
}

// RegisterOperator creates a till operator with a bcrypt-hashed password.
func (s *authService) RegisterOperator(ctx context.Context, req dto.RegisterOperatorRequest, creatorOperatorID string) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	operator := domain.Operator{
		OperatorID:   uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		AuditFields:  newAuditFields(creatorOperatorID, now),
	}
	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "username already taken", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save operator", slog.String("username", req.Username), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save operator: %w", err)
	}

	logger.Info("Operator registered", slog.String("operator_id", operator.OperatorID), slog.String("username", req.Username))
	return &operator, nil
}
