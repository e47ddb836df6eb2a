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

var ErrDepositAmount = errors.New("deposit payout amount must be positive")

type depositService struct {
	depositRepo portsrepo.DepositRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewDepositService creates a new consignment payout service.
func NewDepositService(
	depositRepo portsrepo.DepositRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
) portssvc.DepositSvcFacade {
	return &depositService{
		depositRepo: depositRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// CreateDepositPayment pays out a consignor. Cash payouts are not written to
// the drawer movement ledger; the drawer computations subtract them from the
// payout ledger directly.
func (s *depositService) CreateDepositPayment(ctx context.Context, req dto.CreateDepositPaymentRequest, operatorID string) (*domain.DepositPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(422, "payout amount must be positive", ErrDepositAmount)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client " + req.ClientID + " not found")
		}
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	receiptNumber := req.ReceiptNumber
	if receiptNumber == "" {
		receiptNumber = now.Format("20060102-150405")
	}

	payment := domain.DepositPayment{
		DepositID:     uuid.NewString(),
		ClientID:      req.ClientID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: receiptNumber,
		PaidAt:        now,
		SaleIDs:       req.SaleIDs,
	}
	if err := s.depositRepo.SaveDepositPayment(ctx, payment); err != nil {
		logger.Error("Failed to save deposit payment", slog.String("client_id", req.ClientID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save deposit payment: %w", err)
	}

	logger.Info("Deposit payment created",
		slog.String("deposit_id", payment.DepositID),
		slog.String("client_id", req.ClientID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("method", req.PaymentMethod))
	return &payment, nil
}

// ListDepositPayments retrieves payouts dated in [from, to).
func (s *depositService) ListDepositPayments(ctx context.Context, from, to time.Time) ([]domain.DepositPayment, error) {
	payments, err := s.depositRepo.ListDepositPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposit payments: %w", err)
	}
	return payments, nil
}
