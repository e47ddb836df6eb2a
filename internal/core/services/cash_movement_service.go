package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

var ErrMovementAmount = errors.New("movement amount must be positive")

type cashMovementService struct {
	cashMovementRepo portsrepo.CashMovementRepositoryFacade
	saleRepo         portsrepo.SaleRepositoryFacade
	depositRepo      portsrepo.DepositRepositoryFacade
	closureRepo      portsrepo.ClosureRepositoryFacade
	openingFloat     decimal.Decimal
}

// NewCashMovementService creates a new drawer movement service.
func NewCashMovementService(
	cashMovementRepo portsrepo.CashMovementRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	depositRepo portsrepo.DepositRepositoryFacade,
	closureRepo portsrepo.ClosureRepositoryFacade,
	openingFloat decimal.Decimal,
) portssvc.CashMovementSvcFacade {
	return &cashMovementService{
		cashMovementRepo: cashMovementRepo,
		saleRepo:         saleRepo,
		depositRepo:      depositRepo,
		closureRepo:      closureRepo,
		openingFloat:     openingFloat,
	}
}

var _ portssvc.CashMovementSvcFacade = (*cashMovementService)(nil)

// RecordMovement persists a manual drawer adjustment.
func (s *cashMovementService) RecordMovement(ctx context.Context, req dto.CreateMovementRequest, operatorID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(422, "movement amount must be positive", ErrMovementAmount)
	}

	movement := domain.CashMovement{
		MovementID:  uuid.NewString(),
		Date:        now,
		Direction:   domain.MovementDirection(req.Direction),
		Amount:      req.Amount,
		Reason:      req.Reason,
		AuditFields: newAuditFields(operatorID, now),
	}
	if err := s.cashMovementRepo.SaveMovement(ctx, movement); err != nil {
		logger.Error("Failed to save cash movement", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save cash movement: %w", err)
	}

	logger.Info("Cash movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("direction", req.Direction),
		slog.String("amount", req.Amount.StringFixed(2)))
	return &movement, nil
}

// ListMovements retrieves the drawer movements of one day.
func (s *cashMovementService) ListMovements(ctx context.Context, day time.Time) ([]domain.CashMovement, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	movements, err := s.cashMovementRepo.ListMovementsBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}
	return movements, nil
}

// GetDrawerStatus computes the live theoretical drawer balance for one day,
// always derived from the ledger, never cached.
func (s *cashMovementService) GetDrawerStatus(ctx context.Context, day time.Time) (*dto.DrawerStatusResponse, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	opening := s.openingFloat
	if prev, err := s.closureRepo.ListClosures(ctx, domain.ClosureDaily, 1); err == nil && len(prev) > 0 {
		opening = prev[0].DrawerCounted
	}

	movements, err := s.cashMovementRepo.ListMovementsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}
	movementsIn := decimal.Zero
	movementsOut := decimal.Zero
	for _, m := range movements {
		if m.Direction == domain.MovementIn {
			movementsIn = movementsIn.Add(m.Amount)
		} else {
			movementsOut = movementsOut.Add(m.Amount)
		}
	}

	deposits, err := s.depositRepo.ListDepositPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposit payments: %w", err)
	}
	depositCash := decimal.Zero
	for _, d := range deposits {
		if d.PaidInCash() {
			depositCash = depositCash.Add(d.Amount)
		}
	}

	sales, err := s.saleRepo.ListSalesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	cashRetained := decimal.Zero
	for _, sale := range sales {
		if sale.Cancelled {
			continue
		}
		tender := reconcile.Tender(reconcile.TenderAmounts{
			Card:    sale.Card,
			Cash:    sale.Cash,
			Check:   sale.Check,
			AltCard: sale.AltCard,
		}, sale.NetTotal.Sub(sale.VoucherApplied))
		cashRetained = cashRetained.Add(tender.CashRetained)
	}
	cashRetained = reconcile.Round2(cashRetained)

	figures := reconcile.DrawerFigures{
		Opening:        opening,
		MovementsIn:    movementsIn,
		MovementsOut:   movementsOut,
		DepositPayouts: depositCash,
		CashRetained:   cashRetained,
	}

	return &dto.DrawerStatusResponse{
		Date:           from,
		Opening:        opening,
		MovementsIn:    movementsIn,
		MovementsOut:   movementsOut,
		DepositPayouts: depositCash,
		CashRetained:   cashRetained,
		Theoretical:    reconcile.TheoreticalBalance(figures),
	}, nil
}
