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
)

var ErrVoucherAmount = errors.New("voucher amount must be positive")

type voucherService struct {
	voucherRepo portsrepo.VoucherRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{voucherRepo: voucherRepo, clientRepo: clientRepo}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher issues store credit outside of any sale, for goodwill
// gestures and migrations from the paper system.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, operatorID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(422, "voucher amount must be positive", ErrVoucherAmount)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client " + req.ClientID + " not found")
		}
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	voucher := domain.Voucher{
		VoucherID:   uuid.NewString(),
		ClientID:    req.ClientID,
		Amount:      req.Amount,
		Remarks:     req.Remarks,
		AuditFields: newAuditFields(operatorID, now),
	}
	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("client_id", req.ClientID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	logger.Info("Voucher issued",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("client_id", req.ClientID),
		slog.String("amount", req.Amount.StringFixed(2)))
	return &voucher, nil
}

// GetVoucherByID retrieves a voucher.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, fmt.Errorf("failed to get voucher %s: %w", voucherID, err)
	}
	return voucher, nil
}

// ListVouchersByClient retrieves the vouchers held by a client.
func (s *voucherService) ListVouchersByClient(ctx context.Context, clientID string) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.ListVouchersByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers for client %s: %w", clientID, err)
	}
	return vouchers, nil
}

// ListRedeemableVouchers retrieves the vouchers still applicable at the till,
// newest first.
func (s *voucherService) ListRedeemableVouchers(ctx context.Context) ([]domain.Voucher, error) {
	cutoff := time.Now().Add(-domain.VoucherValidityWindow)
	vouchers, err := s.voucherRepo.ListRedeemableVouchers(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeemable vouchers: %w", err)
	}
	return vouchers, nil
}

// VerifyVoucher checks a voucher against a prospective sale total: how much
// of the voucher would be applied, what would remain due and what remainder
// would come back as a carry-forward voucher.
func (s *voucherService) VerifyVoucher(ctx context.Context, voucherID string, total decimal.Decimal) (*dto.VoucherVerificationResponse, error) {
	now := time.Now()

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, fmt.Errorf("failed to get voucher %s: %w", voucherID, err)
	}

	resp := dto.VoucherVerificationResponse{
		Voucher:        dto.ToVoucherResponse(voucher, now),
		Redeemable:     voucher.Redeemable(now),
		AppliedAmount:  decimal.Zero,
		AmountDueAfter: total,
		CarryForward:   decimal.Zero,
	}
	if !resp.Redeemable {
		return &resp, nil
	}

	resp.AppliedAmount = decimal.Min(voucher.Amount, total)
	resp.AmountDueAfter = total.Sub(resp.AppliedAmount)
	resp.CarryForward = voucher.Amount.Sub(resp.AppliedAmount)
	return &resp, nil
}
