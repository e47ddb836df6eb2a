package services

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// DepositReaderSvc defines read operations for consignment payouts
type DepositReaderSvc interface {
	// ListDepositPayments retrieves payouts dated in [from, to).
	ListDepositPayments(ctx context.Context, from, to time.Time) ([]domain.DepositPayment, error)
}

// DepositWriterSvc defines write operations for consignment payouts
type DepositWriterSvc interface {
	// CreateDepositPayment pays out a consignor for sold items. Cash
	// payouts also leave the drawer.
	CreateDepositPayment(ctx context.Context, req dto.CreateDepositPaymentRequest, operatorID string) (*domain.DepositPayment, error)
}

// DepositSvcFacade combines all payout-related service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
