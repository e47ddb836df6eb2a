package services

import (
	"context"
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// ClosureReaderSvc defines read operations for closure data
type ClosureReaderSvc interface {
	// GetClosureByID retrieves a closure by ID.
	GetClosureByID(ctx context.Context, closureID string) (*domain.Closure, error)

	// ListClosures retrieves closures of a category, most recent first.
	ListClosures(ctx context.Context, category domain.ClosureCategory, limit int) ([]domain.Closure, error)

	// GetClosureTicket renders the fixed-width report ticket for a closure.
	GetClosureTicket(ctx context.Context, closureID string) (string, error)

	// PrintClosureTicket renders the report ticket and dispatches it to the
	// shop printer.
	PrintClosureTicket(ctx context.Context, closureID string) error

	// PreviewDay computes the figures a daily closure of the given date
	// would capture, without persisting anything.
	PreviewDay(ctx context.Context, date time.Time) (*dto.ClosureResponse, error)
}

// ClosureWriterSvc defines write operations for closure data
type ClosureWriterSvc interface {
	// CreateDailyClosure freezes one day of trading into an immutable
	// closure and dispatches its ticket to the receipt printer.
	CreateDailyClosure(ctx context.Context, req dto.CreateDailyClosureRequest, operatorID string) (*domain.Closure, error)

	// CreateMonthlyClosure freezes one month of trading, recomputed from
	// raw sales rather than from the daily closures.
	CreateMonthlyClosure(ctx context.Context, req dto.CreateMonthlyClosureRequest, operatorID string) (*domain.Closure, error)
}

// ClosureSvcFacade combines all closure-related service interfaces
type ClosureSvcFacade interface {
	ClosureReaderSvc
	ClosureWriterSvc
}
