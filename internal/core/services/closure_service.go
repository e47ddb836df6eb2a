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
	"github.com/caisse-pos/caisse_backend/internal/printing"
	"github.com/caisse-pos/caisse_backend/internal/ticket"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

// closureService freezes trading periods into immutable closures and renders
// their report tickets.
type closureService struct {
	closureRepo      portsrepo.ClosureRepositoryWithTx
	saleRepo         portsrepo.SaleRepositoryFacade
	cashMovementRepo portsrepo.CashMovementRepositoryFacade
	depositRepo      portsrepo.DepositRepositoryFacade
	clientRepo       portsrepo.ClientRepositoryFacade
	renderer         *ticket.Renderer
	printer          printing.Dispatcher
	openingFloat     decimal.Decimal
}

// NewClosureService creates a new closure service. openingFloat is the
// configured drawer float used when no previous daily closure exists.
func NewClosureService(
	closureRepo portsrepo.ClosureRepositoryWithTx,
	saleRepo portsrepo.SaleRepositoryFacade,
	cashMovementRepo portsrepo.CashMovementRepositoryFacade,
	depositRepo portsrepo.DepositRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	renderer *ticket.Renderer,
	printer printing.Dispatcher,
	openingFloat decimal.Decimal,
) portssvc.ClosureSvcFacade {
	return &closureService{
		closureRepo:      closureRepo,
		saleRepo:         saleRepo,
		cashMovementRepo: cashMovementRepo,
		depositRepo:      depositRepo,
		clientRepo:       clientRepo,
		renderer:         renderer,
		printer:          printer,
		openingFloat:     openingFloat,
	}
}

var _ portssvc.ClosureSvcFacade = (*closureService)(nil)

// periodDetail is the raw material of one closure period.
type periodDetail struct {
	active    []domain.Sale
	cancelled []domain.Sale
	deposits  []domain.DepositPayment
}

func (s *closureService) loadPeriod(ctx context.Context, from, to time.Time) (*periodDetail, error) {
	sales, err := s.saleRepo.ListSalesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for period: %w", err)
	}
	detail := &periodDetail{}
	for _, sale := range sales {
		if sale.Cancelled {
			detail.cancelled = append(detail.cancelled, sale)
		} else {
			detail.active = append(detail.active, sale)
		}
	}
	detail.deposits, err = s.depositRepo.ListDepositPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposit payments for period: %w", err)
	}
	return detail, nil
}

// compute assembles a closure record for [from, to). It never persists.
func (s *closureService) compute(ctx context.Context, category domain.ClosureCategory, date time.Time, from, to time.Time, detail *periodDetail, operatorID string, now time.Time) (*domain.Closure, error) {
	summary := reconcile.Summarize(detail.active)

	totalCancellations := decimal.Zero
	for _, sale := range detail.cancelled {
		totalCancellations = totalCancellations.Add(sale.NetTotal)
	}

	totalDeposits := decimal.Zero
	depositCash := decimal.Zero
	for _, d := range detail.deposits {
		totalDeposits = totalDeposits.Add(d.Amount)
		if d.PaidInCash() {
			depositCash = depositCash.Add(d.Amount)
		}
	}

	closure := &domain.Closure{
		ClosureID: uuid.NewString(),
		Category:  category,
		Date:      date,

		TotalHT:  summary.VAT.TotalHT,
		TotalTVA: summary.VAT.TotalTVA,
		TotalTTC: summary.TotalTTC,

		HT0:   summary.VAT.HT0,
		HT20:  summary.VAT.HT20,
		TTC0:  reconcile.Round2(summary.VAT.TTC0),
		TTC20: reconcile.Round2(summary.VAT.TTC20),
		TVA20: summary.VAT.TVA20,

		TotalCard:      summary.TotalCard,
		TotalAltCard:   summary.TotalAltCard,
		TotalCash:      summary.TotalCash,
		TotalCheck:     summary.TotalCheck,
		TotalCollected: summary.TotalCollected,

		TotalDiscounts:     reconcile.Round2(summary.TotalDiscounts),
		TotalCancellations: reconcile.Round2(totalCancellations),
		TotalDeposits:      reconcile.Round2(totalDeposits),

		SaleCount:     summary.SaleCount,
		ClientCount:   summary.ClientCount,
		ItemCount:     summary.ItemCount,
		AverageTicket: summary.AverageTicket,

		AuditFields: newAuditFields(operatorID, now),
	}

	if category == domain.ClosureDaily {
		opening := s.openingFloat
		if prev, err := s.closureRepo.ListClosures(ctx, domain.ClosureDaily, 1); err == nil && len(prev) > 0 {
			opening = prev[0].DrawerCounted
		}

		movements, err := s.cashMovementRepo.ListMovementsBetween(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to list cash movements for period: %w", err)
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

		closure.DrawerOpening = opening
		closure.DrawerTheoretical = reconcile.TheoreticalBalance(reconcile.DrawerFigures{
			Opening:        opening,
			MovementsIn:    movementsIn,
			MovementsOut:   movementsOut,
			DepositPayouts: depositCash,
			CashRetained:   summary.TotalCash,
		})
	}

	return closure, nil
}

func dailyPeriod(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 0, 1)
}

// CreateDailyClosure freezes one day of trading.
func (s *closureService) CreateDailyClosure(ctx context.Context, req dto.CreateDailyClosureRequest, operatorID string) (*domain.Closure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	date := now
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return nil, apperrors.NewAppError(400, "invalid closure date", err)
		}
		date = parsed
	}
	from, to := dailyPeriod(date)
	date = from
	day := date.Format("2006-01-02")

	if existing, err := s.closureRepo.FindClosureByPeriod(ctx, domain.ClosureDaily, date); err == nil && existing != nil {
		return nil, apperrors.NewAppError(409, "day already closed", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing closure: %w", err)
	}

	detail, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(detail.active) == 0 {
		return nil, apperrors.NewAppError(422, "no sales on "+day, apperrors.ErrEmptyPeriod)
	}

	closure, err := s.compute(ctx, domain.ClosureDaily, date, from, to, detail, operatorID, now)
	if err != nil {
		return nil, err
	}
	if req.CountedCash != nil {
		closure.DrawerCounted = *req.CountedCash
	} else {
		// Nothing counted: the day's retained cash stands in for the count.
		closure.DrawerCounted = closure.TotalCash
	}

	if err := s.closureRepo.SaveClosure(ctx, *closure); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "day already closed", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save daily closure", slog.String("date", day), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save closure: %w", err)
	}

	logger.Info("Daily closure created",
		slog.String("closure_id", closure.ClosureID),
		slog.String("date", day),
		slog.String("total_ttc", closure.TotalTTC.StringFixed(2)))

	s.printClosureTicket(ctx, *closure, detail)
	return closure, nil
}

// CreateMonthlyClosure freezes one month of trading. Figures come from the
// raw sales of the month, not from the daily closures, so a corrected sale
// is reflected here even if its day was already closed.
func (s *closureService) CreateMonthlyClosure(ctx context.Context, req dto.CreateMonthlyClosureRequest, operatorID string) (*domain.Closure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	first, err := time.ParseInLocation("2006-01", req.Month, time.Local)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid closure month", err)
	}
	from := first
	to := first.AddDate(0, 1, 0)
	date := to.AddDate(0, 0, -1) // last day of the month

	if existing, err := s.closureRepo.FindClosureByPeriod(ctx, domain.ClosureMonthly, date); err == nil && existing != nil {
		return nil, apperrors.NewAppError(409, "month already closed", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing closure: %w", err)
	}

	// A month only closes once its days have been closed.
	dailyCount, err := s.closureRepo.CountClosuresBetween(ctx, domain.ClosureDaily, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily closures: %w", err)
	}
	if dailyCount == 0 {
		return nil, apperrors.NewAppError(422, "no daily closure in "+req.Month, apperrors.ErrEmptyPeriod)
	}

	detail, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(detail.active) == 0 {
		return nil, apperrors.NewAppError(422, "no sales in "+req.Month, apperrors.ErrEmptyPeriod)
	}

	closure, err := s.compute(ctx, domain.ClosureMonthly, date, from, to, detail, operatorID, now)
	if err != nil {
		return nil, err
	}

	if err := s.closureRepo.SaveClosure(ctx, *closure); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "month already closed", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save monthly closure", slog.String("month", req.Month), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save closure: %w", err)
	}

	logger.Info("Monthly closure created",
		slog.String("closure_id", closure.ClosureID),
		slog.String("month", req.Month),
		slog.String("total_ttc", closure.TotalTTC.StringFixed(2)))

	s.printClosureTicket(ctx, *closure, detail)
	return closure, nil
}

// PreviewDay computes the figures a daily closure would capture, without
// persisting anything. Works on already-closed and empty days alike.
func (s *closureService) PreviewDay(ctx context.Context, date time.Time) (*dto.ClosureResponse, error) {
	from, to := dailyPeriod(date)
	detail, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	closure, err := s.compute(ctx, domain.ClosureDaily, from, from, to, detail, "", time.Now())
	if err != nil {
		return nil, err
	}
	closure.ClosureID = ""
	closure.DrawerCounted = closure.TotalCash
	resp := dto.ToClosureResponse(closure)
	return &resp, nil
}

// GetClosureByID retrieves a closure.
func (s *closureService) GetClosureByID(ctx context.Context, closureID string) (*domain.Closure, error) {
	closure, err := s.closureRepo.FindClosureByID(ctx, closureID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("closure " + closureID + " not found")
		}
		return nil, fmt.Errorf("failed to get closure %s: %w", closureID, err)
	}
	return closure, nil
}

// ListClosures retrieves closures of a category, most recent first.
func (s *closureService) ListClosures(ctx context.Context, category domain.ClosureCategory, limit int) ([]domain.Closure, error) {
	if limit <= 0 {
		limit = 31
	}
	closures, err := s.closureRepo.ListClosures(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list closures: %w", err)
	}
	return closures, nil
}

// loadClosureDetail reloads a persisted closure together with the per-sale
// detail of its period.
func (s *closureService) loadClosureDetail(ctx context.Context, closureID string) (*domain.Closure, *periodDetail, error) {
	closure, err := s.GetClosureByID(ctx, closureID)
	if err != nil {
		return nil, nil, err
	}
	var from, to time.Time
	if closure.Category == domain.ClosureMonthly {
		from = time.Date(closure.Date.Year(), closure.Date.Month(), 1, 0, 0, 0, 0, closure.Date.Location())
		to = from.AddDate(0, 1, 0)
	} else {
		from, to = dailyPeriod(closure.Date)
	}
	detail, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}
	return closure, detail, nil
}

// GetClosureTicket re-renders the report ticket of a persisted closure. The
// captured totals come from the closure record; the per-sale detail is
// re-read from the period.
func (s *closureService) GetClosureTicket(ctx context.Context, closureID string) (string, error) {
	closure, detail, err := s.loadClosureDetail(ctx, closureID)
	if err != nil {
		return "", err
	}
	return s.renderTicket(ctx, *closure, detail), nil
}

// PrintClosureTicket re-dispatches the report ticket of a persisted closure
// to the shop printer.
func (s *closureService) PrintClosureTicket(ctx context.Context, closureID string) error {
	closure, detail, err := s.loadClosureDetail(ctx, closureID)
	if err != nil {
		return err
	}
	s.printClosureTicket(ctx, *closure, detail)
	return nil
}

func (s *closureService) renderTicket(ctx context.Context, closure domain.Closure, detail *periodDetail) string {
	names := make(map[string]string)
	for _, sale := range append(append([]domain.Sale{}, detail.active...), detail.cancelled...) {
		if sale.ClientID == nil {
			continue
		}
		if _, ok := names[*sale.ClientID]; ok {
			continue
		}
		if client, err := s.clientRepo.FindClientByID(ctx, *sale.ClientID); err == nil {
			names[*sale.ClientID] = client.FirstName + " " + client.LastName
		}
	}

	deposits := make([]ticket.DepositDetail, 0, len(detail.deposits))
	for _, d := range detail.deposits {
		dd := ticket.DepositDetail{Payment: d}
		if client, err := s.clientRepo.FindClientByID(ctx, d.ClientID); err == nil {
			dd.ClientName = client.FirstName + " " + client.LastName
		}
		if lines, err := s.depositRepo.ListDepositPaymentLines(ctx, d.DepositID); err == nil {
			dd.Lines = lines
		}
		deposits = append(deposits, dd)
	}

	return s.renderer.RenderClosure(ticket.ClosureData{
		Closure:     closure,
		Sales:       detail.active,
		Cancelled:   detail.cancelled,
		ClientNames: names,
		Deposits:    deposits,
	})
}

func (s *closureService) printClosureTicket(ctx context.Context, closure domain.Closure, detail *periodDetail) {
	if s.printer == nil {
		return
	}
	s.printer.Print(ctx, s.renderTicket(ctx, closure, detail))
}
