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

var (
	ErrDiscountRange        = errors.New("line discount must be between 0 and 100 percent")
	ErrFlatDiscountTooLarge = errors.New("flat discount exceeds the sale net total")
	ErrNegativeTender       = errors.New("tendered amounts must not be negative")
	ErrInsufficientTender   = errors.New("tendered amounts do not cover the amount due")
	ErrNoPayment            = errors.New("sale requires at least one payment method")
	ErrVoucherNotRedeemable = errors.New("voucher is expired or already redeemed")
	ErrSaleAlreadyCancelled = errors.New("sale is already cancelled")
	ErrRefundNeedsClient    = errors.New("voucher refund requires a known customer")
)

// saleService implements the sale lifecycle: reconciliation, persistence,
// cancellation and receipts.
type saleService struct {
	saleRepo      portsrepo.SaleRepositoryWithTx
	productRepo   portsrepo.ProductRepositoryFacade
	voucherRepo   portsrepo.VoucherRepositoryFacade
	clientRepo    portsrepo.ClientRepositoryFacade
	renderer      *ticket.Renderer
	printer       printing.Dispatcher
	strictVoucher bool
}

// NewSaleService creates a new sale service.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryWithTx,
	productRepo portsrepo.ProductRepositoryFacade,
	voucherRepo portsrepo.VoucherRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	renderer *ticket.Renderer,
	printer printing.Dispatcher,
	strictVoucher bool,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		voucherRepo:   voucherRepo,
		clientRepo:    clientRepo,
		renderer:      renderer,
		printer:       printer,
		strictVoucher: strictVoucher,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// buildLines resolves the cart against the catalog and snapshots product
// name and condition onto each line.
func (s *saleService) buildLines(ctx context.Context, saleID string, reqLines []dto.CreateSaleLineRequest) ([]domain.SaleLine, error) {
	lines := make([]domain.SaleLine, 0, len(reqLines))
	for _, rl := range reqLines {
		if rl.DiscountPct.IsNegative() || rl.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, apperrors.NewAppError(422, "invalid line discount", fmt.Errorf("%w: product %s", ErrDiscountRange, rl.ProductID))
		}
		if rl.UnitPrice.IsNegative() {
			return nil, apperrors.NewAppError(422, "unit price must not be negative", apperrors.ErrValidation)
		}
		product, err := s.productRepo.FindProductByID(ctx, rl.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("product " + rl.ProductID + " not found")
			}
			return nil, fmt.Errorf("failed to resolve product %s: %w", rl.ProductID, err)
		}
		lines = append(lines, domain.SaleLine{
			SaleLineID:       uuid.NewString(),
			SaleID:           saleID,
			ProductID:        product.ProductID,
			Quantity:         rl.Quantity,
			UnitPrice:        rl.UnitPrice,
			DiscountPct:      rl.DiscountPct,
			ProductName:      product.Name,
			ProductCondition: product.Condition,
		})
	}
	return lines, nil
}

// resolveVoucher loads and vets the voucher named by the request. An expired
// or already-redeemed voucher is silently dropped unless strict mode is on;
// an unknown ID is always an error.
func (s *saleService) resolveVoucher(ctx context.Context, voucherID *string, now time.Time) (*domain.Voucher, error) {
	if voucherID == nil {
		return nil, nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, *voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("voucher " + *voucherID + " not found")
		}
		return nil, fmt.Errorf("failed to resolve voucher %s: %w", *voucherID, err)
	}
	if !voucher.Redeemable(now) {
		if s.strictVoucher {
			return nil, apperrors.NewAppError(422, "voucher cannot be redeemed", ErrVoucherNotRedeemable)
		}
		logger.Warn("Ignoring non-redeemable voucher", slog.String("voucher_id", voucher.VoucherID), slog.Bool("redeemed", voucher.Redeemed))
		return nil, nil
	}
	return voucher, nil
}

// CreateSale registers a completed sale.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorOperatorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	saleID := uuid.NewString()
	lines, err := s.buildLines(ctx, saleID, req.Lines)
	if err != nil {
		return nil, err
	}

	if req.FlatDiscount.IsNegative() {
		return nil, apperrors.NewAppError(422, "flat discount must not be negative", apperrors.ErrValidation)
	}
	norm := reconcile.NormalizeLines(lines, req.FlatDiscount)
	if req.FlatDiscount.GreaterThan(norm.NetBeforeGlobal) {
		return nil, apperrors.NewAppError(422, "flat discount exceeds sale total", ErrFlatDiscountTooLarge)
	}
	netTotal := reconcile.Round2(norm.NetTotal)

	amounts := reconcile.TenderAmounts{Card: req.Card, Cash: req.Cash, Check: req.Check, AltCard: req.AltCard}
	if req.Card.IsNegative() || req.Cash.IsNegative() || req.Check.IsNegative() || req.AltCard.IsNegative() {
		return nil, apperrors.NewAppError(422, "negative tender amount", ErrNegativeTender)
	}

	voucher, err := s.resolveVoucher(ctx, req.VoucherID, now)
	if err != nil {
		return nil, err
	}

	voucherApplied := decimal.Zero
	var issueVoucher *domain.Voucher
	if voucher != nil {
		voucherApplied = decimal.Min(voucher.Amount, netTotal)
		if remainder := voucher.Amount.Sub(netTotal); remainder.IsPositive() {
			// Over-large voucher: the unspent remainder becomes a fresh
			// credit for the same client.
			issueVoucher = &domain.Voucher{
				VoucherID:     uuid.NewString(),
				ClientID:      voucher.ClientID,
				IssuingSaleID: &saleID,
				Amount:        reconcile.Round2(remainder),
				Remarks:       "Solde restant de l'avoir n°" + voucher.VoucherID,
				AuditFields:   newAuditFields(creatorOperatorID, now),
			}
		}
	}

	amountDue := netTotal.Sub(voucherApplied)
	if amountDue.IsPositive() {
		if !amounts.AnyPositive() {
			return nil, apperrors.NewAppError(422, "no payment method supplied", ErrNoPayment)
		}
		if amounts.Total().LessThan(amountDue) {
			return nil, apperrors.NewAppError(422, "payment does not cover the amount due", ErrInsufficientTender)
		}
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("client " + *req.ClientID + " not found")
			}
			return nil, fmt.Errorf("failed to resolve client %s: %w", *req.ClientID, err)
		}
	}

	sale := domain.Sale{
		SaleID:         saleID,
		SaleDate:       saleDate,
		ClientID:       req.ClientID,
		GrossTotal:     reconcile.Round2(norm.GrossTotal),
		NetTotal:       netTotal,
		FlatDiscount:   req.FlatDiscount,
		VoucherApplied: voucherApplied,
		Card:           req.Card,
		Cash:           req.Cash,
		Check:          req.Check,
		AltCard:        req.AltCard,
		AuditFields:    newAuditFields(creatorOperatorID, now),
		Lines:          lines,
	}

	var redeemVoucher *domain.Voucher
	if voucher != nil {
		redeemed := *voucher
		redeemed.Redeemed = true
		redeemed.RedeemingSaleID = &saleID
		redeemed.LastUpdatedAt = now
		redeemed.LastUpdatedBy = creatorOperatorID
		redeemVoucher = &redeemed
	}

	quantities := make(map[string]int, len(lines))
	for _, l := range lines {
		quantities[l.ProductID] += l.Quantity
	}

	if err := s.saleRepo.SaveSale(ctx, sale, quantities, redeemVoucher, issueVoucher); err != nil {
		logger.Error("Failed to save sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	logger.Info("Sale created",
		slog.String("sale_id", saleID),
		slog.String("net_total", netTotal.StringFixed(2)),
		slog.Bool("voucher_redeemed", redeemVoucher != nil))

	s.printSaleTicket(ctx, sale, redeemVoucher, issueVoucher)
	return &sale, nil
}

// printSaleTicket renders and dispatches the customer receipt. Best effort.
func (s *saleService) printSaleTicket(ctx context.Context, sale domain.Sale, redeemed, issued *domain.Voucher) {
	if s.printer == nil {
		return
	}
	text := s.renderer.RenderSale(ticket.SaleData{
		Sale:            sale,
		ClientName:      s.clientDisplayName(ctx, sale.ClientID),
		RedeemedVoucher: redeemed,
		IssuedVoucher:   issued,
	})
	s.printer.Print(ctx, text)
}

func (s *saleService) clientDisplayName(ctx context.Context, clientID *string) string {
	if clientID == nil {
		return ""
	}
	client, err := s.clientRepo.FindClientByID(ctx, *clientID)
	if err != nil {
		return ""
	}
	return client.FirstName + " " + client.LastName
}

// CancelSale voids a sale and refunds the customer.
func (s *saleService) CancelSale(ctx context.Context, saleID string, req dto.CancelSaleRequest, operatorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return nil, fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}
	if sale.Cancelled {
		return nil, apperrors.NewAppError(409, "sale is already cancelled", ErrSaleAlreadyCancelled)
	}

	refundable := sale.NetTotal.Sub(sale.VoucherApplied)

	// The drawer gives the money back whenever cash was taken at the till,
	// whatever the customer now asks for. Refunding a card payment in cash
	// empties the drawer too, under its own label.
	var refunds []domain.CashMovement
	if sale.Cash.IsPositive() || req.RefundMethod == "cash" {
		refunds = append(refunds, domain.CashMovement{
			MovementID:  uuid.NewString(),
			Date:        now,
			Direction:   domain.MovementOut,
			Amount:      refundable,
			Reason:      "Remboursement vente annulée n°" + sale.SaleID,
			SaleID:      &sale.SaleID,
			AuditFields: newAuditFields(operatorID, now),
		})
	}
	if req.RefundMethod == "cash" && sale.Card.Add(sale.AltCard).IsPositive() {
		refunds = append(refunds, domain.CashMovement{
			MovementID:  uuid.NewString(),
			Date:        now,
			Direction:   domain.MovementOut,
			Amount:      refundable,
			Reason:      "Remboursement CB en espèces vente n°" + sale.SaleID,
			SaleID:      &sale.SaleID,
			AuditFields: newAuditFields(operatorID, now),
		})
	}

	var issueVoucher *domain.Voucher
	switch req.RefundMethod {
	case "voucher":
		if sale.ClientID == nil {
			return nil, apperrors.NewAppError(422, "voucher refund requires a customer", ErrRefundNeedsClient)
		}
		issueVoucher = &domain.Voucher{
			VoucherID:     uuid.NewString(),
			ClientID:      *sale.ClientID,
			IssuingSaleID: &sale.SaleID,
			Amount:        sale.NetTotal,
			Remarks:       "Annulation vente n°" + sale.SaleID,
			AuditFields:   newAuditFields(operatorID, now),
		}
	case "none":
		// Cancellation without refund on a known customer still issues a
		// voucher for the net total.
		if sale.ClientID != nil {
			issueVoucher = &domain.Voucher{
				VoucherID:     uuid.NewString(),
				ClientID:      *sale.ClientID,
				IssuingSaleID: &sale.SaleID,
				Amount:        sale.NetTotal,
				Remarks:       "Annulation vente n°" + sale.SaleID,
				AuditFields:   newAuditFields(operatorID, now),
			}
		}
	}

	cancelled := *sale
	cancelled.Cancelled = true
	cancelled.CancellationReason = req.Reason
	cancelled.LastUpdatedAt = now
	cancelled.LastUpdatedBy = operatorID

	quantities := make(map[string]int, len(sale.Lines))
	for _, l := range sale.Lines {
		quantities[l.ProductID] += l.Quantity
	}

	if err := s.saleRepo.CancelSale(ctx, cancelled, quantities, refunds, issueVoucher); err != nil {
		logger.Error("Failed to cancel sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to cancel sale: %w", err)
	}

	logger.Info("Sale cancelled",
		slog.String("sale_id", saleID),
		slog.String("refund_method", req.RefundMethod))
	return &cancelled, nil
}

// DeleteSale removes an erroneous sale outright. Administrative flow: no
// refund is issued, the products go back into stock unless a cancellation
// already restocked them, and vouchers keep only a weak link to the sale.
func (s *saleService) DeleteSale(ctx context.Context, saleID string, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}

	deleted := *sale
	deleted.LastUpdatedAt = now
	deleted.LastUpdatedBy = operatorID

	quantities := make(map[string]int, len(sale.Lines))
	if !sale.Cancelled {
		for _, l := range sale.Lines {
			quantities[l.ProductID] += l.Quantity
		}
	}

	if err := s.saleRepo.DeleteSale(ctx, deleted, quantities); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewAppError(409, "sale has a consignor payout and cannot be deleted", apperrors.ErrConflict)
		}
		logger.Error("Failed to delete sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	logger.Info("Sale deleted", slog.String("sale_id", saleID))
	return nil
}

// RefundSaleLine refunds one line of a sale without voiding the whole sale.
// The product goes back into stock; the customer gets cash out of the drawer
// or a voucher for the line's net amount.
func (s *saleService) RefundSaleLine(ctx context.Context, saleID string, saleLineID string, req dto.RefundLineRequest, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}
	if sale.Cancelled {
		return apperrors.NewAppError(409, "sale is already cancelled", ErrSaleAlreadyCancelled)
	}

	var line *domain.SaleLine
	norm := reconcile.NormalizeLines(sale.Lines, sale.FlatDiscount)
	var lineGross, lineNet decimal.Decimal
	for i := range sale.Lines {
		if sale.Lines[i].SaleLineID == saleLineID {
			line = &sale.Lines[i]
			lineGross = norm.Lines[i].Gross
			lineNet = norm.Lines[i].NetFinal
			break
		}
	}
	if line == nil {
		return apperrors.NewNotFoundError("sale line " + saleLineID + " not found")
	}

	var refund *domain.CashMovement
	var issueVoucher *domain.Voucher
	switch req.RefundMethod {
	case "cash":
		refund = &domain.CashMovement{
			MovementID:  uuid.NewString(),
			Date:        now,
			Direction:   domain.MovementOut,
			Amount:      lineNet,
			Reason:      "Remboursement " + line.ProductName,
			SaleID:      &sale.SaleID,
			AuditFields: newAuditFields(operatorID, now),
		}
	case "voucher":
		if sale.ClientID == nil {
			return apperrors.NewAppError(422, "voucher refund requires a customer", ErrRefundNeedsClient)
		}
		issueVoucher = &domain.Voucher{
			VoucherID:     uuid.NewString(),
			ClientID:      *sale.ClientID,
			IssuingSaleID: &sale.SaleID,
			Amount:        lineNet,
			Remarks:       "Remboursement " + line.ProductName,
			AuditFields:   newAuditFields(operatorID, now),
		}
	}

	refunded := *sale
	refunded.GrossTotal = reconcile.Round2(sale.GrossTotal.Sub(lineGross))
	refunded.NetTotal = reconcile.Round2(sale.NetTotal.Sub(lineNet))
	refunded.LastUpdatedAt = now
	refunded.LastUpdatedBy = operatorID

	quantities := map[string]int{line.ProductID: line.Quantity}
	if err := s.saleRepo.RefundLine(ctx, refunded, saleLineID, quantities, refund, issueVoucher); err != nil {
		logger.Error("Failed to refund sale line", slog.String("sale_id", saleID), slog.String("sale_line_id", saleLineID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to refund sale line: %w", err)
	}

	logger.Info("Sale line refunded",
		slog.String("sale_id", saleID),
		slog.String("sale_line_id", saleLineID),
		slog.String("amount", lineNet.StringFixed(2)))
	return nil
}

// PreviewSale reconciles a cart without persisting anything.
func (s *saleService) PreviewSale(ctx context.Context, req dto.PreviewSaleRequest) (*dto.SalePreviewResponse, error) {
	now := time.Now()
	lines, err := s.buildLines(ctx, "", req.Lines)
	if err != nil {
		return nil, err
	}
	if req.FlatDiscount.IsNegative() {
		return nil, apperrors.NewAppError(422, "flat discount must not be negative", apperrors.ErrValidation)
	}
	norm := reconcile.NormalizeLines(lines, req.FlatDiscount)
	if req.FlatDiscount.GreaterThan(norm.NetBeforeGlobal) {
		return nil, apperrors.NewAppError(422, "flat discount exceeds sale total", ErrFlatDiscountTooLarge)
	}
	vat := reconcile.SplitVAT(lines, norm)
	netTotal := reconcile.Round2(norm.NetTotal)

	voucher, err := s.resolveVoucher(ctx, req.VoucherID, now)
	if err != nil {
		return nil, err
	}
	voucherApplied := decimal.Zero
	if voucher != nil {
		voucherApplied = decimal.Min(voucher.Amount, netTotal)
	}
	amountDue := netTotal.Sub(voucherApplied)

	tender := reconcile.Tender(reconcile.TenderAmounts{
		Card:    req.Card,
		Cash:    req.Cash,
		Check:   req.Check,
		AltCard: req.AltCard,
	}, amountDue)

	return &dto.SalePreviewResponse{
		GrossTotal:     reconcile.Round2(norm.GrossTotal),
		NetTotal:       netTotal,
		TotalDiscounts: reconcile.Round2(norm.TotalDiscounts),
		VoucherApplied: voucherApplied,
		AmountDue:      amountDue,
		HT0:            vat.HT0,
		HT20:           vat.HT20,
		TTC0:           reconcile.Round2(vat.TTC0),
		TTC20:          reconcile.Round2(vat.TTC20),
		TVA20:          vat.TVA20,
		ChangeDue:      tender.ChangeDue,
		CashRetained:   tender.CashRetained,
		TotalCollected: tender.TotalCollected,
	}, nil
}

// GetSaleByID retrieves a sale with its lines.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return nil, fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListSales retrieves the sales of a period with running totals. Cancelled
// sales are listed but excluded from the summary figures.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	var sales []domain.Sale
	var err error
	if params.From != nil && params.To != nil {
		sales, err = s.saleRepo.ListSalesBetween(ctx, *params.From, *params.To)
	} else {
		limit := params.Limit
		if limit <= 0 {
			limit = 50
		}
		sales, err = s.saleRepo.ListRecentSales(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	active := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if !sale.Cancelled {
			active = append(active, sale)
		}
	}
	summary := reconcile.Summarize(active)

	return &dto.ListSalesResponse{
		Sales: dto.ToSaleResponses(sales),
		Summary: dto.SummaryResponse{
			TotalTTC:       summary.TotalTTC,
			TotalHT:        summary.VAT.TotalHT,
			TotalTVA:       summary.VAT.TotalTVA,
			TotalCard:      summary.TotalCard,
			TotalAltCard:   summary.TotalAltCard,
			TotalCash:      summary.TotalCash,
			TotalCheck:     summary.TotalCheck,
			TotalCollected: summary.TotalCollected,
			TotalDiscounts: summary.TotalDiscounts,
			SaleCount:      summary.SaleCount,
			ClientCount:    summary.ClientCount,
			ItemCount:      summary.ItemCount,
			AverageTicket:  summary.AverageTicket,
		},
	}, nil
}

// GetSaleTicket renders the customer receipt for a persisted sale.
func (s *saleService) GetSaleTicket(ctx context.Context, saleID string) (string, error) {
	sale, err := s.GetSaleByID(ctx, saleID)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderSale(ticket.SaleData{
		Sale:       *sale,
		ClientName: s.clientDisplayName(ctx, sale.ClientID),
	}), nil
}

// PrintSaleTicket re-dispatches the receipt of a persisted sale to the shop
// printer, for duplicates and paper jams.
func (s *saleService) PrintSaleTicket(ctx context.Context, saleID string) error {
	text, err := s.GetSaleTicket(ctx, saleID)
	if err != nil {
		return err
	}
	if s.printer != nil {
		s.printer.Print(ctx, text)
	}
	return nil
}

// newAuditFields stamps creation metadata.
func newAuditFields(operatorID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     operatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: operatorID,
	}
}
