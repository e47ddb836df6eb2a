package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleLineRequest is one cart entry in a sale creation request.
type CreateSaleLineRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	DiscountPct decimal.Decimal `json:"discountPct"` // 0..100, validated in the service
}

// CreateSaleRequest defines the payload to register a completed sale.
type CreateSaleRequest struct {
	SaleDate     *time.Time              `json:"saleDate,omitempty"` // defaults to now
	ClientID     *string                 `json:"clientID,omitempty"`
	Lines        []CreateSaleLineRequest `json:"lines" binding:"required,min=1,dive"`
	FlatDiscount decimal.Decimal         `json:"flatDiscount"` // currency amount off the whole sale
	VoucherID    *string                 `json:"voucherID,omitempty"`

	Card    decimal.Decimal `json:"card"`
	Cash    decimal.Decimal `json:"cash"`
	Check   decimal.Decimal `json:"check"`
	AltCard decimal.Decimal `json:"altCard"`
}

// PreviewSaleRequest computes the totals of a cart without persisting
// anything. Same shape as CreateSaleRequest.
type PreviewSaleRequest = CreateSaleRequest

// CancelSaleRequest defines the payload to cancel a sale.
type CancelSaleRequest struct {
	Reason       string `json:"reason" binding:"required"`
	RefundMethod string `json:"refundMethod" binding:"required,oneof=cash voucher none"`
}

// RefundLineRequest defines the payload to refund a single sale line.
type RefundLineRequest struct {
	RefundMethod string `json:"refundMethod" binding:"required,oneof=cash voucher"`
}

// ListSalesParams carries the query parameters for listing sales.
type ListSalesParams struct {
	From  *time.Time `form:"from" time_format:"2006-01-02"`
	To    *time.Time `form:"to" time_format:"2006-01-02"`
	Limit int        `form:"limit"`
}

// SaleLineResponse defines the data returned for one sale line.
type SaleLineResponse struct {
	SaleLineID  string          `json:"saleLineID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Condition   string          `json:"condition"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	DiscountPct decimal.Decimal `json:"discountPct"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID             string             `json:"saleID"`
	SaleDate           time.Time          `json:"saleDate"`
	ClientID           *string            `json:"clientID,omitempty"`
	Cancelled          bool               `json:"cancelled"`
	CancellationReason string             `json:"cancellationReason,omitempty"`
	GrossTotal         decimal.Decimal    `json:"grossTotal"`
	NetTotal           decimal.Decimal    `json:"netTotal"`
	FlatDiscount       decimal.Decimal    `json:"flatDiscount"`
	VoucherApplied     decimal.Decimal    `json:"voucherApplied"`
	Card               decimal.Decimal    `json:"card"`
	Cash               decimal.Decimal    `json:"cash"`
	Check              decimal.Decimal    `json:"check"`
	AltCard            decimal.Decimal    `json:"altCard"`
	Lines              []SaleLineResponse `json:"lines"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
}

// SalePreviewResponse is the reconciliation of a cart before payment.
type SalePreviewResponse struct {
	GrossTotal     decimal.Decimal `json:"grossTotal"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	TotalDiscounts decimal.Decimal `json:"totalDiscounts"`
	VoucherApplied decimal.Decimal `json:"voucherApplied"`
	AmountDue      decimal.Decimal `json:"amountDue"`

	HT0   decimal.Decimal `json:"ht0"`
	HT20  decimal.Decimal `json:"ht20"`
	TTC0  decimal.Decimal `json:"ttc0"`
	TTC20 decimal.Decimal `json:"ttc20"`
	TVA20 decimal.Decimal `json:"tva20"`

	ChangeDue      decimal.Decimal `json:"changeDue"`
	CashRetained   decimal.Decimal `json:"cashRetained"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
}

// ListSalesResponse bundles the sales of a period with its running totals.
type ListSalesResponse struct {
	Sales   []SaleResponse  `json:"sales"`
	Summary SummaryResponse `json:"summary"`
}

// SummaryResponse defines the aggregated figures for a set of sales.
type SummaryResponse struct {
	TotalTTC       decimal.Decimal `json:"totalTTC"`
	TotalHT        decimal.Decimal `json:"totalHT"`
	TotalTVA       decimal.Decimal `json:"totalTVA"`
	TotalCard      decimal.Decimal `json:"totalCard"`
	TotalAltCard   decimal.Decimal `json:"totalAltCard"`
	TotalCash      decimal.Decimal `json:"totalCash"`
	TotalCheck     decimal.Decimal `json:"totalCheck"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	TotalDiscounts decimal.Decimal `json:"totalDiscounts"`
	SaleCount      int             `json:"saleCount"`
	ClientCount    int             `json:"clientCount"`
	ItemCount      int             `json:"itemCount"`
	AverageTicket  decimal.Decimal `json:"averageTicket"`
}

// TicketResponse wraps a rendered fixed-width ticket.
type TicketResponse struct {
	Text string `json:"text"`
}

// ToSaleLineResponse converts a domain.SaleLine to SaleLineResponse DTO.
func ToSaleLineResponse(l *domain.SaleLine) SaleLineResponse {
	return SaleLineResponse{
		SaleLineID:  l.SaleLineID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Condition:   string(l.ProductCondition),
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		DiscountPct: l.DiscountPct,
	}
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = ToSaleLineResponse(&l)
	}
	return SaleResponse{
		SaleID:             s.SaleID,
		SaleDate:           s.SaleDate,
		ClientID:           s.ClientID,
		Cancelled:          s.Cancelled,
		CancellationReason: s.CancellationReason,
		GrossTotal:         s.GrossTotal,
		NetTotal:           s.NetTotal,
		FlatDiscount:       s.FlatDiscount,
		VoucherApplied:     s.VoucherApplied,
		Card:               s.Card,
		Cash:               s.Cash,
		Check:              s.Check,
		AltCard:            s.AltCard,
		Lines:              lines,
		CreatedAt:          s.CreatedAt,
		CreatedBy:          s.CreatedBy,
	}
}

// ToSaleResponses converts a slice of domain.Sale to []SaleResponse.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(&s)
	}
	return responses
}
