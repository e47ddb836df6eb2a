package dto

import (
	"time"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDailyClosureRequest defines the payload to close a day. Date defaults
// to today when omitted.
type CreateDailyClosureRequest struct {
	Date        string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	CountedCash *decimal.Decimal `json:"countedCash,omitempty"` // defaults to the day's retained cash
}

// CreateMonthlyClosureRequest defines the payload to close a month.
type CreateMonthlyClosureRequest struct {
	Month string `json:"month" binding:"required,datetime=2006-01"`
}

// ClosureResponse defines the data returned for a closure.
type ClosureResponse struct {
	ClosureID string    `json:"closureID"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`

	TotalHT  decimal.Decimal `json:"totalHT"`
	TotalTVA decimal.Decimal `json:"totalTVA"`
	TotalTTC decimal.Decimal `json:"totalTTC"`

	HT0   decimal.Decimal `json:"ht0"`
	HT20  decimal.Decimal `json:"ht20"`
	TTC0  decimal.Decimal `json:"ttc0"`
	TTC20 decimal.Decimal `json:"ttc20"`
	TVA20 decimal.Decimal `json:"tva20"`

	TotalCard      decimal.Decimal `json:"totalCard"`
	TotalAltCard   decimal.Decimal `json:"totalAltCard"`
	TotalCash      decimal.Decimal `json:"totalCash"`
	TotalCheck     decimal.Decimal `json:"totalCheck"`
	TotalCollected decimal.Decimal `json:"totalCollected"`

	TotalDiscounts     decimal.Decimal `json:"totalDiscounts"`
	TotalCancellations decimal.Decimal `json:"totalCancellations"`
	TotalDeposits      decimal.Decimal `json:"totalDeposits"`

	SaleCount     int             `json:"saleCount"`
	ClientCount   int             `json:"clientCount"`
	ItemCount     int             `json:"itemCount"`
	AverageTicket decimal.Decimal `json:"averageTicket"`

	DrawerOpening     decimal.Decimal `json:"drawerOpening"`
	DrawerTheoretical decimal.Decimal `json:"drawerTheoretical"`
	DrawerCounted     decimal.Decimal `json:"drawerCounted"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToClosureResponse converts a domain.Closure to ClosureResponse DTO.
func ToClosureResponse(c *domain.Closure) ClosureResponse {
	return ClosureResponse{
		ClosureID:          c.ClosureID,
		Category:           string(c.Category),
		Date:               c.Date,
		TotalHT:            c.TotalHT,
		TotalTVA:           c.TotalTVA,
		TotalTTC:           c.TotalTTC,
		HT0:                c.HT0,
		HT20:               c.HT20,
		TTC0:               c.TTC0,
		TTC20:              c.TTC20,
		TVA20:              c.TVA20,
		TotalCard:          c.TotalCard,
		TotalAltCard:       c.TotalAltCard,
		TotalCash:          c.TotalCash,
		TotalCheck:         c.TotalCheck,
		TotalCollected:     c.TotalCollected,
		TotalDiscounts:     c.TotalDiscounts,
		TotalCancellations: c.TotalCancellations,
		TotalDeposits:      c.TotalDeposits,
		SaleCount:          c.SaleCount,
		ClientCount:        c.ClientCount,
		ItemCount:          c.ItemCount,
		AverageTicket:      c.AverageTicket,
		DrawerOpening:      c.DrawerOpening,
		DrawerTheoretical:  c.DrawerTheoretical,
		DrawerCounted:      c.DrawerCounted,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
	}
}

// ToClosureResponses converts a slice of domain.Closure to []ClosureResponse.
func ToClosureResponses(closures []domain.Closure) []ClosureResponse {
	responses := make([]ClosureResponse, len(closures))
	for i, c := range closures {
		responses[i] = ToClosureResponse(&c)
	}
	return responses
}
