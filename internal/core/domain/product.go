package domain

import "github.com/shopspring/decimal"

// ProductCondition drives the VAT bucket: new items carry 20% VAT,
// second-hand (margin scheme) items carry 0%.
type ProductCondition string

const (
	ConditionNew  ProductCondition = "new"
	ConditionUsed ProductCondition = "used"
)

// Product is the catalog entry referenced by sale lines. Read-mostly from the
// point of view of the till; stock moves with the sale lifecycle.
type Product struct {
	ProductID    string           `json:"productID"`
	Barcode      string           `json:"barcode"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Condition    ProductCondition `json:"condition"`
	Price        decimal.Decimal  `json:"price"`
	PromoPrice   *decimal.Decimal `json:"promoPrice,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	DepositPrice decimal.Decimal  `json:"depositPrice"` // owed to the consignor when sold
	Stock        int              `json:"stock"`
	OnDeposit    bool             `json:"onDeposit"` // consignment item
	ConsignorID  *string          `json:"consignorID,omitempty"`
	Sold         bool             `json:"sold"`
	AuditFields
}

// DisplayPrice returns the promo price when one is set, otherwise the
// catalog price.
func (p Product) DisplayPrice() decimal.Decimal {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}
