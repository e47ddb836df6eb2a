package models

import "github.com/shopspring/decimal"

// Product is the persistence shape of a catalog entry.
type Product struct {
	ProductID     string           `json:"productID" db:"product_id"`
	Barcode       string           `json:"barcode" db:"barcode"`
	Name          string           `json:"name" db:"name"`
	Category      string           `json:"category" db:"category"`
	Condition     string           `json:"condition" db:"condition"`
	Price         decimal.Decimal  `json:"price" db:"price"`
	PromoPrice    *decimal.Decimal `json:"promoPrice" db:"promo_price"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice" db:"purchase_price"`
	DepositPrice  decimal.Decimal  `json:"depositPrice" db:"deposit_price"`
	Stock         int              `json:"stock" db:"stock"`
	OnDeposit     bool             `json:"onDeposit" db:"on_deposit"`
	ConsignorID   *string          `json:"consignorID" db:"consignor_id"`
	Sold          bool             `json:"sold" db:"sold"`
	AuditFields
}
