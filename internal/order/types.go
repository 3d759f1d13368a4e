package order

import "github.com/shopspring/decimal"

// PricingMethod selects how a product's line price is computed.
type PricingMethod string

const (
	// PerPound prices a product by weight times unit price.
	PerPound PricingMethod = "PerPound"
	// PerItem prices a product by quantity times unit price.
	PerItem PricingMethod = "PerItem"
)

// Product is an order line as received from the caller, before validation.
// Weight and Quantity are optional; which one is required depends on PricingMethod.
type Product struct {
	Name          string
	Price         decimal.Decimal
	Weight        *decimal.Decimal
	Quantity      *int
	PricingMethod PricingMethod
}

// Line is the priced outcome of a single product.
type Line struct {
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
	Summary string          `json:"summary"`
}

// Result is a fully priced order.
type Result struct {
	Customer string          `json:"customer"`
	Lines    []Line          `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Summary  string          `json:"summary"`
}
