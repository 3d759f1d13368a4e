package order

import "errors"

var (
	// ErrInvalidProduct is returned when a product lacks the field its pricing method needs.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrUnknownPricingMethod is returned for a pricing method other than PerPound or PerItem.
	ErrUnknownPricingMethod = errors.New("unknown pricing method")
)
