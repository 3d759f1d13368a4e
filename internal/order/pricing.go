package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Priced is a validated product. The concrete type is either ByWeight or ByQuantity.
type Priced interface {
	ProductName() string
	LinePrice() decimal.Decimal
	sealed()
}

// ByWeight is a product sold per pound.
type ByWeight struct {
	Name      string
	Weight    decimal.Decimal
	UnitPrice decimal.Decimal
}

func (p ByWeight) ProductName() string { return p.Name }

// LinePrice returns weight times unit price, unrounded.
func (p ByWeight) LinePrice() decimal.Decimal { return p.Weight.Mul(p.UnitPrice) }

func (ByWeight) sealed() {}

// ByQuantity is a product sold per item.
type ByQuantity struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (p ByQuantity) ProductName() string { return p.Name }

// LinePrice returns quantity times unit price.
func (p ByQuantity) LinePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Quantity)).Mul(p.UnitPrice)
}

func (ByQuantity) sealed() {}

// Classify validates p against its pricing method and returns the matching variant.
func Classify(p Product) (Priced, error) {
	switch p.PricingMethod {
	case PerPound:
		if p.Weight == nil || p.Weight.IsNegative() {
			return nil, fmt.Errorf("%w %q: Weight is missing", ErrInvalidProduct, p.Name)
		}
		return ByWeight{Name: p.Name, Weight: *p.Weight, UnitPrice: p.Price}, nil
	case PerItem:
		if p.Quantity == nil || *p.Quantity < 0 {
			return nil, fmt.Errorf("%w %q: Quantity is missing", ErrInvalidProduct, p.Name)
		}
		return ByQuantity{Name: p.Name, Quantity: *p.Quantity, UnitPrice: p.Price}, nil
	default:
		return nil, fmt.Errorf("%w %q for product %q", ErrUnknownPricingMethod, string(p.PricingMethod), p.Name)
	}
}
