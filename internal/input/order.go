package input

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/toppings/internal/order"
)

// OrderDocument is the wire form of an order.
type OrderDocument struct {
	Customer string            `json:"customer" yaml:"customer"`
	Products []ProductDocument `json:"products" yaml:"products"`
}

// ProductDocument is the wire form of a product. Amounts decode straight into
// decimals so they never pass through float64. Weight and Quantity are
// pointers so that an absent field can be told apart from zero.
type ProductDocument struct {
	Name          string           `json:"name" yaml:"name"`
	Price         decimal.Decimal  `json:"price" yaml:"price"`
	Weight        *decimal.Decimal `json:"weight,omitempty" yaml:"weight,omitempty"`
	Quantity      *int             `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	PricingMethod string           `json:"pricingMethod" yaml:"pricingMethod"`
}

// Order is a decoded order ready for order.Process.
type Order struct {
	Customer string
	Products []order.Product
}

// Order converts the document into order products.
func (d OrderDocument) Order() Order {
	products := make([]order.Product, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, p.Product())
	}
	return Order{Customer: d.Customer, Products: products}
}

// Product converts the wire form into an order.Product.
func (p ProductDocument) Product() order.Product {
	product := order.Product{
		Name:          p.Name,
		Price:         p.Price,
		PricingMethod: order.PricingMethod(p.PricingMethod),
	}
	if p.Weight != nil {
		w := *p.Weight
		product.Weight = &w
	}
	if p.Quantity != nil {
		q := *p.Quantity
		product.Quantity = &q
	}
	return product
}

// DecodeOrder reads a single order document.
func DecodeOrder(r io.Reader, format Format) (Order, error) {
	var doc OrderDocument
	if err := decode(r, format, &doc); err != nil {
		return Order{}, err
	}
	return doc.Order(), nil
}

// LoadOrder reads an order from path, choosing the format from its extension.
func LoadOrder(path string) (Order, error) {
	var doc OrderDocument
	if err := load(path, &doc); err != nil {
		return Order{}, err
	}
	return doc.Order(), nil
}
