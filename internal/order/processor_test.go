package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func weight(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func quantity(v int) *int {
	return &v
}

func TestProcess(t *testing.T) {
	t.Parallel()

	products := []Product{
		{Name: "Pulled Pork", Price: decimal.RequireFromString("6.99"), Weight: weight("0.5"), PricingMethod: PerPound},
		{Name: "Coke", Price: decimal.RequireFromString("3"), Quantity: quantity(2), PricingMethod: PerItem},
	}

	result, err := Process("Bob", products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Customer != "Bob" {
		t.Fatalf("expected customer Bob, got %s", result.Customer)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
	if !result.Lines[0].Price.Equal(decimal.RequireFromString("3.495")) {
		t.Fatalf("expected pulled pork price 3.495, got %s", result.Lines[0].Price)
	}
	if !result.Lines[1].Price.Equal(decimal.RequireFromString("6")) {
		t.Fatalf("expected coke price 6, got %s", result.Lines[1].Price)
	}
	if !result.Total.Equal(decimal.RequireFromString("9.495")) {
		t.Fatalf("expected total 9.495, got %s", result.Total)
	}
	if got := FormatCurrency(result.Total); got != "$9.50" {
		t.Fatalf("expected total display $9.50, got %s", got)
	}

	wantSummary := "Pulled Pork: $3.50\nCoke: $6.00"
	if result.Summary != wantSummary {
		t.Fatalf("expected summary %q, got %q", wantSummary, result.Summary)
	}
}

func TestProcess_MissingWeightAbortsOrder(t *testing.T) {
	t.Parallel()

	products := []Product{
		{Name: "Coke", Price: decimal.RequireFromString("3"), Quantity: quantity(2), PricingMethod: PerItem},
		{Name: "Brisket", Price: decimal.RequireFromString("12.5"), PricingMethod: PerPound},
	}

	result, err := Process("Alice", products)
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
	if !strings.Contains(err.Error(), "Weight is missing") {
		t.Fatalf("expected error to mention missing weight, got %v", err)
	}
	if !result.Total.IsZero() || len(result.Lines) != 0 {
		t.Fatalf("expected no partial result, got %+v", result)
	}
}

func TestProcess_EmptyOrder(t *testing.T) {
	t.Parallel()

	result, err := Process("Nobody", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", result.Total)
	}
	if result.Summary != "" {
		t.Fatalf("expected empty summary, got %q", result.Summary)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("2.25")

	tests := []struct {
		name     string
		product  Product
		wantErr  error
		wantText string
		want     Priced
	}{
		{
			name:    "PerPound",
			product: Product{Name: "Ribs", Price: price, Weight: weight("2"), PricingMethod: PerPound},
			want:    ByWeight{Name: "Ribs", Weight: decimal.RequireFromString("2"), UnitPrice: price},
		},
		{
			name:    "PerItem",
			product: Product{Name: "Roll", Price: price, Quantity: quantity(3), PricingMethod: PerItem},
			want:    ByQuantity{Name: "Roll", Quantity: 3, UnitPrice: price},
		},
		{
			name:    "ZeroQuantityAllowed",
			product: Product{Name: "Roll", Price: price, Quantity: quantity(0), PricingMethod: PerItem},
			want:    ByQuantity{Name: "Roll", Quantity: 0, UnitPrice: price},
		},
		{
			name:     "MissingWeight",
			product:  Product{Name: "Ribs", Price: price, Quantity: quantity(1), PricingMethod: PerPound},
			wantErr:  ErrInvalidProduct,
			wantText: "Weight is missing",
		},
		{
			name:     "NegativeWeight",
			product:  Product{Name: "Ribs", Price: price, Weight: weight("-1"), PricingMethod: PerPound},
			wantErr:  ErrInvalidProduct,
			wantText: "Weight is missing",
		},
		{
			name:     "MissingQuantity",
			product:  Product{Name: "Roll", Price: price, Weight: weight("1"), PricingMethod: PerItem},
			wantErr:  ErrInvalidProduct,
			wantText: "Quantity is missing",
		},
		{
			name:     "NegativeQuantity",
			product:  Product{Name: "Roll", Price: price, Quantity: quantity(-2), PricingMethod: PerItem},
			wantErr:  ErrInvalidProduct,
			wantText: "Quantity is missing",
		},
		{
			name:     "UnknownMethod",
			product:  Product{Name: "Gift", Price: price, Quantity: quantity(1), PricingMethod: "PerBox"},
			wantErr:  ErrUnknownPricingMethod,
			wantText: "PerBox",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tc.product)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				if !strings.Contains(err.Error(), tc.wantText) {
					t.Fatalf("expected error to contain %q, got %v", tc.wantText, err)
				}
				return
			}
			if got.ProductName() != tc.want.ProductName() || !got.LinePrice().Equal(tc.want.LinePrice()) {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
