package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Process prices every product for customer. Validation runs over the whole
// order first, so any invalid product aborts it without a partial total.
func Process(customer string, products []Product) (Result, error) {
	priced := make([]Priced, 0, len(products))
	for i, p := range products {
		item, err := Classify(p)
		if err != nil {
			return Result{}, fmt.Errorf("product %d: %w", i, err)
		}
		priced = append(priced, item)
	}

	result := Result{
		Customer: customer,
		Lines:    make([]Line, 0, len(priced)),
		Total:    decimal.Zero,
	}
	summaries := make([]string, 0, len(priced))
	for _, item := range priced {
		price, summary := priceLine(item)
		result.Lines = append(result.Lines, Line{
			Product: item.ProductName(),
			Price:   price,
			Summary: summary,
		})
		result.Total = result.Total.Add(price)
		summaries = append(summaries, summary)
	}
	result.Summary = strings.Join(summaries, "\n")

	return result, nil
}

func priceLine(item Priced) (decimal.Decimal, string) {
	price := item.LinePrice()
	return price, fmt.Sprintf("%s: %s", item.ProductName(), FormatCurrency(price))
}
