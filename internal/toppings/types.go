package toppings

// Pizza is a single ordered pizza described by its topping names.
// Order is irrelevant for grouping; duplicates and case are significant.
type Pizza struct {
	Toppings []string `json:"toppings" yaml:"toppings"`
}

// Group is one distinct topping combination and how many pizzas used it.
type Group struct {
	Toppings []string `json:"toppings"`
	Count    int      `json:"count"`
}

// Aggregator describes the behaviour required from a topping tally.
type Aggregator interface {
	Aggregate(pizzas []Pizza, limit int) ([]Group, error)
}
