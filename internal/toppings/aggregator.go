package toppings

import (
	"slices"
	"strconv"
	"strings"
)

// MaxGroups is the number of combinations reported by default.
const MaxGroups = 20

type tallyAggregator struct{}

// New creates the default Aggregator.
func New() Aggregator {
	return &tallyAggregator{}
}

func (a *tallyAggregator) Aggregate(pizzas []Pizza, limit int) ([]Group, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	groups, err := Groups(pizzas)
	if err != nil {
		return nil, err
	}
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// Groups tallies every distinct topping combination and returns all of them,
// most frequent first. Ties keep the reverse of first-seen order.
func Groups(pizzas []Pizza) ([]Group, error) {
	if pizzas == nil {
		return nil, ErrInvalidInput
	}

	groups := make([]Group, 0)
	lookup := make(map[string]int, len(pizzas))

	for _, pizza := range pizzas {
		sorted := sortedToppings(pizza.Toppings)
		key := groupKey(sorted)

		if idx, ok := lookup[key]; ok {
			groups[idx].Count++
			continue
		}
		lookup[key] = len(groups)
		groups = append(groups, Group{Toppings: sorted, Count: 1})
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		return a.Count - b.Count
	})
	slices.Reverse(groups)

	return groups, nil
}

func sortedToppings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	if len(out) > 1 {
		slices.Sort(out)
	}
	return out
}

// groupKey length-prefixes every topping so distinct lists never collide.
func groupKey(sorted []string) string {
	var b strings.Builder
	for _, t := range sorted {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}
