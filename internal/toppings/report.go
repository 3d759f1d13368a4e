package toppings

import (
	"fmt"
	"io"
	"strings"
)

// FormatGroup renders a group as "<count>\t<topping>, <topping>".
func FormatGroup(g Group) string {
	return fmt.Sprintf("%d\t%s", g.Count, strings.Join(g.Toppings, ", "))
}

// WriteReport writes one formatted line per group.
func WriteReport(w io.Writer, groups []Group) error {
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, FormatGroup(g)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
