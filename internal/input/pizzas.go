package input

import (
	"io"

	"github.com/eugenenazirov/toppings/internal/toppings"
)

// DecodePizzas reads an array of {"toppings": [...]} objects.
// A document that is literally null yields a nil slice.
func DecodePizzas(r io.Reader, format Format) ([]toppings.Pizza, error) {
	var pizzas []toppings.Pizza
	if err := decode(r, format, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}

// LoadPizzas reads a pizza list from path, choosing the format from its extension.
func LoadPizzas(path string) ([]toppings.Pizza, error) {
	var pizzas []toppings.Pizza
	if err := load(path, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}
