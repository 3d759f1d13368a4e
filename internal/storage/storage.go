package storage

import (
	"errors"
	"sync"

	"github.com/eugenenazirov/toppings/internal/toppings"
)

var (
	// ErrInvalidPizzas indicates the provided dataset is missing entirely.
	ErrInvalidPizzas = errors.New("pizzas must be a list, got null")
)

// Storage provides access to the pizza dataset used by the tally endpoints.
type Storage interface {
	GetPizzas() ([]toppings.Pizza, error)
	SetPizzas(pizzas []toppings.Pizza) error
}

// MemoryStorage keeps the dataset in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu     sync.RWMutex
	pizzas []toppings.Pizza
}

// NewMemoryStorage initialises storage with an empty dataset.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		pizzas: []toppings.Pizza{},
	}
}

// GetPizzas returns a deep copy of the stored dataset.
func (s *MemoryStorage) GetPizzas() ([]toppings.Pizza, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clonePizzas(s.pizzas), nil
}

// SetPizzas replaces the stored dataset with a copy of pizzas.
func (s *MemoryStorage) SetPizzas(pizzas []toppings.Pizza) error {
	if pizzas == nil {
		return ErrInvalidPizzas
	}
	cloned := clonePizzas(pizzas)

	s.mu.Lock()
	s.pizzas = cloned
	s.mu.Unlock()

	return nil
}

// Len reports how many pizzas are stored.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pizzas)
}

func clonePizzas(src []toppings.Pizza) []toppings.Pizza {
	out := make([]toppings.Pizza, len(src))
	for i, p := range src {
		list := make([]string, len(p.Toppings))
		copy(list, p.Toppings)
		out[i] = toppings.Pizza{Toppings: list}
	}
	return out
}
