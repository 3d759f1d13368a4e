package storage

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/eugenenazirov/toppings/internal/toppings"
)

func TestNewMemoryStorageStartsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetPizzas()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil dataset, got %v", got)
	}
	if store.Len() != 0 {
		t.Fatalf("expected length 0, got %d", store.Len())
	}
}

func TestSetPizzasStoresCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	input := []toppings.Pizza{{Toppings: []string{"cheese", "ham"}}}
	if err := store.SetPizzas(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutating the caller's slice must not leak into storage
	input[0].Toppings[0] = "pineapple"

	got, err := store.GetPizzas()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"cheese", "ham"}; !slices.Equal(got[0].Toppings, want) {
		t.Fatalf("expected %v, got %v", want, got[0].Toppings)
	}

	// ensure mutation safety on the way out as well
	got[0].Toppings[1] = "olive"
	again, err := store.GetPizzas()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].Toppings[1] != "ham" {
		t.Fatalf("expected defensive copy, got %v", again[0].Toppings)
	}
}

func TestSetPizzasRejectsNil(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetPizzas(nil); !errors.Is(err, ErrInvalidPizzas) {
		t.Fatalf("expected ErrInvalidPizzas, got %v", err)
	}
	if err := store.SetPizzas([]toppings.Pizza{}); err != nil {
		t.Fatalf("expected empty dataset to be accepted, got %v", err)
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			pizzas := []toppings.Pizza{{Toppings: []string{fmt.Sprintf("topping-%d", offset)}}}
			if err := store.SetPizzas(pizzas); err != nil {
				t.Errorf("SetPizzas failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetPizzas(); err != nil {
				t.Errorf("GetPizzas failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if got, err := store.GetPizzas(); err != nil || len(got) != 1 {
		t.Fatalf("unexpected final state: %v, %v", got, err)
	}
}
