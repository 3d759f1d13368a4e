// Package toppings groups pizzas by their topping combination and reports the
// most popular combinations. Two pizzas belong to the same group when their
// topping lists are equal after sorting, so duplicate toppings count.
package toppings
