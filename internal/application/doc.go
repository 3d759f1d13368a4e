// Package application provides application initialization and dependency wiring.
// It creates the pizza storage, topping aggregator, metrics, handlers, routers
// and the HTTP server, keeping the main package focused on CLI parsing.
package application
