// Package order computes order totals for products priced by weight or by item.
package order
