// Package errors provides custom error types for inventory operations.
package errors

import "errors"

// ErrDuplicateProduct is returned when a product with the same name already exists.
var ErrDuplicateProduct = errors.New("product already exists")

// ErrProductNotFound is returned when no product has the requested name.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a sale asks for more units than are in stock.
var ErrInsufficientStock = errors.New("not enough stock")

// ErrInvalidInput is returned for values the inventory refuses, such as negative quantities.
var ErrInvalidInput = errors.New("invalid input")
