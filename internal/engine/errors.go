package engine

import "errors"

// All engine errors are recoverable and local to one operation: the session
// state is left untouched when an operation fails.
var (
	// ErrStockExceeded - the operation would reserve more than the
	// currently available stock.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	// ErrInvalidQuantity - a non-positive quantity was supplied.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidMonetaryValue - a negative price, a negative discount, or a
	// percentage outside [0,100]. Rejected rather than coerced to zero so
	// data-entry mistakes are not silently masked.
	ErrInvalidMonetaryValue = errors.New("invalid monetary value")

	// ErrProductNotFound - the named product is not in the session catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrLineNotFound - no invoice line with the given ID.
	ErrLineNotFound = errors.New("invoice line not found")
)
