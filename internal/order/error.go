package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrNoServices         = errors.New("item must select at least one service")
	ErrUnknownItem        = errors.New("unknown clothing item")
	ErrServiceUnavailable = errors.New("service not available for this item")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrOrderTerminal     = errors.New("order already delivered or cancelled")

	// -- Authorization --
	ErrForbidden         = errors.New("not allowed to act on this order")
	ErrNotDeliveryPerson = errors.New("assignee is not a delivery person")
)
