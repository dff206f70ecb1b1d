package session

import "errors"

var (
	ErrLookupInFlight   = errors.New("a lookup is already in flight")
	ErrSubmitting       = errors.New("a purchase is already in flight")
	ErrPresenting       = errors.New("confirmation must be dismissed first")
	ErrNoPendingProduct = errors.New("no pending product to append")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrNotPresenting    = errors.New("no confirmation to dismiss")
)
