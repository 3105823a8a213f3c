package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")

	ErrEmptyRequest    = fmt.Errorf("%w: empty request", ErrInvalidRequest)
	ErrInvalidOrderID  = fmt.Errorf("%w: invalid order id", ErrInvalidRequest)
	ErrInvalidCustomer = fmt.Errorf("%w: invalid customer id", ErrInvalidRequest)
	ErrEmptyItems      = fmt.Errorf("%w: order must contain at least one item", ErrInvalidRequest)
	ErrInvalidVehicle  = fmt.Errorf("%w: invalid vehicle id", ErrInvalidRequest)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid status", ErrInvalidRequest)
)

var (
	ErrNotFound = errors.New("not found")

	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrVehicleNotFound  = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
)

var (
	ErrPersistenceFailure       = errors.New("persistence failure")
	ErrPublicationFailure       = errors.New("publication failure")
	ErrPaymentForwardingFailure = errors.New("payment forwarding failure")
	ErrLookupFailure            = errors.New("lookup failure")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("order was modified concurrently")
)
