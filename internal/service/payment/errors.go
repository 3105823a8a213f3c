package payment

import "errors"

var (
	ErrInvalidPaymentRequest = errors.New("invalid payment request")
	ErrPublicationFailure    = errors.New("payment status publication failure")
)
