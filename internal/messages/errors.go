package messages

import "errors"

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrMissingDetail    = errors.New("message has no detail")
)
