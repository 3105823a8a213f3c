package jsonclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("resource not found")

	// не ретраятся
	ErrInvalidRequest  = errors.New("invalid gateway request")
	ErrInvalidResponse = errors.New("invalid gateway response")
)

// StatusError - ответ с неуспешным кодом, кроме 404.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d %s", e.Code, http.StatusText(e.Code))
}
