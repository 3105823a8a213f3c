package outbox

import "errors"

var (
	ErrDuplicateMessage = errors.New("outbox message already exists")
	ErrMessageNotFound  = errors.New("outbox message not found")
)
