package payment_queue

import (
	"context"
	"errors"

	"order-service/internal/entities"
)

var ErrQueueDisabled = errors.New("payment queue is not configured for this process")

// Disabled подставляется в процессы, которые не пересылают заказы в оплату.
type Disabled struct{}

func NewDisabled() Disabled {
	return Disabled{}
}

func (Disabled) Send(context.Context, entities.PaymentRequest) error {
	return ErrQueueDisabled
}
