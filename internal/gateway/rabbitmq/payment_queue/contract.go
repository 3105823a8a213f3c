//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_queue_test
package payment_queue

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type clock interface {
	Now() time.Time
}
