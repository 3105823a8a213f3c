package payment_queue

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-service/internal/entities"
	"order-service/internal/messages"
)

const contentTypeJSON = "application/json"

type PaymentQueue struct {
	ch         publisher
	exchange   string
	routingKey string
	clock      clock
}

func New(ch publisher, exchange, routingKey string, clock clock) *PaymentQueue {
	return &PaymentQueue{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		clock:      clock,
	}
}

// Send кладёт запрос на оплату в exchange как persistent сообщение.
func (q *PaymentQueue) Send(ctx context.Context, request entities.PaymentRequest) error {
	body, err := messages.EncodePaymentRequest(request)
	if err != nil {
		return err
	}

	err = q.ch.PublishWithContext(ctx, q.exchange, q.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    request.OrderID,
			Timestamp:    q.clock.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("gateway payment queue, order %s: %w", request.OrderID, err)
	}
	return nil
}
