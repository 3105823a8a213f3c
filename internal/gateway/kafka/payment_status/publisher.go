package payment_status

import (
	"context"
	"fmt"

	"order-service/internal/entities"
	"order-service/internal/messages"
)

type Publisher struct {
	sender sender
	topic  string
	clock  clock
}

func New(sender sender, topic string, clock clock) *Publisher {
	return &Publisher{
		sender: sender,
		topic:  topic,
		clock:  clock,
	}
}

// PublishPaymentStatus отправляет результат платежа в KAFKA_PAYMENT_STATUS_TOPIC с ключом id заказа.
func (p *Publisher) PublishPaymentStatus(ctx context.Context, event entities.PaymentStatusEvent) error {
	payload, err := messages.EncodePaymentStatus(event, p.clock.Now())
	if err != nil {
		return err
	}

	err = p.sender.Send(ctx, p.topic, event.OrderID, payload)
	if err != nil {
		return fmt.Errorf("gateway payment status, order %s: %w", event.OrderID, err)
	}
	return nil
}
