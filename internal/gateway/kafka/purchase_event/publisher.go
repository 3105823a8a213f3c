package purchase_event

import (
	"context"
	"fmt"

	"order-service/internal/entities"
	"order-service/internal/messages"
)

// Publisher отправляет события покупки напрямую в Kafka, без outbox.
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

func (p *Publisher) PublishPurchaseCompleted(ctx context.Context, orderID, vehicleID string) error {
	return p.publish(ctx, entities.PurchaseCompleted, orderID, vehicleID)
}

func (p *Publisher) PublishPurchaseCanceled(ctx context.Context, orderID, vehicleID string) error {
	return p.publish(ctx, entities.PurchaseCanceled, orderID, vehicleID)
}

func (p *Publisher) publish(ctx context.Context, eventType entities.PurchaseEventType, orderID, vehicleID string) error {
	payload, err := messages.EncodePurchaseEvent(entities.PurchaseEvent{
		EventType:  eventType,
		Source:     entities.EventSource,
		OrderID:    orderID,
		VehicleID:  vehicleID,
		OccurredAt: p.clock.Now(),
	})
	if err != nil {
		return err
	}

	// ключ - id заказа, все события заказа попадают в одну партицию
	err = p.sender.Send(ctx, p.topic, orderID, payload)
	if err != nil {
		PurchaseEventsPublishedTotal.WithLabelValues(eventType.String(), "error").Inc()
		return fmt.Errorf("gateway purchase event, %s for order %s: %w", eventType, orderID, err)
	}

	PurchaseEventsPublishedTotal.WithLabelValues(eventType.String(), "ok").Inc()
	return nil
}
