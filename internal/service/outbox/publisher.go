package outbox

import (
	"context"
	"fmt"

	"order-service/internal/entities"
	"order-service/internal/messages"
)

// Publisher сохраняет событие покупки в outbox вместо прямой отправки в Kafka.
// Доставкой занимается Relay.
type Publisher struct {
	store MessageStore
	topic string
	clock Clock
	ids   IDGenerator
}

func NewPublisher(store MessageStore, topic string, clock Clock, ids IDGenerator) *Publisher {
	return &Publisher{
		store: store,
		topic: topic,
		clock: clock,
		ids:   ids,
	}
}

func (p *Publisher) PublishPurchaseCompleted(ctx context.Context, orderID, vehicleID string) error {
	return p.enqueue(ctx, entities.PurchaseCompleted, orderID, vehicleID)
}

func (p *Publisher) PublishPurchaseCanceled(ctx context.Context, orderID, vehicleID string) error {
	return p.enqueue(ctx, entities.PurchaseCanceled, orderID, vehicleID)
}

func (p *Publisher) enqueue(ctx context.Context, eventType entities.PurchaseEventType, orderID, vehicleID string) error {
	now := p.clock.Now()

	payload, err := messages.EncodePurchaseEvent(entities.PurchaseEvent{
		EventType:  eventType,
		Source:     entities.EventSource,
		OrderID:    orderID,
		VehicleID:  vehicleID,
		OccurredAt: now,
	})
	if err != nil {
		return err
	}

	err = p.store.Insert(ctx, &entities.OutboxMessage{
		ID:          p.ids.NewID(),
		AggregateID: orderID,
		Topic:       p.topic,
		Key:         orderID,
		Payload:     payload,
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("outbox, store %s for order %s: %w", eventType, orderID, err)
	}

	OutboxEnqueuedTotal.WithLabelValues(eventType.String()).Inc()
	return nil
}
