package messages

import (
	"encoding/json"
	"fmt"
	"time"

	"order-service/internal/entities"
)

// PurchaseEvent - JSON событие покупки в топике KAFKA_PURCHASE_EVENTS_TOPIC, ключ - id заказа.
type PurchaseEvent struct {
	EventType string    `json:"eventType"`
	Source    string    `json:"source"`
	OrderID   string    `json:"orderId"`
	VehicleID string    `json:"vehicleId"`
	Timestamp time.Time `json:"timestamp"`
}

func EncodePurchaseEvent(event entities.PurchaseEvent) ([]byte, error) {
	payload, err := json.Marshal(PurchaseEvent{
		EventType: event.EventType.String(),
		Source:    event.Source,
		OrderID:   event.OrderID,
		VehicleID: event.VehicleID,
		Timestamp: event.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode purchase event: %w", err)
	}
	return payload, nil
}

func DecodePurchaseEvent(data []byte) (entities.PurchaseEvent, error) {
	var msg PurchaseEvent
	err := json.Unmarshal(data, &msg)
	if err != nil {
		return entities.PurchaseEvent{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	return entities.PurchaseEvent{
		EventType:  entities.PurchaseEventType(msg.EventType),
		Source:     msg.Source,
		OrderID:    msg.OrderID,
		VehicleID:  msg.VehicleID,
		OccurredAt: msg.Timestamp,
	}, nil
}
