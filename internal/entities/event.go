package entities

import "time"

type PurchaseEventType string

const (
	PurchaseCompleted PurchaseEventType = "PurchaseCompleted"
	PurchaseCanceled  PurchaseEventType = "PurchaseCanceled"
)

func (t PurchaseEventType) String() string {
	return string(t)
}

const EventSource = "order-service"

type PurchaseEvent struct {
	EventType  PurchaseEventType
	Source     string
	OrderID    string
	VehicleID  string
	OccurredAt time.Time
}
