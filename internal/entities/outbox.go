package entities

import "time"

type OutboxMessage struct {
	ID          string
	AggregateID string
	Topic       string
	Key         string
	Payload     []byte
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
