package outbox

import "time"

type MessageDB struct {
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
