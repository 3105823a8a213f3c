//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"order-service/internal/entities"
)

type MessageStore interface {
	Insert(ctx context.Context, message *entities.OutboxMessage) error
	LockPending(ctx context.Context, limit, maxAttempts int) ([]entities.OutboxMessage, error)
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error
	MarkFailed(ctx context.Context, id string, cause string) error
}

type Sender interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}
