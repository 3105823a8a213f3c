//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=purchase_event_test
package purchase_event

import (
	"context"
	"time"
)

type sender interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

type clock interface {
	Now() time.Time
}
