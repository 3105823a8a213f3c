//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_test
package payment_status

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
