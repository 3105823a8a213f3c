package outbox_relay

import (
	"context"
	"time"

	"order-service/internal/service/outbox"
	"order-service/pkg/logger"
)

// maxPassesPerTick ограничивает дренаж очереди за один тик.
const maxPassesPerTick = 10

type Relay interface {
	RelayOnce(ctx context.Context) (outbox.RelayResult, error)
}

type OutboxRelay struct {
	log       logger.Logger
	relay     Relay
	interval  time.Duration
	batchSize int
}

func NewOutboxRelay(log logger.Logger, relay Relay, interval time.Duration, batchSize int) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		relay:     relay,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do повторяет проходы, пока relay возвращает полные пачки.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	var total outbox.RelayResult
	for range maxPassesPerTick {
		result, err := o.relay.RelayOnce(ctxWithTimeout)
		if err != nil {
			return err
		}

		total.Delivered += result.Delivered
		total.Failed += result.Failed
		total.Deferred += result.Deferred

		if result.Failed > 0 || result.Delivered+result.Deferred < o.batchSize {
			break
		}
	}

	if total.Failed > 0 {
		o.log.With(
			logger.NewField("delivered", total.Delivered),
			logger.NewField("failed", total.Failed),
			logger.NewField("deferred", total.Deferred),
		).Warn("outbox relay tick finished with failures")
	}

	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
