package outbox

import (
	"context"
	"errors"
	"fmt"

	"order-service/pkg/logger"
)

type relayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type RelayConfig struct {
	BatchSize   int
	MaxAttempts int
}

// RelayResult - итог одного прохода relay.
type RelayResult struct {
	Delivered int
	Failed    int
	Deferred  int
}

type Relay struct {
	log       relayLogger
	store     MessageStore
	sender    Sender
	txManager TxManager
	clock     Clock
	cfg       RelayConfig
}

func NewRelay(log relayLogger, store MessageStore, sender Sender, txManager TxManager, clock Clock, cfg RelayConfig) *Relay {
	return &Relay{
		log:       log.With(logger.NewField("component", "outbox_relay")),
		store:     store,
		sender:    sender,
		txManager: txManager,
		clock:     clock,
		cfg:       cfg,
	}
}

// RelayOnce доставляет одну пачку в read committed транзакции.
// Доставка at-least-once: если отметка не закоммитилась, сообщение уйдёт повторно.
// После неудачи по ключу остальные сообщения этого ключа откладываются,
// чтобы события заказа не обгоняли друг друга.
func (r *Relay) RelayOnce(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := r.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		result = RelayResult{}

		pending, err := r.store.LockPending(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts)
		if err != nil {
			return fmt.Errorf("lock pending: %w", err)
		}

		blockedKeys := make(map[string]struct{})
		for _, msg := range pending {
			if _, blocked := blockedKeys[msg.Key]; blocked {
				result.Deferred++
				continue
			}

			sendErr := r.sender.Send(ctx, msg.Topic, msg.Key, msg.Payload)
			if sendErr != nil {
				if errors.Is(sendErr, context.Canceled) || errors.Is(sendErr, context.DeadlineExceeded) {
					return sendErr
				}

				r.log.Warn("outbox message delivery failed",
					logger.NewField("message", msg.ID),
					logger.NewField("order", msg.AggregateID),
					logger.NewField("attempt", msg.Attempts+1),
					logger.NewField("error", sendErr),
				)

				err = r.store.MarkFailed(ctx, msg.ID, sendErr.Error())
				if err != nil {
					return fmt.Errorf("mark failed %s: %w", msg.ID, err)
				}
				blockedKeys[msg.Key] = struct{}{}
				result.Failed++
				continue
			}

			err = r.store.MarkDelivered(ctx, msg.ID, r.clock.Now())
			if err != nil {
				return fmt.Errorf("mark delivered %s: %w", msg.ID, err)
			}
			result.Delivered++
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, fmt.Errorf("outbox relay: %w", err)
	}

	OutboxMessagesTotal.WithLabelValues("delivered").Add(float64(result.Delivered))
	OutboxMessagesTotal.WithLabelValues("failed").Add(float64(result.Failed))
	OutboxMessagesTotal.WithLabelValues("deferred").Add(float64(result.Deferred))

	if result.Delivered+result.Failed+result.Deferred > 0 {
		r.log.Info("outbox batch relayed",
			logger.NewField("delivered", result.Delivered),
			logger.NewField("failed", result.Failed),
			logger.NewField("deferred", result.Deferred),
		)
	}
	return result, nil
}
