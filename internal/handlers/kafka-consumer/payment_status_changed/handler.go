package payment_status_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"order-service/internal/entities"
	"order-service/internal/messages"
	orderservice "order-service/internal/service/order"
	"order-service/pkg/logger"
	retrierconfig "order-service/pkg/retrier"
	"order-service/pkg/retrier/backoff_adapter"
)

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = 500 * time.Millisecond
	retryMaxElapsedTime  = 5 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2
	retryMaxRetries      = 3
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	retrier                  retrierconfig.Retrier
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_status_changed"))

	return &Handler{
		orderService: orderService,
		log:          handlerLog,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: retryInitialInterval,
			MaxInterval:     retryMaxInterval,
			MaxElapsedTime:  retryMaxElapsedTime,
			Randomization:   retryRandomization,
			Multiplier:      retryMultiplier,
			MaxRetries:      retryMaxRetries,
			ShouldRetry:     isTransient,
		}),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing применяет итог платежа к заказу.
// Возвращает true, если сообщение не подтверждено и ConsumeClaim нужно прервать:
// после перезапуска сессии оно будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := messages.DecodePaymentStatus(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	var order *entities.Order
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var updateErr error
		order, updateErr = h.orderService.UpdateOrderStatus(ctx, event.OrderID, event.Status.String())
		return updateErr
	})
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case isTransient(err):
			errLog.Error("payment.status.changed handler retries exhausted, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrInvalidRequest):
			errLog.Warn("payment.status.changed handler invalid payment status")

		case errors.Is(err, orderservice.ErrNotFound):
			errLog.Warn("payment.status.changed handler order not found")

		case errors.Is(err, orderservice.ErrInvalidTransition):
			// повторная доставка уже применённого итога попадает сюда
			errLog.Warn("payment.status.changed handler transition rejected")

		default:
			// статус сохранён, не отправилось только событие
			errLog.Error("payment.status.changed handler failed to publish order event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("version", order.Version),
	).Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

// isTransient - ошибки, после которых запись заказа не изменилась и повтор имеет смысл.
func isTransient(err error) bool {
	return errors.Is(err, orderservice.ErrConflict) || errors.Is(err, orderservice.ErrPersistenceFailure)
}
