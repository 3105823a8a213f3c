package payment_requested

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-service/internal/messages"
	"order-service/internal/pkg/rabbitmq"
	"order-service/internal/service/payment"
	"order-service/pkg/logger"
)

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_requested"))

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

// Handle обрабатывает запрос на оплату. Неразборчивые и невалидные запросы
// отбрасываются, при ошибке публикации итога сообщение возвращается в очередь.
func (h *Handler) Handle(ctx context.Context, delivery amqp.Delivery) rabbitmq.Decision {
	ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
	defer cancel()

	request, err := messages.DecodePaymentRequest(delivery.Body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("delivery_tag", delivery.DeliveryTag),
		).Error("payment.requested handler received bad message")
		return rabbitmq.Reject
	}

	msgLog := h.log.With(
		logger.NewField("order", request.OrderID),
		logger.NewField("delivery_tag", delivery.DeliveryTag),
		logger.NewField("redelivered", delivery.Redelivered),
	)

	msgLog.Info("payment.requested processing")

	event, err := h.paymentService.Process(ctx, request)
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, payment.ErrInvalidPaymentRequest):
			errLog.Warn("payment.requested handler invalid payment request")
			return rabbitmq.Reject

		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("payment.requested handler context cancelled, message will be redelivered")
			return rabbitmq.Requeue

		default:
			errLog.Error("payment.requested handler failed to publish payment status")
			return rabbitmq.Requeue
		}
	}

	msgLog.With(
		logger.NewField("status", event.Status.String()),
	).Info("payment.requested: processed")

	return rabbitmq.Ack
}
