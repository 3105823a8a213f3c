package payment

import (
	"context"
	"fmt"

	"order-service/internal/entities"
	"order-service/pkg/logger"
)

type Service struct {
	log       serviceLogger
	publisher StatusPublisher
}

func New(log serviceLogger, publisher StatusPublisher) *Service {
	return &Service{
		log:       log,
		publisher: publisher,
	}
}

// Process рассчитывает платёж и публикует итог для сервиса заказов:
// COMPLETED при одобрении, CANCELED при отказе. Запрос без id заказа
// отклоняется без публикации, адресовать итог некому.
func (s *Service) Process(ctx context.Context, request entities.PaymentRequest) (entities.PaymentStatusEvent, error) {
	if request.OrderID == "" {
		PaymentsProcessedTotal.WithLabelValues("invalid").Inc()
		return entities.PaymentStatusEvent{}, fmt.Errorf("%w: empty order id", ErrInvalidPaymentRequest)
	}

	log := s.log.With(
		logger.NewField("operation", "ProcessPayment"),
		logger.NewField("order", request.OrderID),
	)

	event := entities.PaymentStatusEvent{
		OrderID: request.OrderID,
		Status:  entities.OrderCompleted,
	}

	reason := rejectionReason(request)
	if reason != "" {
		event.Status = entities.OrderCanceled
		log.Warn("payment rejected", logger.NewField("reason", reason))
	}

	err := s.publisher.PublishPaymentStatus(ctx, event)
	if err != nil {
		PaymentsProcessedTotal.WithLabelValues("error").Inc()
		log.Error("failed to publish payment status", logger.NewField("error", err))
		return entities.PaymentStatusEvent{}, fmt.Errorf("%w: order %s: %w", ErrPublicationFailure, request.OrderID, err)
	}

	if event.Status == entities.OrderCompleted {
		PaymentsProcessedTotal.WithLabelValues("approved").Inc()
	} else {
		PaymentsProcessedTotal.WithLabelValues("rejected").Inc()
	}

	log.Info("payment processed", logger.NewField("status", event.Status.String()))
	return event, nil
}

func rejectionReason(request entities.PaymentRequest) string {
	switch {
	case !request.Amount.IsPositive():
		return "non-positive amount"
	case request.PaymentMethod != entities.PaymentMethodCreditCard:
		return fmt.Sprintf("unsupported payment method %q", request.PaymentMethod)
	case request.Currency != entities.CurrencyBRL:
		return fmt.Sprintf("unsupported currency %q", request.Currency)
	default:
		return ""
	}
}
