//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"order-service/internal/entities"
	"order-service/pkg/logger"
)

type StatusPublisher interface {
	PublishPaymentStatus(ctx context.Context, event entities.PaymentStatusEvent) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
