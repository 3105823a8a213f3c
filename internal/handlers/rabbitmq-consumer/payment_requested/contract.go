//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_requested_test
package payment_requested

import (
	"context"

	"order-service/internal/entities"
	"order-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Process(ctx context.Context, request entities.PaymentRequest) (entities.PaymentStatusEvent, error)
}
