//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_changed_test
package payment_status_changed

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
	UpdateOrderStatus(ctx context.Context, id, status string) (*entities.Order, error)
}
