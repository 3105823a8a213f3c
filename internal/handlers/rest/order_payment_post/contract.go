//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_post_test
package order_payment_post

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
	GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
	ForwardToPayment(ctx context.Context, order *entities.Order) error
}
