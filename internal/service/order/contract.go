//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"order-service/internal/entities"
	"order-service/pkg/logger"
)

type OrderStore interface {
	Create(ctx context.Context, order *entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	// UpdateStatus пишет статус только если версия в базе совпадает с order.Version.
	UpdateStatus(ctx context.Context, id string, order *entities.Order) (*entities.Order, error)
}

type CatalogLookup interface {
	GetVehicleByID(ctx context.Context, id string) (*entities.Vehicle, error)
}

type CustomerLookup interface {
	GetCustomerByID(ctx context.Context, id string) (*entities.Customer, error)
}

type EventPublisher interface {
	PublishPurchaseCompleted(ctx context.Context, orderID, vehicleID string) error
	PublishPurchaseCanceled(ctx context.Context, orderID, vehicleID string) error
}

type PaymentQueue interface {
	Send(ctx context.Context, request entities.PaymentRequest) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
