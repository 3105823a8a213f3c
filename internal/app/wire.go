//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"

	customerGateway "order-service/internal/gateway/http/customer"
	paymentStatusGateway "order-service/internal/gateway/kafka/payment_status"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/factory/clock"
	"order-service/internal/pkg/factory/order_id"
	"order-service/internal/pkg/kafka"
	orderRepo "order-service/internal/repository/order"
	outboxRepo "order-service/internal/repository/outbox"
	orderService "order-service/internal/service/order"
	outboxService "order-service/internal/service/outbox"
	paymentService "order-service/internal/service/payment"
	"order-service/pkg/logger"
	"order-service/pkg/tx"
)

var orderSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideOrderRepository,
	provideOutboxRepository,
	provideKafkaSender,
	provideHTTPClient,
	provideCatalogLookup,
	provideCustomerGateway,
	providePurchaseEventPublisher,
	provideOutboxPublisher,
	provideEventPublisher,
	provideOrderService,
	clock.New,
	order_id.New,

	wire.Bind(new(orderService.OrderStore), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.CustomerLookup), new(*customerGateway.CustomerGateway)),
	wire.Bind(new(orderService.Clock), new(*clock.UTCClock)),
	wire.Bind(new(orderService.IDGenerator), new(*order_id.UUIDFactory)),

	wire.Bind(new(outboxService.MessageStore), new(*outboxRepo.Repository)),
	wire.Bind(new(outboxService.Clock), new(*clock.UTCClock)),
	wire.Bind(new(outboxService.IDGenerator), new(*order_id.UUIDFactory)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	ch *amqp.Channel,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		orderSet,
		providePaymentQueue,

		provideOutboxRelay,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(outboxService.Sender), new(*kafka.Sender)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

// InitializePaymentStatusWorkerApp для Kafka воркера (cmd/worker-payment-status)
func InitializePaymentStatusWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*PaymentStatusWorkerApp, error) {
	wire.Build(
		orderSet,
		provideDisabledPaymentQueue,

		wire.Struct(new(PaymentStatusWorkerApp), "*"),
	)
	return nil, nil
}

// InitializePaymentProcessorApp для RabbitMQ воркера (cmd/worker-payment-processor)
func InitializePaymentProcessorApp(
	log logger.Logger,
	producer sarama.SyncProducer,
	cfg *config.Config,
) *PaymentProcessorApp {
	wire.Build(
		provideKafkaSender,
		clock.New,
		providePaymentStatusPublisher,
		providePaymentService,

		wire.Bind(new(paymentService.StatusPublisher), new(*paymentStatusGateway.Publisher)),

		wire.Struct(new(PaymentProcessorApp), "*"),
	)
	return nil
}
