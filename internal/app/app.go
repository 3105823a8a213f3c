package app

import (
	"context"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"

	catalogGateway "order-service/internal/gateway/http/catalog"
	customerGateway "order-service/internal/gateway/http/customer"
	"order-service/internal/gateway/http/jsonclient"
	paymentStatusGateway "order-service/internal/gateway/kafka/payment_status"
	purchaseEventGateway "order-service/internal/gateway/kafka/purchase_event"
	"order-service/internal/gateway/rabbitmq/payment_queue"
	staticCatalog "order-service/internal/gateway/static/catalog"
	"order-service/internal/handlers/rest/order_get"
	"order-service/internal/handlers/rest/order_payment_post"
	"order-service/internal/handlers/rest/order_post"
	"order-service/internal/handlers/rest/order_status_put"
	"order-service/internal/handlers/rest/orders_get"
	"order-service/internal/handlers/tasks/outbox_relay"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/factory/clock"
	"order-service/internal/pkg/kafka"
	orderRepo "order-service/internal/repository/order"
	outboxRepo "order-service/internal/repository/outbox"
	orderService "order-service/internal/service/order"
	outboxService "order-service/internal/service/outbox"
	paymentService "order-service/internal/service/payment"
	"order-service/pkg/background"
	"order-service/pkg/logger"
	"order-service/pkg/querier"
	"order-service/pkg/tx"
)

const (
	catalogServiceName  = "catalog"
	customerServiceName = "customer"
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_status_put.Service
	order_payment_post.Service
}

// PaymentStatusWorkerApp - зависимости cmd/worker-payment-status.
type PaymentStatusWorkerApp struct {
	OrderService *orderService.Service
}

// PaymentProcessorApp - зависимости cmd/worker-payment-processor.
type PaymentProcessorApp struct {
	PaymentService *paymentService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier, txManager *tx.Manager) *orderRepo.Repository {
	return orderRepo.New(querier, txManager)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideKafkaSender(producer sarama.SyncProducer) *kafka.Sender {
	return kafka.NewSender(producer)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Gateways.RequestTimeout}
}

// provideCatalogLookup выбирает встроенный каталог при CATALOG_STATIC_ENABLED.
func provideCatalogLookup(cfg *config.Config, httpClient *http.Client) orderService.CatalogLookup {
	if cfg.Gateways.CatalogStatic {
		return staticCatalog.New()
	}
	return catalogGateway.New(jsonclient.New(catalogServiceName, cfg.Gateways.CatalogURL, httpClient))
}

func provideCustomerGateway(cfg *config.Config, httpClient *http.Client) *customerGateway.CustomerGateway {
	return customerGateway.New(jsonclient.New(customerServiceName, cfg.Gateways.CustomerURL, httpClient))
}

func providePurchaseEventPublisher(
	sender *kafka.Sender,
	cfg *config.Config,
	clk *clock.UTCClock,
) *purchaseEventGateway.Publisher {
	return purchaseEventGateway.New(sender, cfg.Kafka.PurchaseEventsTopic, clk)
}

func provideOutboxPublisher(
	store outboxService.MessageStore,
	cfg *config.Config,
	clk outboxService.Clock,
	ids outboxService.IDGenerator,
) *outboxService.Publisher {
	return outboxService.NewPublisher(store, cfg.Kafka.PurchaseEventsTopic, clk, ids)
}

// provideEventPublisher при EVENTS_OUTBOX_ENABLED пишет события в outbox,
// иначе отправляет их в Kafka сразу.
func provideEventPublisher(
	cfg *config.Config,
	direct *purchaseEventGateway.Publisher,
	outboxPublisher *outboxService.Publisher,
) orderService.EventPublisher {
	if cfg.Outbox.Enabled {
		return outboxPublisher
	}
	return direct
}

func providePaymentQueue(ch *amqp.Channel, cfg *config.Config, clk *clock.UTCClock) orderService.PaymentQueue {
	return payment_queue.New(ch, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.PaymentRoutingKey, clk)
}

// provideDisabledPaymentQueue - воркер статусов платежей не пересылает заказы в оплату.
func provideDisabledPaymentQueue() orderService.PaymentQueue {
	return payment_queue.NewDisabled()
}

func provideOrderService(
	log logger.Logger,
	store orderService.OrderStore,
	catalog orderService.CatalogLookup,
	customers orderService.CustomerLookup,
	events orderService.EventPublisher,
	payments orderService.PaymentQueue,
	clk orderService.Clock,
	ids orderService.IDGenerator,
) *orderService.Service {
	return orderService.New(log, store, catalog, customers, events, payments, clk, ids)
}

func provideOutboxRelay(
	log logger.Logger,
	store outboxService.MessageStore,
	sender outboxService.Sender,
	txManager outboxService.TxManager,
	clk outboxService.Clock,
	cfg *config.Config,
) *outboxService.Relay {
	return outboxService.NewRelay(log, store, sender, txManager, clk, outboxService.RelayConfig{
		BatchSize:   cfg.Outbox.BatchSize,
		MaxAttempts: cfg.Outbox.MaxAttempts,
	})
}

func provideTaskList(cfg *config.Config, log logger.Logger, relay *outboxService.Relay) []background.Task {
	if !cfg.Outbox.Enabled {
		return nil
	}
	return []background.Task{
		outbox_relay.NewOutboxRelay(log, relay, cfg.Outbox.RelayInterval, cfg.Outbox.BatchSize),
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func providePaymentStatusPublisher(
	sender *kafka.Sender,
	cfg *config.Config,
	clk *clock.UTCClock,
) *paymentStatusGateway.Publisher {
	return paymentStatusGateway.New(sender, cfg.Kafka.PaymentStatusTopic, clk)
}

func providePaymentService(log logger.Logger, publisher paymentService.StatusPublisher) *paymentService.Service {
	return paymentService.New(log, publisher)
}
