package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-service/internal/pkg/config"
	"order-service/pkg/logger"
	retrierconfig "order-service/pkg/retrier"
	"order-service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2

	exchangeKind = "topic"
)

type Connection struct {
	log  logger.Logger
	conn *amqp.Connection
	cfg  *config.RabbitMQ
}

// NewConnection подключается к брокеру с ретраями и объявляет exchange, очередь платежей и binding.
func NewConnection(ctx context.Context, log logger.Logger, cfg *config.RabbitMQ) (*Connection, error) {
	rmqLog := log.With(
		logger.NewField("exchange", cfg.Exchange),
		logger.NewField("queue", cfg.PaymentQueue),
	)

	conn, err := dial(ctx, rmqLog, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection: %w", err)
	}

	c := &Connection{
		log:  rmqLog,
		conn: conn,
		cfg:  cfg,
	}

	err = c.declareTopology()
	if err != nil {
		closeErr := conn.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("declare topology: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("declare topology: %w", err)
	}

	return c, nil
}

// Channel открывает новый канал. Каналы amqp не потокобезопасны,
// поэтому у каждого потребителя и публикатора свой.
func (c *Connection) Channel() (*amqp.Channel, error) {
	if c.conn == nil || c.conn.IsClosed() {
		return nil, errors.New("rabbitmq connection is closed")
	}
	return c.conn.Channel()
}

func (c *Connection) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

func (c *Connection) declareTopology() error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			c.log.Warn("failed to close topology channel", logger.NewField("error", err))
		}
	}()

	err = ch.ExchangeDeclare(
		c.cfg.Exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", c.cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(
		c.cfg.PaymentQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", c.cfg.PaymentQueue, err)
	}

	err = ch.QueueBind(q.Name, c.cfg.PaymentRoutingKey, c.cfg.Exchange, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue %s to exchange %s: %w", q.Name, c.cfg.Exchange, err)
	}

	c.log.With(
		logger.NewField("routing_key", c.cfg.PaymentRoutingKey),
	).Info("RabbitMQ topology declared")
	return nil
}

func dial(ctx context.Context, log logger.Logger, url string) (*amqp.Connection, error) {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var (
		attempt uint64
		conn    *amqp.Connection
	)
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting RabbitMQ connection")

		var err error
		conn, err = amqp.Dial(url)
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("RabbitMQ connection failed after retries")
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("RabbitMQ connection established")
	return conn, nil
}
