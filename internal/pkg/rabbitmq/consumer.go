package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-service/pkg/logger"
)

var ErrDeliveriesClosed = errors.New("rabbitmq deliveries channel closed")

// Decision - что сделать с сообщением после обработки.
type Decision int

const (
	Ack Decision = iota
	Requeue
	Reject // сообщение не обрабатываемо, в очередь не возвращается
)

type DeliveryHandler interface {
	Handle(ctx context.Context, delivery amqp.Delivery) Decision
}

// ConsumeChannel - часть amqp.Channel, нужная потребителю.
type ConsumeChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type Consumer struct {
	log      logger.Logger
	ch       ConsumeChannel
	queue    string
	tag      string
	prefetch int
	handler  DeliveryHandler
}

func NewConsumer(log logger.Logger, ch ConsumeChannel, queue, tag string, prefetch int, handler DeliveryHandler) *Consumer {
	return &Consumer{
		log: log.With(
			logger.NewField("queue", queue),
			logger.NewField("consumer_tag", tag),
		),
		ch:       ch,
		queue:    queue,
		tag:      tag,
		prefetch: prefetch,
		handler:  handler,
	}
}

// Start читает очередь до отмены контекста (блокирующий вызов).
func (c *Consumer) Start(ctx context.Context) error {
	err := c.ch.Qos(c.prefetch, 0, false)
	if err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming from %s: %w", c.queue, err)
	}

	c.log.Info("RabbitMQ consumer starting")

	for {
		select {
		case <-ctx.Done():
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrDeliveriesClosed
			}
			c.settle(delivery, c.handler.Handle(ctx, delivery))
		}
	}
}

func (c *Consumer) Close() error {
	return c.ch.Close()
}

func (c *Consumer) settle(delivery amqp.Delivery, decision Decision) {
	var err error
	switch decision {
	case Ack:
		err = delivery.Ack(false)
	case Requeue:
		err = delivery.Nack(false, true)
	default:
		err = delivery.Nack(false, false)
	}

	if err != nil {
		c.log.Error("failed to settle delivery",
			logger.NewField("delivery_tag", delivery.DeliveryTag),
			logger.NewField("decision", int(decision)),
			logger.NewField("error", err),
		)
	}
}
