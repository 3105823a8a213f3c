package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// Sender публикует готовые байты в топик через синхронный producer.
type Sender struct {
	producer sarama.SyncProducer
}

func NewSender(producer sarama.SyncProducer) *Sender {
	return &Sender{producer: producer}
}

// Send возвращается после подтверждения брокером (acks=all).
// SyncProducer не принимает контекст, поэтому он проверяется до отправки.
func (s *Sender) Send(ctx context.Context, topic, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}
	return nil
}
