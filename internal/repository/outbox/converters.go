package outbox

import "order-service/internal/entities"

func ToDomain(m *MessageDB) *entities.OutboxMessage {
	if m == nil {
		return nil
	}
	return &entities.OutboxMessage{
		ID:          m.ID,
		AggregateID: m.AggregateID,
		Topic:       m.Topic,
		Key:         m.Key,
		Payload:     m.Payload,
		Attempts:    m.Attempts,
		LastError:   m.LastError,
		CreatedAt:   m.CreatedAt,
		DeliveredAt: m.DeliveredAt,
	}
}
