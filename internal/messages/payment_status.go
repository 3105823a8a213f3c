package messages

import (
	"encoding/json"
	"fmt"
	"time"

	"order-service/internal/entities"
)

const (
	PaymentStatusDetailType = "PaymentStatusChanged"
	PaymentProcessorSource  = "payment-processor"
)

// PaymentStatusEnvelope - конверт с результатом платежа, полезная нагрузка в detail.
type PaymentStatusEnvelope struct {
	DetailType string               `json:"detail-type"`
	Source     string               `json:"source"`
	Time       time.Time            `json:"time"`
	Detail     *PaymentStatusDetail `json:"detail,omitempty"`
}

type PaymentStatusDetail struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func EncodePaymentStatus(event entities.PaymentStatusEvent, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(PaymentStatusEnvelope{
		DetailType: PaymentStatusDetailType,
		Source:     PaymentProcessorSource,
		Time:       at.UTC(),
		Detail: &PaymentStatusDetail{
			OrderID: event.OrderID,
			Status:  event.Status.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode payment status: %w", err)
	}
	return payload, nil
}

// DecodePaymentStatus не проверяет значение статуса: это делает сервис заказов.
func DecodePaymentStatus(data []byte) (entities.PaymentStatusEvent, error) {
	var envelope PaymentStatusEnvelope
	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return entities.PaymentStatusEvent{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if envelope.Detail == nil {
		return entities.PaymentStatusEvent{}, ErrMissingDetail
	}

	return entities.PaymentStatusEvent{
		OrderID: envelope.Detail.OrderID,
		Status:  entities.OrderStatusType(envelope.Detail.Status),
	}, nil
}
