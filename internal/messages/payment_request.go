package messages

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"order-service/internal/entities"
)

// PaymentRequest - тело сообщения в очереди RABBITMQ_PAYMENT_QUEUE.
type PaymentRequest struct {
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customerEmail"`
	Description   string          `json:"description"`
}

func EncodePaymentRequest(req entities.PaymentRequest) ([]byte, error) {
	payload, err := json.Marshal(PaymentRequest{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod.String(),
		Currency:      req.Currency.String(),
		CustomerEmail: req.CustomerEmail,
		Description:   req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("encode payment request: %w", err)
	}
	return payload, nil
}

func DecodePaymentRequest(data []byte) (entities.PaymentRequest, error) {
	var msg PaymentRequest
	err := json.Unmarshal(data, &msg)
	if err != nil {
		return entities.PaymentRequest{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	return entities.PaymentRequest{
		OrderID:       msg.OrderID,
		Amount:        msg.Amount,
		PaymentMethod: entities.PaymentMethodType(msg.PaymentMethod),
		Currency:      entities.CurrencyType(msg.Currency),
		CustomerEmail: msg.CustomerEmail,
		Description:   msg.Description,
	}, nil
}
