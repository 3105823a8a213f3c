package entities

import "github.com/shopspring/decimal"

type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "CREDIT_CARD"
)

const DefaultPaymentMethod = PaymentMethodCreditCard

func (t PaymentMethodType) String() string {
	return string(t)
}

type CurrencyType string

const (
	CurrencyBRL CurrencyType = "BRL"
)

const DefaultCurrency = CurrencyBRL

func (t CurrencyType) String() string {
	return string(t)
}

type PaymentRequest struct {
	OrderID       string
	PaymentMethod PaymentMethodType
	Currency      CurrencyType
	CustomerEmail string
	Amount        decimal.Decimal
	Description   string
}

// PaymentStatusEvent - результат обработки платежа, который применяется к заказу.
type PaymentStatusEvent struct {
	OrderID string
	Status  OrderStatusType
}
