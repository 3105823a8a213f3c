package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         string
	Customer   CustomerSnapshot
	Items      []LineItem
	TotalPrice decimal.Decimal
	Status     OrderStatusType
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

type LineItem struct {
	VehicleID string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Model     string
	Brand     string
	Color     string
	Year      int
}

// CustomerSnapshot - копия данных покупателя на момент создания заказа.
type CustomerSnapshot struct {
	ID          string
	Document    string
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth time.Time
	PhoneNumber string
	Address     Address
}

func (c CustomerSnapshot) DisplayName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type Address struct {
	Street      string
	HouseNumber string
	City        string
	State       string
	PostalCode  string
	Country     string
}

type OrderStatusType string

const (
	OrderCreated        OrderStatusType = "CREATED"
	OrderPendingPayment OrderStatusType = "PENDING_PAYMENT"
	OrderCompleted      OrderStatusType = "COMPLETED"
	OrderCanceled       OrderStatusType = "CANCELED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// ParseOrderStatus принимает только значения из перечисления, регистр важен.
func ParseOrderStatus(raw string) (OrderStatusType, bool) {
	status := OrderStatusType(raw)
	switch status {
	case OrderCreated, OrderPendingPayment, OrderCompleted, OrderCanceled:
		return status, true
	}
	return "", false
}

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderCreated:        {OrderPendingPayment, OrderCanceled},
	OrderPendingPayment: {OrderCompleted, OrderCanceled},
}

// CanTransitionTo сообщает, разрешён ли переход. COMPLETED и CANCELED
// терминальные, переход в тот же статус запрещён.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatusType) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type OrderCreate struct {
	CustomerID string
	Items      []LineItemCreate
}

type LineItemCreate struct {
	VehicleID string
	Quantity  int
}
