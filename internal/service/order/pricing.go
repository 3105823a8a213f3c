package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"order-service/internal/entities"
)

// newLineItem фиксирует цену из каталога на момент создания заказа,
// позже она не пересчитывается.
func newLineItem(vehicle *entities.Vehicle, quantity int) entities.LineItem {
	return entities.LineItem{
		VehicleID: vehicle.ID,
		Quantity:  quantity,
		UnitPrice: vehicle.Price,
		LineTotal: vehicle.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Model:     vehicle.Model,
		Brand:     vehicle.Brand,
		Color:     vehicle.Color,
		Year:      vehicle.Year,
	}
}

func totalPrice(items []entities.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}

func newPaymentRequest(order *entities.Order) entities.PaymentRequest {
	return entities.PaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: entities.DefaultPaymentMethod,
		Currency:      entities.DefaultCurrency,
		CustomerEmail: order.Customer.Email,
		Amount:        order.TotalPrice,
		Description: fmt.Sprintf("Order %s - %s - %s %s",
			order.ID,
			order.Customer.DisplayName(),
			entities.DefaultCurrency,
			order.TotalPrice.StringFixed(2),
		),
	}
}
