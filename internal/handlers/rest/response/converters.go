package response

import (
	"github.com/AlekSi/pointer"

	"order-service/internal/entities"
	"order-service/internal/generated/dto"
)

const moneyPlaces = 2

func Order(o *entities.Order) dto.Order {
	items := make([]dto.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.LineItem{
			VehicleId: item.VehicleID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(moneyPlaces),
			LineTotal: item.LineTotal.StringFixed(moneyPlaces),
			Model:     item.Model,
			Brand:     item.Brand,
			Color:     item.Color,
			Year:      item.Year,
		})
	}

	return dto.Order{
		Id:         o.ID,
		Customer:   customer(o.Customer),
		Items:      items,
		TotalPrice: o.TotalPrice.StringFixed(moneyPlaces),
		Status:     dto.OrderStatus(o.Status),
		Version:    o.Version,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for i := range orders {
		res = append(res, Order(&orders[i]))
	}
	return res
}

func customer(c entities.CustomerSnapshot) dto.Customer {
	res := dto.Customer{
		Id:          c.ID,
		Document:    c.Document,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address: dto.Address{
			Street:      c.Address.Street,
			HouseNumber: c.Address.HouseNumber,
			City:        c.Address.City,
			State:       c.Address.State,
			PostalCode:  c.Address.PostalCode,
			Country:     c.Address.Country,
		},
	}
	if !c.DateOfBirth.IsZero() {
		res.DateOfBirth = pointer.To(c.DateOfBirth)
	}
	return res
}
