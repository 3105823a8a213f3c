package order

import (
	"github.com/AlekSi/pointer"

	"order-service/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID: o.ID,
		Customer: entities.CustomerSnapshot{
			ID:          o.CustomerID,
			Document:    o.CustomerDocument,
			FirstName:   o.CustomerFirstName,
			LastName:    o.CustomerLastName,
			Email:       o.CustomerEmail,
			PhoneNumber: o.CustomerPhone,
			Address: entities.Address{
				Street:      o.AddressStreet,
				HouseNumber: o.AddressHouseNumber,
				City:        o.AddressCity,
				State:       o.AddressState,
				PostalCode:  o.AddressPostalCode,
				Country:     o.AddressCountry,
			},
		},
		Items:      make([]entities.LineItem, 0, len(items)),
		TotalPrice: o.TotalPrice,
		Status:     entities.OrderStatusType(o.Status),
		Version:    o.Version,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.CustomerBirthDate != nil {
		order.Customer.DateOfBirth = *o.CustomerBirthDate
	}

	for _, item := range items {
		order.Items = append(order.Items, entities.LineItem{
			VehicleID: item.VehicleID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
			Model:     item.Model,
			Brand:     item.Brand,
			Color:     item.Color,
			Year:      item.Year,
		})
	}
	return order
}

func FromDomain(o *entities.Order) (*OrderDB, []OrderItemDB) {
	if o == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:                 o.ID,
		CustomerID:         o.Customer.ID,
		CustomerDocument:   o.Customer.Document,
		CustomerFirstName:  o.Customer.FirstName,
		CustomerLastName:   o.Customer.LastName,
		CustomerEmail:      o.Customer.Email,
		CustomerPhone:      o.Customer.PhoneNumber,
		AddressStreet:      o.Customer.Address.Street,
		AddressHouseNumber: o.Customer.Address.HouseNumber,
		AddressCity:        o.Customer.Address.City,
		AddressState:       o.Customer.Address.State,
		AddressPostalCode:  o.Customer.Address.PostalCode,
		AddressCountry:     o.Customer.Address.Country,
		TotalPrice:         o.TotalPrice,
		Status:             o.Status.String(),
		Version:            o.Version,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if !o.Customer.DateOfBirth.IsZero() {
		orderDB.CustomerBirthDate = pointer.To(o.Customer.DateOfBirth)
	}

	items := make([]OrderItemDB, 0, len(o.Items))
	for i, item := range o.Items {
		items = append(items, OrderItemDB{
			OrderID:   o.ID,
			Position:  i,
			VehicleID: item.VehicleID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
			Model:     item.Model,
			Brand:     item.Brand,
			Color:     item.Color,
			Year:      item.Year,
		})
	}
	return orderDB, items
}
