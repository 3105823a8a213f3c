package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"order-service/internal/entities"
	"order-service/internal/service/order"
)

// Catalog - встроенный справочник автомобилей для локального запуска без сервиса каталога.
type Catalog struct {
	vehicles map[string]entities.Vehicle
}

func New() *Catalog {
	return NewWithVehicles(defaultVehicles())
}

func NewWithVehicles(vehicles []entities.Vehicle) *Catalog {
	byID := make(map[string]entities.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &Catalog{vehicles: byID}
}

func (c *Catalog) GetVehicleByID(_ context.Context, id string) (*entities.Vehicle, error) {
	vehicle, ok := c.vehicles[id]
	if !ok {
		return nil, order.ErrVehicleNotFound
	}
	return &vehicle, nil
}

func defaultVehicles() []entities.Vehicle {
	return []entities.Vehicle{
		{
			ID:    "6f2b0b8d-33f5-4ea0-8e2f-f03b27e4a731",
			Model: "Model S",
			Brand: "Tesla",
			Color: "Red",
			Year:  2020,
			Price: decimal.NewFromInt(20000),
		},
		{
			ID:    "a63f0975-dcbe-44b5-b813-91ed144ba4f5",
			Model: "Mustang",
			Brand: "Ford",
			Color: "Blue",
			Year:  2021,
			Price: decimal.NewFromInt(30000),
		},
		{
			ID:    "82d9c3e8-75bd-4a44-9df1-61b2a78653c4",
			Model: "Civic",
			Brand: "Honda",
			Color: "Black",
			Year:  2019,
			Price: decimal.NewFromInt(25000),
		},
	}
}
