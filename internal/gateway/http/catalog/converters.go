package catalog

import "order-service/internal/entities"

func toDomain(resp *vehicleResponse, requestedID string) *entities.Vehicle {
	id := resp.ID
	if id == "" {
		id = requestedID
	}

	return &entities.Vehicle{
		ID:    id,
		Model: resp.Model,
		Brand: resp.Brand,
		Color: resp.Color,
		Year:  resp.Year,
		Price: resp.Price,
	}
}
