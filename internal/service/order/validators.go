package order

import (
	"fmt"
	"strings"

	"order-service/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateOrderCreate(req *entities.OrderCreate) error {
	if req == nil {
		return ErrEmptyRequest
	}
	if !isValidID(req.CustomerID) {
		return ErrInvalidCustomer
	}
	if len(req.Items) == 0 {
		return ErrEmptyItems
	}

	for i, item := range req.Items {
		if !isValidID(item.VehicleID) {
			return fmt.Errorf("item %d: %w", i, ErrInvalidVehicle)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: %w", i, ErrInvalidQuantity)
		}
	}
	return nil
}
