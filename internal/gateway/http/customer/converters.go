package customer

import (
	"fmt"
	"time"

	"order-service/internal/entities"
)

// сервис клиентов отдаёт дату рождения то с зоной, то без
var birthDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func toDomain(resp *customerResponse, requestedID string) (*entities.Customer, error) {
	birthDate, err := parseBirthDate(resp.DateOfBirth)
	if err != nil {
		return nil, err
	}

	id := resp.ID
	if id == "" {
		id = requestedID
	}

	return &entities.Customer{
		ID:          id,
		Document:    resp.Document,
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		Email:       resp.Email,
		DateOfBirth: birthDate,
		PhoneNumber: resp.PhoneNumber,
		Address: entities.Address{
			Street:      resp.Street,
			HouseNumber: resp.HouseNumber,
			City:        resp.City,
			State:       resp.State,
			PostalCode:  resp.PostalCode,
			Country:     resp.Country,
		},
	}, nil
}

func parseBirthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range birthDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported dateOfBirth format %q", raw)
}
