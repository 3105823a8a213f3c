package entities

import "time"

type Customer struct {
	ID          string
	Document    string
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth time.Time
	PhoneNumber string
	Address     Address
}

func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		ID:          c.ID,
		Document:    c.Document,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		DateOfBirth: c.DateOfBirth,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}
