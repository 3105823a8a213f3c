package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                 string
	CustomerID         string
	CustomerDocument   string
	CustomerFirstName  string
	CustomerLastName   string
	CustomerEmail      string
	CustomerBirthDate  *time.Time
	CustomerPhone      string
	AddressStreet      string
	AddressHouseNumber string
	AddressCity        string
	AddressState       string
	AddressPostalCode  string
	AddressCountry     string
	TotalPrice         decimal.Decimal
	Status             string
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

type OrderItemDB struct {
	OrderID   string
	Position  int
	VehicleID string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Model     string
	Brand     string
	Color     string
	Year      int
}
