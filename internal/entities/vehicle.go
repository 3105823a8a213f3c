package entities

import "github.com/shopspring/decimal"

type Vehicle struct {
	ID    string
	Model string
	Brand string
	Color string
	Year  int
	Price decimal.Decimal
}
