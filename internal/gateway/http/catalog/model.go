package catalog

import "github.com/shopspring/decimal"

type vehicleResponse struct {
	ID    string          `json:"id"`
	Model string          `json:"model"`
	Brand string          `json:"brand"`
	Color string          `json:"color"`
	Year  int             `json:"year"`
	Price decimal.Decimal `json:"price"`
}
