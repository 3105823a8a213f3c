package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"order-service/internal/entities"
	"order-service/internal/gateway/http/jsonclient"
	"order-service/internal/service/order"
)

const methodGetVehicle = "GetVehicle"

type CatalogGateway struct {
	client client
}

func New(client client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

// GetVehicleByID читает GET /vehicles/{id}. Цена берётся на момент запроса.
func (g *CatalogGateway) GetVehicleByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	var resp vehicleResponse

	err := g.client.GetJSON(ctx, methodGetVehicle, "/vehicles/"+url.PathEscape(id), &resp)
	if errors.Is(err, jsonclient.ErrNotFound) {
		return nil, order.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, get vehicle %s: %w", id, err)
	}

	return toDomain(&resp, id), nil
}
