package customer

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"order-service/internal/entities"
	"order-service/internal/gateway/http/jsonclient"
	"order-service/internal/service/order"
)

const methodGetCustomer = "GetCustomer"

type CustomerGateway struct {
	client client
}

func New(client client) *CustomerGateway {
	return &CustomerGateway{client: client}
}

func (g *CustomerGateway) GetCustomerByID(ctx context.Context, id string) (*entities.Customer, error) {
	var resp customerResponse

	err := g.client.GetJSON(ctx, methodGetCustomer, "/customers/"+url.PathEscape(id), &resp)
	if errors.Is(err, jsonclient.ErrNotFound) {
		return nil, order.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gateway customer, get customer %s: %w", id, err)
	}

	customer, err := toDomain(&resp, id)
	if err != nil {
		return nil, fmt.Errorf("gateway customer, customer %s: %w", id, err)
	}
	return customer, nil
}
