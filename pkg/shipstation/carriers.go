package shipstation

import (
	"context"
	"net/http"
)

const carriersPath = "/v2/carriers"

// ListCarriers returns every carrier account connected to the API account.
func (c *Client) ListCarriers(ctx context.Context) ([]Carrier, error) {
	return fetchList[Carrier](ctx, c, "carriers.list", http.MethodGet, carriersPath, nil, nil)
}

// GetCarrier returns one carrier account.
func (c *Client) GetCarrier(ctx context.Context, carrierID string) (*Carrier, error) {
	return fetch[Carrier](ctx, c, "carriers.get", http.MethodGet, resourcePath(carriersPath, carrierID), nil, nil)
}
