package client

import (
	"context"
	"net/http"

	"dudhiya-app/internal/delivery"
)

// DeliveryAPI fetches the delivery-charge configuration. It satisfies
// delivery.ConfigSource.
type DeliveryAPI struct {
	c *Client
}

func NewDeliveryAPI(c *Client) *DeliveryAPI {
	return &DeliveryAPI{c: c}
}

// GetDeliveryCharge returns the configured rule, or nil when the server has
// none. The resolver treats nil as free delivery.
func (a *DeliveryAPI) GetDeliveryCharge(ctx context.Context) (*delivery.Charge, error) {
	var charge delivery.Charge
	if err := a.c.do(ctx, http.MethodGet, "/api/config/delivery-charge", nil, &charge); err != nil {
		return nil, err
	}
	if charge.Amount == 0 && charge.MinPurchaseAmount == 0 {
		return nil, nil
	}
	return &charge, nil
}
