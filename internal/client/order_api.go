package client

import (
	"context"
	"net/http"

	"dudhiya-app/internal/order"
)

// OrderAPI exposes the order endpoints. It satisfies order.API.
type OrderAPI struct {
	c *Client
}

func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{c: c}
}

func (a *OrderAPI) CreateOrder(ctx context.Context, req order.CreateOrderRequest) (*order.Order, error) {
	var o order.Order
	if err := a.c.do(ctx, http.MethodPost, "/api/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (a *OrderAPI) GetOrders(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	if err := a.c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *OrderAPI) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	var o order.Order
	if err := a.c.do(ctx, http.MethodGet, "/api/orders/"+orderID, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
