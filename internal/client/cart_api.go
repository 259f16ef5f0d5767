package client

import (
	"context"
	"net/http"

	"dudhiya-app/internal/cart"
)

// CartAPI exposes the authenticated cart endpoints. It satisfies
// cart.RemoteAPI.
type CartAPI struct {
	c *Client
}

func NewCartAPI(c *Client) *CartAPI {
	return &CartAPI{c: c}
}

type addItemRequest struct {
	ProductID string  `json:"product_id"`
	SizeID    *string `json:"size_id,omitempty"`
	Quantity  int     `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type countResponse struct {
	Count int `json:"count"`
}

func (a *CartAPI) FetchCart(ctx context.Context) (*cart.Cart, error) {
	var c cart.Cart
	if err := a.c.do(ctx, http.MethodGet, "/api/cart", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CartAPI) AddItem(ctx context.Context, params cart.AddItemParams) (*cart.Cart, error) {
	req := addItemRequest{
		ProductID: params.ProductID,
		SizeID:    params.SizeID,
		Quantity:  params.Quantity,
	}
	var c cart.Cart
	if err := a.c.do(ctx, http.MethodPost, "/api/cart/items", req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CartAPI) UpdateItem(ctx context.Context, itemID string, quantity int) (*cart.Cart, error) {
	var c cart.Cart
	err := a.c.do(ctx, http.MethodPatch, "/api/cart/items/"+itemID, updateItemRequest{Quantity: quantity}, &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CartAPI) DeleteItem(ctx context.Context, itemID string) (*cart.Cart, error) {
	var c cart.Cart
	if err := a.c.do(ctx, http.MethodDelete, "/api/cart/items/"+itemID, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CartAPI) ClearCart(ctx context.Context) error {
	return a.c.do(ctx, http.MethodDelete, "/api/cart", nil, nil)
}

func (a *CartAPI) CartCount(ctx context.Context) (int, error) {
	var resp countResponse
	if err := a.c.do(ctx, http.MethodGet, "/api/cart/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
