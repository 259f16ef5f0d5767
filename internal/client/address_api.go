package client

import (
	"context"
	"net/http"

	"dudhiya-app/internal/address"
)

// AddressAPI exposes the address-book endpoints. It satisfies address.API.
type AddressAPI struct {
	c *Client
}

func NewAddressAPI(c *Client) *AddressAPI {
	return &AddressAPI{c: c}
}

func (a *AddressAPI) ListAddresses(ctx context.Context) ([]address.Address, error) {
	var addrs []address.Address
	if err := a.c.do(ctx, http.MethodGet, "/api/addresses", nil, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

func (a *AddressAPI) CreateAddress(ctx context.Context, in address.Input) (*address.Address, error) {
	var addr address.Address
	if err := a.c.do(ctx, http.MethodPost, "/api/addresses", in, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}
