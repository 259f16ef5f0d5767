package cart

import "context"

// Repository is one source of cart truth. LocalRepository serves guest
// sessions from the device store; RemoteRepository serves authenticated
// sessions from the storefront API. The service picks one per operation
// based on the caller's auth state.
type Repository interface {
	Fetch(ctx context.Context, ownerKey string) (*Cart, error)
	Add(ctx context.Context, ownerKey string, params AddItemParams) (*Cart, error)
	Update(ctx context.Context, ownerKey string, itemID string, quantity int) (*Cart, error)
	Remove(ctx context.Context, ownerKey string, itemID string) (*Cart, error)
	Clear(ctx context.Context, ownerKey string) error
	Count(ctx context.Context, ownerKey string) (int, error)
}

// RemoteAPI is the authenticated cart endpoint contract. Every call returns
// the authoritative server cart, which replaces local derived state. The
// caller's identity travels in ctx as a bearer token, not in the payload.
type RemoteAPI interface {
	FetchCart(ctx context.Context) (*Cart, error)
	AddItem(ctx context.Context, params AddItemParams) (*Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error)
	DeleteItem(ctx context.Context, itemID string) (*Cart, error)
	ClearCart(ctx context.Context) error
	CartCount(ctx context.Context) (int, error)
}
