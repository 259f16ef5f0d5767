package cart

import "context"

// RemoteRepository adapts the authenticated cart API to the Repository
// interface. The server derives the owner from the bearer token in ctx, so
// ownerKey is only used for lock scoping upstream and ignored here. Server
// responses are authoritative; nothing is mutated locally on failure.
type RemoteRepository struct {
	api RemoteAPI
}

func NewRemoteRepository(api RemoteAPI) *RemoteRepository {
	return &RemoteRepository{api: api}
}

func (r *RemoteRepository) Fetch(ctx context.Context, _ string) (*Cart, error) {
	return r.api.FetchCart(ctx)
}

func (r *RemoteRepository) Add(ctx context.Context, _ string, params AddItemParams) (*Cart, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return r.api.AddItem(ctx, params)
}

func (r *RemoteRepository) Update(ctx context.Context, ownerKey string, itemID string, quantity int) (*Cart, error) {
	// The zero-quantity-removes policy holds regardless of mode, so it is
	// applied here too instead of trusting the server to do it.
	if quantity <= 0 {
		return r.Remove(ctx, ownerKey, itemID)
	}
	return r.api.UpdateItem(ctx, itemID, quantity)
}

func (r *RemoteRepository) Remove(ctx context.Context, _ string, itemID string) (*Cart, error) {
	return r.api.DeleteItem(ctx, itemID)
}

func (r *RemoteRepository) Clear(ctx context.Context, _ string) error {
	return r.api.ClearCart(ctx)
}

func (r *RemoteRepository) Count(ctx context.Context, _ string) (int, error) {
	return r.api.CartCount(ctx)
}
