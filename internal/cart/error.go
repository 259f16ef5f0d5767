package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidItem      = errors.New("invalid cart item")
	ErrInvalidQuantity  = errors.New("invalid cart quantity")
	ErrSnapshotRequired = errors.New("product snapshot required for guest cart item")

	// -- Resource State --
	ErrItemNotFound = errors.New("cart item not found")

	// -- Storage & Remote Failures --
	ErrFailedFetchCart  = errors.New("failed to fetch cart")
	ErrFailedAddItem    = errors.New("failed to add cart item")
	ErrFailedUpdateItem = errors.New("failed to update cart item")
	ErrFailedRemoveItem = errors.New("failed to remove cart item")
	ErrFailedClearCart  = errors.New("failed to clear cart")
)
