package cart

import "fmt"

// ValidateItem rejects malformed items before they can touch cart state.
// Callers must not mutate the cart when this fails.
func ValidateItem(item CartItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if item.UnitPrice <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidItem)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidItem)
	}
	return nil
}

// FindItem looks an item up by id. Ids are unique by construction, so the
// first match is the only one.
func FindItem(items []CartItem, itemID string) (*CartItem, bool) {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], true
		}
	}
	return nil, false
}
