package cart

import (
	"time"

	"dudhiya-app/internal/catalog"
)

type DeliveryOption string

const (
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionPickup   DeliveryOption = "pickup"
)

// CartItem is one line of a cart. ID is server-assigned for authenticated
// carts and locally generated for guest carts. A nil SizeID means the item
// uses the product's default pricing.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	SizeID    *string `json:"size_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`

	// Price snapshot at add time, for display and savings math. The catalog
	// stays the source of truth for current prices.
	UnitPrice         float64 `json:"unit_price"`
	OriginalUnitPrice float64 `json:"original_unit_price,omitempty"`

	IsFavorite bool `json:"is_favorite,omitempty"`

	// Snapshot is kept only on guest items, where the cart cannot reach the
	// catalog to re-resolve prices.
	Snapshot *catalog.ProductSnapshot `json:"snapshot,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// SameVariant reports whether the item refers to the same (product, size)
// identity. A nil SizeID on both sides counts as a match.
func (i CartItem) SameVariant(productID string, sizeID *string) bool {
	if i.ProductID != productID {
		return false
	}
	if i.SizeID == nil || sizeID == nil {
		return i.SizeID == nil && sizeID == nil
	}
	return *i.SizeID == *sizeID
}

// Cart is the full cart state. Items keep insertion order. TotalItems and
// SubTotal are derived from Items but stored with the persisted record so a
// read never has to re-aggregate.
type Cart struct {
	Items      []CartItem     `json:"items"`
	TotalItems int            `json:"total_items"`
	SubTotal   float64        `json:"sub_total"`
	Delivery   DeliveryOption `json:"delivery_option,omitempty"`
	AddressID  string         `json:"address_id,omitempty"`
}

// AddItemParams describes an add request. Snapshot is required when the item
// is new to a guest cart.
type AddItemParams struct {
	ProductID string
	SizeID    *string
	Quantity  int
	Snapshot  *catalog.ProductSnapshot
}
