package catalog

// Size is a packaging/price variant of a catalog product, e.g. 500ml vs 1L.
type Size struct {
	ID        string  `json:"id"`
	Label     string  `json:"label,omitempty"`
	MRP       float64 `json:"mrp"`
	SalePrice float64 `json:"sale_price"`
	SortOrder int     `json:"sort_order,omitempty"`
}

// ProductSnapshot is the display/price data captured when an item enters a
// guest cart. The catalog remains the source of truth for current prices;
// the snapshot only has to be good enough to render and total the cart
// without a catalog round trip.
type ProductSnapshot struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url,omitempty"`
	MRP       float64 `json:"mrp"`
	SalePrice float64 `json:"sale_price"`
	Sizes     []Size  `json:"sizes,omitempty"`
}
