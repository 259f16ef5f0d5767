package catalog

import (
	"math"
	"sort"
)

// Discount returns the discount percentage of salePrice against mrp,
// rounded to the nearest integer. It returns 0 when either value is
// missing or when there is no actual discount.
func Discount(mrp, salePrice float64) int {
	if mrp <= 0 || salePrice <= 0 {
		return 0
	}
	if mrp <= salePrice {
		return 0
	}
	return int(math.Round((mrp - salePrice) / mrp * 100))
}

// BestDiscount returns the highest discount percentage across all size
// variants, 0 when there are none.
func BestDiscount(sizes []Size) int {
	best := 0
	for _, s := range sizes {
		if d := Discount(s.MRP, s.SalePrice); d > best {
			best = d
		}
	}
	return best
}

// PrimarySize returns the variant that should be shown by default: the
// first one after a stable sort on SortOrder. Returns nil when there are
// no variants.
func PrimarySize(sizes []Size) *Size {
	if len(sizes) == 0 {
		return nil
	}

	sorted := make([]Size, len(sizes))
	copy(sorted, sizes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	return &sorted[0]
}

// SalePriceFor resolves the unit price for a cart item from its stored
// snapshot: the matching size's sale price when a size is selected and
// present, otherwise the snapshot's top-level sale price, otherwise 0.
// The fallback order matters: a wrong order silently misprices the cart.
func SalePriceFor(snap *ProductSnapshot, sizeID *string) float64 {
	if snap == nil {
		return 0
	}
	if sizeID != nil {
		for _, s := range snap.Sizes {
			if s.ID == *sizeID {
				return s.SalePrice
			}
		}
	}
	return snap.SalePrice
}

// MRPFor resolves the list price the same way SalePriceFor resolves the
// sale price. Used for savings display.
func MRPFor(snap *ProductSnapshot, sizeID *string) float64 {
	if snap == nil {
		return 0
	}
	if sizeID != nil {
		for _, s := range snap.Sizes {
			if s.ID == *sizeID {
				return s.MRP
			}
		}
	}
	return snap.MRP
}
