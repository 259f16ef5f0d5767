package cart

// TotalPrice sums unit price times quantity over all items. An empty cart
// totals to zero.
func TotalPrice(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// TotalQuantity sums item quantities.
func TotalQuantity(items []CartItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalSavings sums (original - unit) * quantity, counting only items whose
// original price is actually higher than the sale price.
func TotalSavings(items []CartItem) float64 {
	var savings float64
	for _, item := range items {
		if item.OriginalUnitPrice > item.UnitPrice {
			savings += (item.OriginalUnitPrice - item.UnitPrice) * float64(item.Quantity)
		}
	}
	return savings
}

// DeliveryFee applies the flat-fee-with-free-threshold rule: pickup orders
// and orders at or above freeThreshold ship free, everything else pays fee.
func DeliveryFee(totalAmount float64, option DeliveryOption, freeThreshold, fee float64) float64 {
	if option == DeliveryOptionPickup {
		return 0
	}
	if totalAmount >= freeThreshold {
		return 0
	}
	return fee
}
