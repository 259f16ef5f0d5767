package order

import "errors"

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrAddressRequired      = errors.New("delivery address is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrFailedCreateOrder    = errors.New("failed to create order")
	ErrOrderNotFound        = errors.New("order not found")
)
