package order

import (
	"time"

	"dudhiya-app/internal/cart"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCanceled  OrderStatus = "CANCELED"
)

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "CARD"
)

// OrderItem is a cart line reduced to what the order API needs.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	SizeID    *string `json:"size_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items"`
	ItemTotal     float64       `json:"item_total"`
	DeliveryFee   float64       `json:"delivery_fee"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	AddressID     string        `json:"address_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CheckoutInput is what the caller supplies on top of the cart itself.
// An empty DeliveryOption means home delivery.
type CheckoutInput struct {
	AddressID      string
	PaymentMethod  PaymentMethod
	DeliveryOption cart.DeliveryOption
}

// CreateOrderRequest is the payload sent to the order API.
type CreateOrderRequest struct {
	Items          []OrderItem         `json:"items"`
	AddressID      string              `json:"address_id,omitempty"`
	PaymentMethod  PaymentMethod       `json:"payment_method"`
	DeliveryOption cart.DeliveryOption `json:"delivery_option"`
	DeliveryFee    float64             `json:"delivery_fee"`
}
