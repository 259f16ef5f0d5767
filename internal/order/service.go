package order

import (
	"context"
	"fmt"

	"dudhiya-app/internal/address"
	"dudhiya-app/internal/cart"
	"dudhiya-app/internal/delivery"
	"dudhiya-app/internal/logger"

	"go.uber.org/zap"
)

// API is the remote order endpoint contract.
type API interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
}

type Service interface {
	// Checkout creates an order from the current cart and clears the cart
	// once creation has succeeded.
	Checkout(ctx context.Context, input CheckoutInput) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
}

// AddressBook supplies the fallback address when a delivery checkout names
// none.
type AddressBook interface {
	DefaultAddress(ctx context.Context) (*address.Address, error)
}

type service struct {
	cartSvc   cart.Service
	resolver  *delivery.Resolver
	api       API
	addresses AddressBook
}

func NewService(cartSvc cart.Service, resolver *delivery.Resolver, api API, addresses AddressBook) Service {
	return &service{cartSvc: cartSvc, resolver: resolver, api: api, addresses: addresses}
}

func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	switch input.PaymentMethod {
	case PaymentCOD, PaymentUPI, PaymentCard:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, input.PaymentMethod)
	}

	pickup := input.DeliveryOption == cart.DeliveryOptionPickup
	addressID := input.AddressID
	if !pickup && addressID == "" {
		addr, err := s.addresses.DefaultAddress(ctx)
		if err != nil {
			return nil, err
		}
		if addr == nil {
			return nil, ErrAddressRequired
		}
		addressID = addr.ID.String()
		log.Info("using default address", zap.String("address_id", addressID))
	}

	c, err := s.cartSvc.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]OrderItem, 0, len(c.Items))
	for _, ci := range c.Items {
		items = append(items, OrderItem{
			ProductID: ci.ProductID,
			SizeID:    ci.SizeID,
			Quantity:  ci.Quantity,
			Price:     ci.UnitPrice,
		})
	}

	var fee float64
	if !pickup {
		fee = s.resolver.FeeFor(ctx, c.SubTotal)
	}

	option := cart.DeliveryOptionDelivery
	if pickup {
		option = cart.DeliveryOptionPickup
	}

	order, err := s.api.CreateOrder(ctx, CreateOrderRequest{
		Items:          items,
		AddressID:      addressID,
		PaymentMethod:  input.PaymentMethod,
		DeliveryOption: option,
		DeliveryFee:    fee,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	// The cart is cleared only after the order exists. A clear failure at
	// this point must not fail the checkout: the order is already placed.
	if err := s.cartSvc.ClearCart(ctx); err != nil {
		log.Warn("cart clear after checkout failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	log.Info("order created",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

func (s *service) GetOrders(ctx context.Context) ([]*Order, error) {
	return s.api.GetOrders(ctx)
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
