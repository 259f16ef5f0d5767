package delivery

import (
	"context"

	"dudhiya-app/internal/logger"

	"go.uber.org/zap"
)

// Charge is the server-supplied delivery-charge rule: a flat Amount waived
// once the cart subtotal reaches MinPurchaseAmount.
type Charge struct {
	Amount            float64 `json:"amount"`
	MinPurchaseAmount float64 `json:"min_purchase_amount"`
}

// ConfigSource fetches the current delivery-charge configuration. A nil
// Charge with nil error means no rule is configured.
type ConfigSource interface {
	GetDeliveryCharge(ctx context.Context) (*Charge, error)
}

// Resolver computes the delivery fee for a subtotal at checkout time.
type Resolver struct {
	source ConfigSource
}

func NewResolver(source ConfigSource) *Resolver {
	return &Resolver{source: source}
}

// FeeFor returns the fee to charge on subtotal. Missing or unfetchable
// configuration resolves to free delivery, never to an error: charging a fee
// nobody configured is worse than waiving one.
func (r *Resolver) FeeFor(ctx context.Context, subtotal float64) float64 {
	charge, err := r.source.GetDeliveryCharge(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("delivery charge lookup failed, defaulting to free",
			zap.Error(err),
		)
		return 0
	}
	return FeeFor(charge, subtotal)
}

// FeeFor is the pure rule, split out for reuse and testing.
func FeeFor(charge *Charge, subtotal float64) float64 {
	if charge == nil {
		return 0
	}
	if subtotal >= charge.MinPurchaseAmount {
		return 0
	}
	return charge.Amount
}
