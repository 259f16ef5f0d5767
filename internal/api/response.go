package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dudhiya-app/internal/address"
	"dudhiya-app/internal/cart"
	"dudhiya-app/internal/currency"
	"dudhiya-app/internal/order"
	"dudhiya-app/internal/utils"
)

// cartView is the cart plus presentation-only fields: savings and the
// INR-formatted totals. Amounts stay plain numbers inside the core.
type cartView struct {
	*cart.Cart
	TotalSavings    float64 `json:"total_savings"`
	SubTotalDisplay string  `json:"sub_total_display"`
	SavingsDisplay  string  `json:"savings_display,omitempty"`
}

func newCartView(c *cart.Cart) cartView {
	savings := cart.TotalSavings(c.Items)
	view := cartView{
		Cart:            c,
		TotalSavings:    savings,
		SubTotalDisplay: currency.FormatINR(c.SubTotal),
	}
	if savings > 0 {
		view.SavingsDisplay = currency.FormatINR(savings)
	}
	return view
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP statuses so the client can use a
// uniform catch-and-alert pattern.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotFound), errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidItem),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrSnapshotRequired),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrAddressRequired),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, address.ErrNameRequired),
		errors.Is(err, address.ErrPhoneInvalid),
		errors.Is(err, address.ErrLine1Required),
		errors.Is(err, address.ErrCityRequired),
		errors.Is(err, address.ErrPincodeInvalid):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
