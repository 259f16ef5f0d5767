package api

import (
	"encoding/json"
	"net/http"

	"dudhiya-app/internal/address"
	"dudhiya-app/internal/cart"
	"dudhiya-app/internal/catalog"
	"dudhiya-app/internal/delivery"
	"dudhiya-app/internal/order"
	"dudhiya-app/internal/utils"
)

// Handler exposes the cart and checkout operations as a thin JSON surface.
// All domain decisions live in the services; handlers only decode, call and
// encode.
type Handler struct {
	cartSvc  cart.Service
	orderSvc order.Service
	addrSvc  address.Service
	resolver *delivery.Resolver
}

func NewHandler(cartSvc cart.Service, orderSvc order.Service, addrSvc address.Service, resolver *delivery.Resolver) *Handler {
	return &Handler{cartSvc: cartSvc, orderSvc: orderSvc, addrSvc: addrSvc, resolver: resolver}
}

// Routes builds the request mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /cart", h.getCart)
	mux.HandleFunc("POST /cart/items", h.addItem)
	mux.HandleFunc("PATCH /cart/items/{id}", h.updateItem)
	mux.HandleFunc("DELETE /cart/items/{id}", h.removeItem)
	mux.HandleFunc("DELETE /cart", h.clearCart)
	mux.HandleFunc("GET /cart/count", h.cartCount)
	mux.HandleFunc("GET /cart/delivery-fee", h.deliveryFee)
	mux.HandleFunc("POST /checkout", h.checkout)
	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("GET /addresses", h.listAddresses)
	mux.HandleFunc("POST /addresses", h.createAddress)
	mux.HandleFunc("GET /addresses/default", h.defaultAddress)

	return mux
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.cartSvc.GetCart(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(c))
}

type addItemRequest struct {
	ProductID string                   `json:"product_id"`
	SizeID    *string                  `json:"size_id,omitempty"`
	Quantity  int                      `json:"quantity"`
	Snapshot  *catalog.ProductSnapshot `json:"snapshot,omitempty"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.cartSvc.AddItem(r.Context(), cart.AddItemParams{
		ProductID: req.ProductID,
		SizeID:    req.SizeID,
		Quantity:  req.Quantity,
		Snapshot:  req.Snapshot,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(c))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.cartSvc.UpdateItem(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(c))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.cartSvc.RemoveItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.ClearCart(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *Handler) cartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartSvc.CountItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *Handler) deliveryFee(w http.ResponseWriter, r *http.Request) {
	c, err := h.cartSvc.GetCart(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	fee := h.resolver.FeeFor(r.Context(), c.SubTotal)
	writeJSON(w, http.StatusOK, map[string]any{
		"fee": fee,
	})
}

type checkoutRequest struct {
	AddressID      string              `json:"address_id"`
	PaymentMethod  order.PaymentMethod `json:"payment_method"`
	DeliveryOption cart.DeliveryOption `json:"delivery_option"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.orderSvc.Checkout(r.Context(), order.CheckoutInput{
		AddressID:      req.AddressID,
		PaymentMethod:  req.PaymentMethod,
		DeliveryOption: req.DeliveryOption,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.GetOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orderSvc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.addrSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var in address.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	addr, err := h.addrSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *Handler) defaultAddress(w http.ResponseWriter, r *http.Request) {
	addr, err := h.addrSvc.DefaultAddress(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if addr == nil {
		utils.WriteJSONError(w, "no addresses saved", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}
