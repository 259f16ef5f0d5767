package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dudhiya-app/internal/auth"
	"dudhiya-app/internal/cart"
)

func TestCartAPI_FetchCart(t *testing.T) {
	t.Run("Decodes the server cart", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/cart", r.URL.Path)

			json.NewEncoder(w).Encode(cart.Cart{
				Items:      []cart.CartItem{{ID: "srv-1", ProductID: "prod-milk", Quantity: 2, UnitPrice: 66, Name: "Milk"}},
				TotalItems: 2,
				SubTotal:   132,
			})
		}))
		defer srv.Close()

		api := NewCartAPI(New(srv.URL))
		c, err := api.FetchCart(context.Background())
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 132.0, c.SubTotal)
	})

	t.Run("Attaches the bearer token from context", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(cart.Cart{})
		}))
		defer srv.Close()

		api := NewCartAPI(New(srv.URL))
		ctx := auth.WithAccessToken(context.Background(), "tok-123")

		_, err := api.FetchCart(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})
}

func TestCartAPI_AddItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/items", r.URL.Path)

		var req addItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "prod-milk", req.ProductID)
		assert.Equal(t, 2, req.Quantity)

		json.NewEncoder(w).Encode(cart.Cart{
			Items:      []cart.CartItem{{ID: "srv-1", ProductID: req.ProductID, Quantity: req.Quantity}},
			TotalItems: req.Quantity,
		})
	}))
	defer srv.Close()

	api := NewCartAPI(New(srv.URL))
	c, err := api.AddItem(context.Background(), cart.AddItemParams{ProductID: "prod-milk", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalItems)
}

func TestErrorMessageExtraction(t *testing.T) {
	t.Run("Message field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
		}))
		defer srv.Close()

		api := NewCartAPI(New(srv.URL))
		_, err := api.AddItem(context.Background(), cart.AddItemParams{ProductID: "p", Quantity: 1})
		require.Error(t, err)
		assert.EqualError(t, err, "insufficient stock")
	})

	t.Run("Error field fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "bad payload"})
		}))
		defer srv.Close()

		api := NewCartAPI(New(srv.URL))
		_, err := api.FetchCart(context.Background())
		assert.EqualError(t, err, "bad payload")
	})

	t.Run("Generic fallback for opaque bodies", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>upstream down</html>"))
		}))
		defer srv.Close()

		api := NewCartAPI(New(srv.URL))
		_, err := api.FetchCart(context.Background())
		assert.EqualError(t, err, "request failed with status 502")
	})
}

func TestCartAPI_ClearCart(t *testing.T) {
	cleared := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cart", r.URL.Path)
		cleared = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := NewCartAPI(New(srv.URL))
	require.NoError(t, api.ClearCart(context.Background()))
	assert.True(t, cleared)
}

func TestCartAPI_CartCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/count", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]int{"count": 4})
	}))
	defer srv.Close()

	api := NewCartAPI(New(srv.URL))
	count, err := api.CartCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestDeliveryAPI_GetDeliveryCharge(t *testing.T) {
	t.Run("Configured rule", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/config/delivery-charge", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]float64{"amount": 50, "min_purchase_amount": 500})
		}))
		defer srv.Close()

		api := NewDeliveryAPI(New(srv.URL))
		charge, err := api.GetDeliveryCharge(context.Background())
		require.NoError(t, err)
		require.NotNil(t, charge)
		assert.Equal(t, 50.0, charge.Amount)
	})

	t.Run("Empty configuration maps to nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		api := NewDeliveryAPI(New(srv.URL))
		charge, err := api.GetDeliveryCharge(context.Background())
		require.NoError(t, err)
		assert.Nil(t, charge)
	})
}
