package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/core/internal/domain/entities"
)

func TestProducts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]entities.Product{{ID: "p1", Name: "Shirt", Price: 10}})
	}))
	defer ts.Close()

	c := New(ts.URL)
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestProductsEmptyBodyIsNeverNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	products, err := New(ts.URL).Products(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCheckout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Items    []entities.CartItem `json:"items"`
			Customer entities.Customer   `json:"customer"`
			Total    float64             `json:"total"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Items, 1)
		assert.Equal(t, 20.0, payload.Total)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entities.Order{
			ID:       "o1",
			Items:    payload.Items,
			Customer: payload.Customer,
			Total:    payload.Total,
			Status:   entities.OrderStatusPending,
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	order, err := c.Checkout(context.Background(),
		[]entities.CartItem{{ID: "p1", Name: "Shirt", Price: 10, Quantity: 2}},
		entities.Customer{Name: "John Doe", Email: "john@example.com"},
		20,
	)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
}

func TestCheckoutSurfacesServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"validation failed"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Checkout(context.Background(), nil, entities.Customer{}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
