// Package client is a thin consumer of the storefront API, covering the
// two public flows a shopper exercises: browsing the catalog and checking
// out a cart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopease/core/internal/domain/entities"
)

const defaultTimeout = 15 * time.Second

// Client calls the storefront endpoints of a running API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL, e.g. "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]entities.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	var products []entities.Product
	if err := c.do(req, http.StatusOK, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []entities.Product{}
	}
	return products, nil
}

// checkoutPayload mirrors the order creation request body.
type checkoutPayload struct {
	Items    []entities.CartItem `json:"items"`
	Customer entities.Customer   `json:"customer"`
	Total    float64             `json:"total"`
}

// Checkout posts the cart contents as a new order and returns the created
// order. Callers should clear their cart only after this succeeds.
func (c *Client) Checkout(ctx context.Context, items []entities.CartItem, customer entities.Customer, total float64) (entities.Order, error) {
	body, err := json.Marshal(checkoutPayload{Items: items, Customer: customer, Total: total})
	if err != nil {
		return entities.Order{}, fmt.Errorf("encode checkout payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return entities.Order{}, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var order entities.Order
	if err := c.do(req, http.StatusCreated, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: unexpected status %d: %s", req.Method, req.URL.Path, resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}
