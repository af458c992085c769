package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/core/internal/adapters/repository"
	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/config"
	"github.com/shopease/core/internal/infrastructure/logger"
)

const testToken = "mock-admin-token"

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "ShopEase",
			Version:     "test",
			Environment: "development",
		},
		Server: config.ServerConfig{Port: 3001, Host: "127.0.0.1"},
		Auth: config.AuthConfig{
			AdminEmail:    "admin@shopease.com",
			AdminPassword: "admin123",
			AdminName:     "Admin User",
			APIToken:      testToken,
			Secret:        "test-secret",
			ExpiresIn:     time.Hour,
			Issuer:        "shopease-api",
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	col, err := repository.NewFileCollection(t.TempDir())
	require.NoError(t, err)

	stores := Stores{
		Collection: col,
		Users:      repository.NewMemoryUserStore(repository.SeedUsers()),
		Settings:   repository.NewMemorySettingsStore(),
	}

	srv, err := New(testConfig(), stores, nil, logger.NewNop())
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestLoginSuccessAndFailure(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/login", "",
		`{"email":"admin@shopease.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string         `json:"token"`
		Admin entities.Admin `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testToken, resp.Token)
	assert.Equal(t, "admin1", resp.Admin.ID)
	assert.Equal(t, "Admin User", resp.Admin.Name)

	rec = doRequest(t, srv, http.MethodPost, "/api/admin/login", "",
		`{"email":"admin@shopease.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/admin/products", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())

	rec = doRequest(t, srv, http.MethodGet, "/api/admin/products", "forged-token", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

func TestVerifyReturnsAdmin(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/admin/verify", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]entities.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin@shopease.com", body["admin"].Email)
}

func TestProductsEmptyCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProductLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/products", testToken,
		`{"name":"Shirt","price":10,"stock":3,"category":"apparel"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.ID, "p"))

	rec = doRequest(t, srv, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = doRequest(t, srv, http.MethodPut, "/api/admin/products/"+created.ID, testToken,
		`{"price":12.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "Shirt", updated.Name)
	assert.Equal(t, 3, updated.Stock)

	rec = doRequest(t, srv, http.MethodDelete, "/api/admin/products/"+created.ID, testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	// Deleting again still succeeds.
	rec = doRequest(t, srv, http.MethodDelete, "/api/admin/products/"+created.ID, testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestProductUpdateMissingReturns404(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPut, "/api/admin/products/missing", testToken,
		`{"name":"Renamed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/products", testToken,
		`{"name":"Shirt","price":-1,"stock":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutAndStatusUpdate(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/orders", "",
		`{"items":[{"id":"p1","name":"Shirt","price":10,"quantity":2}],"customer":{"name":"John Doe","email":"john@example.com","address":"1 Main St"},"total":20}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.NotEmpty(t, order.ID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Equal(t, 20.0, order.Total)

	rec = doRequest(t, srv, http.MethodPut, "/api/admin/orders/"+order.ID, testToken,
		`{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, entities.OrderStatusShipped, updated.Status)
	assert.Equal(t, order.Items, updated.Items)
	assert.Equal(t, order.Customer, updated.Customer)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/orders", "",
		`{"items":[],"customer":{"name":"John Doe"},"total":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderStatusUpdateErrors(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPut, "/api/admin/orders/missing", testToken,
		`{"status":"shipped"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, rec.Body.String())

	rec = doRequest(t, srv, http.MethodPost, "/api/orders", "",
		`{"items":[{"id":"p1","name":"Shirt","price":10,"quantity":1}],"total":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var order entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = doRequest(t, srv, http.MethodPut, "/api/admin/orders/"+order.ID, testToken,
		`{"status":"teleported"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid order status"}`, rec.Body.String())
}

func TestUserManagement(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/admin/users", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 5)

	rec = doRequest(t, srv, http.MethodPut, "/api/admin/users/user1", testToken,
		`{"status":"banned"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, entities.UserStatusBanned, updated.Status)
	assert.Equal(t, "John Doe", updated.Name)

	rec = doRequest(t, srv, http.MethodDelete, "/api/admin/users/user2", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	rec = doRequest(t, srv, http.MethodGet, "/api/admin/users/user2", testToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestSettingsShallowMerge(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/admin/settings", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var settings entities.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "ShopEase", settings.StoreName)
	assert.Equal(t, 10.0, settings.TaxRate)

	rec = doRequest(t, srv, http.MethodPut, "/api/admin/settings", testToken,
		`{"taxRate":8.5,"maintenanceMode":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 8.5, settings.TaxRate)
	assert.True(t, settings.MaintenanceMode)
	assert.Equal(t, "ShopEase", settings.StoreName)

	// The merge sticks across reads.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/settings", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 8.5, settings.TaxRate)
}

func TestReports(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/orders", "",
		`{"items":[{"id":"p1","name":"Shirt","price":10,"quantity":2}],"total":20}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/admin/reports/summary", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary entities.SummaryReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 20.0, summary.TotalRevenue)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 5, summary.TotalUsers)
	assert.Equal(t, 20.0, summary.AverageOrderValue)

	rec = doRequest(t, srv, http.MethodGet, "/api/admin/reports/sales", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var series []entities.SalesPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	assert.Len(t, series, 6)

	rec = doRequest(t, srv, http.MethodGet, "/api/admin/reports/top-products", testToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var top []entities.TopProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ID)
	assert.Equal(t, 2, top[0].Sales)
}

func TestUnmatchedRouteIsPlainText(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/no/such/route", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", rec.Body.String())
}
