package entities

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCorruptCollection  = errors.New("collection data is corrupt")
)

// Enums and types
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status belongs to the fixed vocabulary.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

// CartItem represents a single line item in a shopping cart. At most one
// item exists per distinct product id; insertion order is display order.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Product represents a catalog product persisted in the products collection.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// NewProductID generates a product id from the timestamp-based scheme.
func NewProductID(now time.Time) string {
	return fmt.Sprintf("p%d", now.UnixMilli())
}

// Customer holds the checkout contact details captured with an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Order represents a placed order. Items are a snapshot copy of the cart at
// checkout time; no integrity is maintained against the live product
// collection. Status is the only field an admin may mutate post-creation.
type Order struct {
	ID        string      `json:"id"`
	Items     []CartItem  `json:"items"`
	Customer  Customer    `json:"customer"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// User represents an admin-managed customer record. Users live only for the
// lifetime of the server process unless a durable store is configured.
type User struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Role       UserRole   `json:"role" db:"role"`
	Status     UserStatus `json:"status" db:"status"`
	Orders     int        `json:"orders" db:"orders"`
	TotalSpent float64    `json:"totalSpent" db:"total_spent"`
	CreatedAt  string     `json:"createdAt" db:"created_at"`
}

// Admin is the back-office identity returned by login and verify.
type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings is the single mutable record of store configuration.
type Settings struct {
	StoreName             string  `json:"storeName"`
	StoreEmail            string  `json:"storeEmail"`
	StorePhone            string  `json:"storePhone"`
	StoreAddress          string  `json:"storeAddress"`
	Currency              string  `json:"currency"`
	TaxRate               float64 `json:"taxRate"`
	ShippingFee           float64 `json:"shippingFee"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	MaintenanceMode       bool    `json:"maintenanceMode"`
	AllowGuestCheckout    bool    `json:"allowGuestCheckout"`
	MaxOrderItems         int     `json:"maxOrderItems"`
}

// DefaultSettings returns the store configuration used until an admin
// overwrites it.
func DefaultSettings() Settings {
	return Settings{
		StoreName:             "ShopEase",
		StoreEmail:            "contact@shopease.com",
		StorePhone:            "+1 234 567 8900",
		StoreAddress:          "123 Commerce St, Business City, BC 12345",
		Currency:              "USD",
		TaxRate:               10,
		ShippingFee:           5.99,
		FreeShippingThreshold: 50,
		MaintenanceMode:       false,
		AllowGuestCheckout:    true,
		MaxOrderItems:         20,
	}
}

// SummaryReport aggregates store-wide totals for the admin dashboard.
type SummaryReport struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	TotalProducts     int     `json:"totalProducts"`
	TotalUsers        int     `json:"totalUsers"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// SalesPoint is one month of the sales report series.
type SalesPoint struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// TopProduct is one row of the top-products report.
type TopProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}
