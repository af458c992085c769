package ports

import (
	"context"

	"github.com/shopease/core/internal/domain/entities"
)

// Collection provides load/save of one named JSON array document, the whole
// "table" for one entity type. Load into a pointer to slice leaves the
// destination empty when the collection does not exist yet.
type Collection interface {
	Load(ctx context.Context, name string, out interface{}) error
	Save(ctx context.Context, name string, data interface{}) error
}

// ProductRepository defines the interface for product collection operations.
type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	Create(ctx context.Context, product entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (entities.Product, error)
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order collection operations.
type OrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

// UserStore defines the interface for admin-managed user records. The default
// backing implementation is volatile (process-lifetime only); a durable
// implementation can be substituted without touching handler logic.
type UserStore interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}

// SettingsStore defines the interface for the store configuration record.
type SettingsStore interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, update SettingsUpdate) (entities.Settings, error)
}

// ProductUpdate is the explicit allowed-field set for a partial product
// update. Nil fields are left untouched; unknown request fields are ignored.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// Apply overlays the provided fields onto the product.
func (u ProductUpdate) Apply(p *entities.Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
}

// UserUpdate is the explicit allowed-field set for a partial user update.
type UserUpdate struct {
	Name       *string              `json:"name"`
	Email      *string              `json:"email" validate:"omitempty,email"`
	Role       *entities.UserRole   `json:"role"`
	Status     *entities.UserStatus `json:"status"`
	Orders     *int                 `json:"orders"`
	TotalSpent *float64             `json:"totalSpent"`
}

// Apply overlays the provided fields onto the user.
func (u UserUpdate) Apply(usr *entities.User) {
	if u.Name != nil {
		usr.Name = *u.Name
	}
	if u.Email != nil {
		usr.Email = *u.Email
	}
	if u.Role != nil {
		usr.Role = *u.Role
	}
	if u.Status != nil {
		usr.Status = *u.Status
	}
	if u.Orders != nil {
		usr.Orders = *u.Orders
	}
	if u.TotalSpent != nil {
		usr.TotalSpent = *u.TotalSpent
	}
}

// SettingsUpdate is the explicit allowed-field set for the shallow-merge
// settings update.
type SettingsUpdate struct {
	StoreName             *string  `json:"storeName"`
	StoreEmail            *string  `json:"storeEmail"`
	StorePhone            *string  `json:"storePhone"`
	StoreAddress          *string  `json:"storeAddress"`
	Currency              *string  `json:"currency"`
	TaxRate               *float64 `json:"taxRate"`
	ShippingFee           *float64 `json:"shippingFee"`
	FreeShippingThreshold *float64 `json:"freeShippingThreshold"`
	MaintenanceMode       *bool    `json:"maintenanceMode"`
	AllowGuestCheckout    *bool    `json:"allowGuestCheckout"`
	MaxOrderItems         *int     `json:"maxOrderItems"`
}

// Apply overlays the provided fields onto the settings record.
func (u SettingsUpdate) Apply(s *entities.Settings) {
	if u.StoreName != nil {
		s.StoreName = *u.StoreName
	}
	if u.StoreEmail != nil {
		s.StoreEmail = *u.StoreEmail
	}
	if u.StorePhone != nil {
		s.StorePhone = *u.StorePhone
	}
	if u.StoreAddress != nil {
		s.StoreAddress = *u.StoreAddress
	}
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.TaxRate != nil {
		s.TaxRate = *u.TaxRate
	}
	if u.ShippingFee != nil {
		s.ShippingFee = *u.ShippingFee
	}
	if u.FreeShippingThreshold != nil {
		s.FreeShippingThreshold = *u.FreeShippingThreshold
	}
	if u.MaintenanceMode != nil {
		s.MaintenanceMode = *u.MaintenanceMode
	}
	if u.AllowGuestCheckout != nil {
		s.AllowGuestCheckout = *u.AllowGuestCheckout
	}
	if u.MaxOrderItems != nil {
		s.MaxOrderItems = *u.MaxOrderItems
	}
}
