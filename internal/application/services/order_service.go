package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// CheckoutRequest is the public checkout payload: a snapshot of the cart plus
// the customer contact details.
type CheckoutRequest struct {
	Items    []entities.CartItem `json:"items" validate:"required,min=1"`
	Customer entities.Customer   `json:"customer"`
	Total    float64             `json:"total"`
}

// OrderService handles order placement and admin status updates
type OrderService struct {
	repo   ports.OrderRepository
	logger *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repo ports.OrderRepository, logger *logger.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// List returns all placed orders.
func (s *OrderService) List(ctx context.Context) ([]entities.Order, error) {
	return s.repo.List(ctx)
}

// Checkout places a new order with a server-generated id and pending status.
// The items are stored as given; they are a copy of the cart, not a reference
// into the product collection.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (entities.Order, error) {
	order := entities.Order{
		ID:        uuid.NewString(),
		Items:     req.Items,
		Customer:  req.Customer,
		Total:     req.Total,
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("Order placed", "order_id", created.ID, "total", created.Total)
	return created, nil
}

// UpdateStatus changes the status of an order. Status is the only mutable
// field post-creation and must belong to the fixed vocabulary.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.IsValid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("Order status updated", "order_id", id, "status", status)
	return updated, nil
}
