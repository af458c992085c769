package repository

import (
	"context"
	"sync"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

// OrderRepositoryImpl implements the OrderRepository interface on top of a
// Collection, with the same locked read-modify-write cycle as the product
// repository.
type OrderRepositoryImpl struct {
	col ports.Collection
	mu  sync.Mutex
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(col ports.Collection) ports.OrderRepository {
	return &OrderRepositoryImpl{col: col}
}

func (r *OrderRepositoryImpl) List(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}
	if err := r.col.Load(ctx, ordersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create appends the order; the collection stays in placement order.
func (r *OrderRepositoryImpl) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := []entities.Order{}
	if err := r.col.Load(ctx, ordersCollection, &orders); err != nil {
		return entities.Order{}, err
	}

	orders = append(orders, order)

	if err := r.col.Save(ctx, ordersCollection, orders); err != nil {
		return entities.Order{}, err
	}

	return order, nil
}

// UpdateStatus overwrites the status of the matching order and preserves all
// other fields.
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := []entities.Order{}
	if err := r.col.Load(ctx, ordersCollection, &orders); err != nil {
		return entities.Order{}, err
	}

	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := r.col.Save(ctx, ordersCollection, orders); err != nil {
				return entities.Order{}, err
			}
			return orders[i], nil
		}
	}

	return entities.Order{}, entities.ErrOrderNotFound
}
