package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

func newOrderRepo(t *testing.T) ports.OrderRepository {
	t.Helper()
	col, err := NewFileCollection(t.TempDir())
	require.NoError(t, err)
	return NewOrderRepository(col)
}

func TestOrderListEmptyWhenCollectionAbsent(t *testing.T) {
	repo := newOrderRepo(t)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderCreateAppends(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Order{ID: "o1", Status: entities.OrderStatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Order{ID: "o2", Status: entities.OrderStatusPending})
	require.NoError(t, err)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
}

func TestOrderUpdateStatusPreservesFields(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	placed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID: "o1",
		Items: []entities.CartItem{
			{ID: "p1", Name: "Shirt", Price: 10, Quantity: 2},
		},
		Customer:  entities.Customer{Name: "John Doe", Email: "john@example.com", Address: "1 Main St"},
		Total:     20,
		Status:    entities.OrderStatusPending,
		CreatedAt: placed,
	}
	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "o1", entities.OrderStatusShipped)
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusShipped, updated.Status)
	assert.Equal(t, order.Items, updated.Items)
	assert.Equal(t, order.Customer, updated.Customer)
	assert.Equal(t, order.Total, updated.Total)
	assert.True(t, placed.Equal(updated.CreatedAt))
}

func TestOrderUpdateStatusMissing(t *testing.T) {
	repo := newOrderRepo(t)

	_, err := repo.UpdateStatus(context.Background(), "missing", entities.OrderStatusShipped)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
