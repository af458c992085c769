package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/core/internal/domain/entities"
)

func TestFileCollectionMissingFileLoadsEmpty(t *testing.T) {
	col, err := NewFileCollection(t.TempDir())
	require.NoError(t, err)

	products := []entities.Product{}
	require.NoError(t, col.Load(context.Background(), "products", &products))
	assert.Empty(t, products)
}

func TestFileCollectionRoundTrip(t *testing.T) {
	col, err := NewFileCollection(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	in := []entities.Product{
		{ID: "p1", Name: "Shirt", Price: 10, Stock: 3},
		{ID: "p2", Name: "Mug", Price: 5, Stock: 8},
	}
	require.NoError(t, col.Save(ctx, "products", in))

	out := []entities.Product{}
	require.NoError(t, col.Load(ctx, "products", &out))
	assert.Equal(t, in, out)
}

func TestFileCollectionCorruptFile(t *testing.T) {
	dir := t.TempDir()
	col, err := NewFileCollection(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{broken"), 0o644))

	products := []entities.Product{}
	err = col.Load(context.Background(), "products", &products)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrCorruptCollection)
}

func TestFileCollectionSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	col, err := NewFileCollection(dir)
	require.NoError(t, err)

	require.NoError(t, col.Save(context.Background(), "products", []entities.Product{{ID: "p1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}

func TestBoltCollectionRoundTrip(t *testing.T) {
	col, err := NewBoltCollection(t.TempDir())
	require.NoError(t, err)
	defer col.Close()
	ctx := context.Background()

	missing := []entities.Order{}
	require.NoError(t, col.Load(ctx, "orders", &missing))
	assert.Empty(t, missing)

	in := []entities.Product{{ID: "p1", Name: "Shirt", Price: 10}}
	require.NoError(t, col.Save(ctx, "products", in))

	out := []entities.Product{}
	require.NoError(t, col.Load(ctx, "products", &out))
	assert.Equal(t, in, out)
}

func TestBoltCollectionKeysAreIndependent(t *testing.T) {
	col, err := NewBoltCollection(t.TempDir())
	require.NoError(t, err)
	defer col.Close()
	ctx := context.Background()

	require.NoError(t, col.Save(ctx, "products", []entities.Product{{ID: "p1"}}))
	require.NoError(t, col.Save(ctx, "orders", []entities.Order{{ID: "o1", Status: entities.OrderStatusPending}}))

	products := []entities.Product{}
	require.NoError(t, col.Load(ctx, "products", &products))
	require.Len(t, products, 1)

	orders := []entities.Order{}
	require.NoError(t, col.Load(ctx, "orders", &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, entities.OrderStatusPending, orders[0].Status)
}
