package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
)

func newTestStore(t *testing.T) (*Store, *MemStorage) {
	t.Helper()
	storage := &MemStorage{}
	return New(storage, logger.NewNop()), storage
}

func TestAddItemNewAndExisting(t *testing.T) {
	store, _ := newTestStore(t)

	shirt := entities.Product{ID: "p1", Name: "Shirt", Price: 10, Image: "shirt.png"}
	store.AddItem(shirt)
	store.AddItem(shirt)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Shirt", items[0].Name)
	assert.Equal(t, 10.0, items[0].Price)
	assert.Equal(t, "shirt.png", items[0].Image)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.AddItem(entities.Product{ID: "p2", Name: "Mug", Price: 5})
	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.RemoveItem("missing")

	assert.Len(t, store.Items(), 1)

	store.RemoveItem("p1")
	assert.Empty(t, store.Items())
}

func TestSetQuantityOnlyTouchesMatchingItem(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.AddItem(entities.Product{ID: "p2", Name: "Mug", Price: 5})

	store.SetQuantity("p1", 7)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSetQuantityStoresValueAsGiven(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.SetQuantity("p1", 0)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestTotalAndCount(t *testing.T) {
	store, _ := newTestStore(t)

	// Two shirts at 10 plus three mugs at 5 totals 35 across 5 items.
	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.AddItem(entities.Product{ID: "p2", Name: "Mug", Price: 5})
	store.SetQuantity("p2", 3)

	assert.Equal(t, 35.0, store.Total())
	assert.Equal(t, 5, store.Count())
}

func TestClear(t *testing.T) {
	store, storage := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0.0, store.Total())
	assert.Equal(t, 0, store.Count())

	// The mirrored value stays a JSON array.
	assert.JSONEq(t, "[]", string(storage.data))
}

func TestMutationsPersistToStorage(t *testing.T) {
	store, storage := newTestStore(t)

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	var stored []entities.CartItem
	require.NoError(t, json.Unmarshal(storage.data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "p1", stored[0].ID)
	assert.Equal(t, 1, stored[0].Quantity)
}

func TestNewRestoresStoredCart(t *testing.T) {
	storage := &MemStorage{}
	first := New(storage, logger.NewNop())
	first.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	first.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	second := New(storage, logger.NewNop())
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 20.0, second.Total())
}

func TestNewFallsBackToEmptyOnBadData(t *testing.T) {
	for name, data := range map[string][]byte{
		"not json":   []byte("not json at all"),
		"not array":  []byte(`{"id":"p1"}`),
		"raw number": []byte("42"),
	} {
		t.Run(name, func(t *testing.T) {
			storage := &MemStorage{data: data}
			store := New(storage, logger.NewNop())
			assert.Empty(t, store.Items())
		})
	}
}

func TestNewWithEmptyStorage(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0.0, store.Total())
}

func TestSubscribeNotifiesWithSnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	var got [][]entities.CartItem
	unsubscribe := store.Subscribe(func(items []entities.CartItem) {
		got = append(got, items)
	})

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})
	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0][0].Quantity)
	assert.Equal(t, 2, got[1][0].Quantity)

	unsubscribe()
	store.Clear()
	assert.Len(t, got, 2)
}

func TestSubscriberSnapshotIsIsolated(t *testing.T) {
	store, _ := newTestStore(t)

	store.Subscribe(func(items []entities.CartItem) {
		for i := range items {
			items[i].Quantity = 999
		}
	})

	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	store := New(storage, logger.NewNop())
	store.AddItem(entities.Product{ID: "p1", Name: "Shirt", Price: 10})

	reloaded := New(NewFileStorage(dir), logger.NewNop())
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestFileStorageMissingFileReadsAsNoCart(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	data, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}
