package cart

import (
	"encoding/json"
	"sync"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
)

// Listener is notified with a snapshot of the cart after every mutation.
type Listener func(items []entities.CartItem)

// Store maintains the authoritative line-item list for the active session and
// keeps it durable across restarts through its Storage mirror. Mutations are
// synchronous: by the time a mutator returns, the full list has been written
// to storage and all subscribers have been notified.
type Store struct {
	mu        sync.Mutex
	items     []entities.CartItem
	storage   Storage
	listeners map[int]Listener
	nextSub   int
	logger    *logger.Logger
}

// New creates a cart store, loading any previously mirrored contents. A
// stored value that is absent or does not parse as an item array is treated
// as an empty cart, never surfaced as an error.
func New(storage Storage, log *logger.Logger) *Store {
	s := &Store{
		storage:   storage,
		listeners: make(map[int]Listener),
		logger:    log,
	}

	data, err := storage.Load()
	if err != nil {
		log.Warn("Failed to load stored cart, starting empty", "error", err)
		return s
	}

	var items []entities.CartItem
	if len(data) > 0 && json.Unmarshal(data, &items) == nil {
		s.items = items
	}

	return s
}

// AddItem adds a product to the cart. If an item with the same id already
// exists its quantity is incremented by 1 and all other fields are left
// unchanged; otherwise a new item with quantity 1 is appended, preserving
// insertion order.
func (s *Store) AddItem(product entities.Product) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			s.commit()
			return
		}
	}

	s.items = append(s.items, entities.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
	s.commit()
}

// RemoveItem removes the item with the matching id. An absent id is a no-op,
// not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	s.commit()
}

// SetQuantity overwrites the quantity of the matching item only. The value is
// stored as given; quantity validation is the caller's concern.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.commit()
}

// Clear empties the cart. Checkout clears only after a successful server
// acknowledgment; the store itself carries no checkout state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.commit()
}

// Items returns a snapshot of the cart contents in insertion order.
func (s *Store) Items() []entities.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total returns the sum over items of price times quantity. It is derived on
// read, never stored.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the sum of quantities, used for the badge indicator.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subscribe registers a listener for cart changes and returns an unsubscribe
// function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// commit persists the full item list and notifies subscribers. Called with
// the mutex held; it releases it before invoking listeners.
func (s *Store) commit() {
	data, err := json.Marshal(s.itemsOrEmpty())
	if err == nil {
		err = s.storage.Save(data)
	}
	if err != nil {
		s.logger.Warn("Failed to persist cart", "error", err)
	}

	snapshot := s.snapshot()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// itemsOrEmpty keeps the mirrored value a JSON array even when the cart is
// empty, matching what a fresh load expects.
func (s *Store) itemsOrEmpty() []entities.CartItem {
	if s.items == nil {
		return []entities.CartItem{}
	}
	return s.items
}

func (s *Store) snapshot() []entities.CartItem {
	return append([]entities.CartItem(nil), s.items...)
}
