package repository

import (
	"context"
	"sync"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

// MemoryUserStore is the volatile user backing. Records live only for the
// lifetime of the server process; mutations are lost on restart. That
// non-durability is deliberate and documented, not an accident.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []entities.User
}

// NewMemoryUserStore creates a volatile user store seeded with the given
// records.
func NewMemoryUserStore(seed []entities.User) ports.UserStore {
	return &MemoryUserStore{users: append([]entities.User(nil), seed...)}
}

// SeedUsers returns the default customer records the store starts with.
func SeedUsers() []entities.User {
	return []entities.User{
		{ID: "user1", Name: "John Doe", Email: "john@example.com", Role: entities.UserRoleCustomer, Status: entities.UserStatusActive, CreatedAt: "2024-01-15", Orders: 5, TotalSpent: 450.00},
		{ID: "user2", Name: "Jane Smith", Email: "jane@example.com", Role: entities.UserRoleCustomer, Status: entities.UserStatusActive, CreatedAt: "2024-02-20", Orders: 3, TotalSpent: 280.00},
		{ID: "user3", Name: "Bob Wilson", Email: "bob@example.com", Role: entities.UserRoleCustomer, Status: entities.UserStatusInactive, CreatedAt: "2024-03-10", Orders: 1, TotalSpent: 75.00},
		{ID: "user4", Name: "Alice Brown", Email: "alice@example.com", Role: entities.UserRoleCustomer, Status: entities.UserStatusActive, CreatedAt: "2024-03-25", Orders: 8, TotalSpent: 920.00},
		{ID: "user5", Name: "Charlie Davis", Email: "charlie@example.com", Role: entities.UserRoleCustomer, Status: entities.UserStatusBanned, CreatedAt: "2024-04-01", Orders: 0, TotalSpent: 0},
	}
}

func (s *MemoryUserStore) List(ctx context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.User(nil), s.users...), nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (s *MemoryUserStore) Update(ctx context.Context, id string, update ports.UserUpdate) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			update.Apply(&s.users[i])
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (s *MemoryUserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return entities.ErrUserNotFound
}

// MemorySettingsStore is the volatile settings backing, overwritten in place
// by partial updates.
type MemorySettingsStore struct {
	mu       sync.RWMutex
	settings entities.Settings
}

// NewMemorySettingsStore creates a volatile settings store with the default
// store configuration.
func NewMemorySettingsStore() ports.SettingsStore {
	return &MemorySettingsStore{settings: entities.DefaultSettings()}
}

func (s *MemorySettingsStore) Get(ctx context.Context) (entities.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *MemorySettingsStore) Update(ctx context.Context, update ports.SettingsUpdate) (entities.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.Apply(&s.settings)
	return s.settings, nil
}
