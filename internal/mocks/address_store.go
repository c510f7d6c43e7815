package mocks

import (
	"context"
	"sync"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/store"
)

// MockAddressStore implements store.AddressStore for testing.
type MockAddressStore struct {
	CreateFn  func(ctx context.Context, address *domain.Address) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Address, error)
	UpdateFn  func(ctx context.Context, address *domain.Address) error

	mu        sync.Mutex
	Addresses map[int64]*domain.Address
	nextID    int64
}

// Ensure MockAddressStore implements store.AddressStore
var _ store.AddressStore = (*MockAddressStore)(nil)

// NewMockAddressStore creates a new mock store with initialized defaults.
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
	}
}

// Create implements the AddressStore interface.
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	address.ID = m.nextID
	stored := *address
	m.Addresses[address.ID] = &stored
	return nil
}

// GetByID implements the AddressStore interface.
func (m *MockAddressStore) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	address, exists := m.Addresses[id]
	if !exists {
		return nil, store.ErrAddressNotFound
	}
	out := *address
	return &out, nil
}

// Update implements the AddressStore interface.
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Addresses[address.ID]; !exists {
		return store.ErrAddressNotFound
	}
	stored := *address
	m.Addresses[address.ID] = &stored
	return nil
}
