package mocks

import (
	"context"
	"sync"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/store"
)

// MockPhoneStore implements store.PhoneStore for testing. The default
// implementation enforces number uniqueness the way the telefone.numero
// constraint would.
type MockPhoneStore struct {
	CreateFn  func(ctx context.Context, phone *domain.Phone) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Phone, error)
	UpdateFn  func(ctx context.Context, phone *domain.Phone) error

	mu     sync.Mutex
	Phones map[int64]*domain.Phone
	nextID int64
}

// Ensure MockPhoneStore implements store.PhoneStore
var _ store.PhoneStore = (*MockPhoneStore)(nil)

// NewMockPhoneStore creates a new mock store with initialized defaults.
func NewMockPhoneStore() *MockPhoneStore {
	return &MockPhoneStore{
		Phones: make(map[int64]*domain.Phone),
	}
}

// Create implements the PhoneStore interface.
func (m *MockPhoneStore) Create(ctx context.Context, phone *domain.Phone) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, phone)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.Phones {
		if p.Number == phone.Number {
			return store.ErrPhoneNumberExists
		}
	}

	m.nextID++
	phone.ID = m.nextID
	stored := *phone
	m.Phones[phone.ID] = &stored
	return nil
}

// GetByID implements the PhoneStore interface.
func (m *MockPhoneStore) GetByID(ctx context.Context, id int64) (*domain.Phone, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	phone, exists := m.Phones[id]
	if !exists {
		return nil, store.ErrPhoneNotFound
	}
	out := *phone
	return &out, nil
}

// Update implements the PhoneStore interface.
func (m *MockPhoneStore) Update(ctx context.Context, phone *domain.Phone) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, phone)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Phones[phone.ID]; !exists {
		return store.ErrPhoneNotFound
	}
	for _, p := range m.Phones {
		if p.ID != phone.ID && p.Number == phone.Number {
			return store.ErrPhoneNumberExists
		}
	}
	stored := *phone
	m.Phones[phone.ID] = &stored
	return nil
}
