package mocks

import (
	"context"
	"sync"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/store"
)

// MockUserStore implements store.UserStore for testing. The default
// implementation keeps users in a map keyed by email and enforces email
// uniqueness the way the database constraint would.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	DeleteByEmailFn func(ctx context.Context, email string) error

	mu     sync.Mutex
	Users  map[string]*domain.User
	nextID int64
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.Users[user.Email] = &stored
	return nil
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// ExistsByEmail implements the UserStore interface.
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.Users[email]
	return exists, nil
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var oldEmail string
	for email, u := range m.Users {
		if u.ID == user.ID {
			oldEmail = email
			break
		}
	}
	if oldEmail == "" {
		return store.ErrUserNotFound
	}

	if other, exists := m.Users[user.Email]; exists && other.ID != user.ID {
		return store.ErrEmailExists
	}

	delete(m.Users, oldEmail)
	stored := *user
	m.Users[user.Email] = &stored
	return nil
}

// DeleteByEmail implements the UserStore interface. Deleting an absent
// email is a no-op, matching the real store's semantics.
func (m *MockUserStore) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFn != nil {
		return m.DeleteByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Users, email)
	return nil
}

// Len reports the number of stored users.
func (m *MockUserStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Users)
}
