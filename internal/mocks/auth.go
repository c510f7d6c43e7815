package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Bauumgarten/usuario/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing. The default
// implementation issues tokens of the form "token-for:<email>" and
// validates only tokens of that shape, so tests never need a real signing
// key.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, email string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

const mockTokenPrefix = "token-for:"

// TokenFor returns the mock token string the default implementation would
// issue for the given email.
func TokenFor(email string) string {
	return mockTokenPrefix + email
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, email)
	}
	return TokenFor(email), nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if len(tokenString) <= len(mockTokenPrefix) || tokenString[:len(mockTokenPrefix)] != mockTokenPrefix {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{
		Email:     tokenString[len(mockTokenPrefix):],
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

// MockHasher implements auth.PasswordHasher for testing without the cost
// of real bcrypt. Hashes have the form "hashed:<password>".
type MockHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockHasher)(nil)

// Hash implements the PasswordHasher interface.
func (m *MockHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface.
func (m *MockHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}
