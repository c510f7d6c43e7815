package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// The authenticated identity is the account email, carried as the token's
// subject claim.
type JWTService interface {
	// GenerateToken creates a signed JWT for the given account email.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for anything else that fails verification.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified claims extracted from a token.
type Claims struct {
	// Email is the account email the token was issued for (subject claim).
	Email string

	// Standard registered JWT claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
