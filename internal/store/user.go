package store

import (
	"context"

	"github.com/Bauumgarten/usuario/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user and fills in its generated ID.
	// The user's HashedPassword must already be set; plaintext secrets
	// never reach the store.
	// Returns ErrEmailExists if the email is already taken. The database
	// unique constraint on usuario.email is the actual enforcer; callers
	// may also hit ErrEmailExists from a racing insert even after a
	// successful ExistsByEmail check.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update overwrites an existing user's row with the given record.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists if the new email collides with another account.
	Update(ctx context.Context, user *domain.User) error

	// DeleteByEmail removes the user with the given email if one exists.
	// Deleting an absent email is a no-op, not an error.
	DeleteByEmail(ctx context.Context, email string) error
}
