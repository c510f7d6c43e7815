package store

import (
	"context"

	"github.com/Bauumgarten/usuario/internal/domain"
)

// PhoneStore defines the interface for phone persistence.
type PhoneStore interface {
	// Create saves a new phone and fills in its generated ID.
	// The phone's UserID must already be stamped by the caller.
	// Returns ErrPhoneNumberExists if the number is already registered.
	Create(ctx context.Context, phone *domain.Phone) error

	// GetByID retrieves a phone by its primary key.
	// Returns ErrPhoneNotFound if no such phone exists.
	GetByID(ctx context.Context, id int64) (*domain.Phone, error)

	// Update overwrites an existing phone's row with the given record.
	// Returns ErrPhoneNotFound if the phone does not exist and
	// ErrPhoneNumberExists if the new number collides with another phone.
	Update(ctx context.Context, phone *domain.Phone) error
}
