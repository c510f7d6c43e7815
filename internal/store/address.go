package store

import (
	"context"

	"github.com/Bauumgarten/usuario/internal/domain"
)

// AddressStore defines the interface for address persistence.
type AddressStore interface {
	// Create saves a new address and fills in its generated ID.
	// The address's UserID must already be stamped by the caller.
	Create(ctx context.Context, address *domain.Address) error

	// GetByID retrieves an address by its primary key.
	// Returns ErrAddressNotFound if no such address exists.
	GetByID(ctx context.Context, id int64) (*domain.Address, error)

	// Update overwrites an existing address's row with the given record.
	// Returns ErrAddressNotFound if the address does not exist.
	Update(ctx context.Context, address *domain.Address) error
}
