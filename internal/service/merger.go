package service

import (
	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/service/auth"
)

// Merger applies partial updates onto existing records. A field set on the
// patch overwrites the stored value; a nil field leaves it untouched.
// Merging never persists anything; callers own persistence.
type Merger struct {
	hasher auth.PasswordHasher
}

// NewMerger creates a Merger using the given credential hasher for
// password fields.
func NewMerger(hasher auth.PasswordHasher) *Merger {
	return &Merger{hasher: hasher}
}

// MergeUser merges a user patch onto an existing user. A non-nil Password
// is hashed before it replaces the stored hash; a nil Password keeps the
// stored hash untouched.
func (m *Merger) MergeUser(existing domain.User, patch domain.UserPatch) (domain.User, error) {
	merged := existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := m.hasher.Hash(*patch.Password)
		if err != nil {
			return domain.User{}, err
		}
		merged.HashedPassword = hashed
	}
	return merged, nil
}

// MergeAddress merges an address patch onto an existing address. The ID
// and owner are never touched.
func (m *Merger) MergeAddress(existing domain.Address, patch domain.AddressPatch) domain.Address {
	merged := existing
	if patch.Street != nil {
		merged.Street = *patch.Street
	}
	if patch.Number != nil {
		merged.Number = *patch.Number
	}
	if patch.Complement != nil {
		merged.Complement = *patch.Complement
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.PostalCode != nil {
		merged.PostalCode = *patch.PostalCode
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	return merged
}

// MergePhone merges a phone patch onto an existing phone. The ID and owner
// are never touched.
func (m *Merger) MergePhone(existing domain.Phone, patch domain.PhonePatch) domain.Phone {
	merged := existing
	if patch.Number != nil {
		merged.Number = *patch.Number
	}
	if patch.AreaCode != nil {
		merged.AreaCode = *patch.AreaCode
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	return merged
}
