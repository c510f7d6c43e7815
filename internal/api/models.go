package api

import "github.com/Bauumgarten/usuario/internal/domain"

// Request payloads. Partial-update payloads use pointer fields so that an
// absent field is distinguishable from an empty one; absent means "leave
// the stored value unchanged".

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserPatchRequest defines the partial-update payload for the caller's
// account.
type UserPatchRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AddressRequest defines the payload for address creation. Any owner the
// client supplies is ignored; the owner is always the resolved caller.
type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// AddressPatchRequest defines the partial-update payload for an address.
type AddressPatchRequest struct {
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	Complement *string `json:"complement"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

// PhoneRequest defines the payload for phone creation.
type PhoneRequest struct {
	Number   string `json:"number"`
	AreaCode string `json:"area_code"`
	Type     string `json:"type"`
}

// PhonePatchRequest defines the partial-update payload for a phone.
type PhonePatchRequest struct {
	Number   *string `json:"number"`
	AreaCode *string `json:"area_code"`
	Type     *string `json:"type"`
}

// Response payloads.

// TokenResponse carries the bearer token returned by login, already
// prefixed so clients can send it back verbatim in the Authorization
// header.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the wire representation of an account. The password
// hash is never included.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddressResponse is the wire representation of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	UserID     int64  `json:"user_id"`
}

// PhoneResponse is the wire representation of a phone.
type PhoneResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	AreaCode string `json:"area_code"`
	Type     string `json:"type"`
	UserID   int64  `json:"user_id"`
}

// Conversions between wire and domain records.

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		City:       a.City,
		PostalCode: a.PostalCode,
		State:      a.State,
		UserID:     a.UserID,
	}
}

func toPhoneResponse(p *domain.Phone) PhoneResponse {
	return PhoneResponse{
		ID:       p.ID,
		Number:   p.Number,
		AreaCode: p.AreaCode,
		Type:     p.Type,
		UserID:   p.UserID,
	}
}

func (r AddressRequest) toDomain() domain.Address {
	return domain.Address{
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		City:       r.City,
		PostalCode: r.PostalCode,
		State:      r.State,
	}
}

func (r PhoneRequest) toDomain() domain.Phone {
	return domain.Phone{
		Number:   r.Number,
		AreaCode: r.AreaCode,
		Type:     r.Type,
	}
}

func (r UserPatchRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

func (r AddressPatchRequest) toPatch() domain.AddressPatch {
	return domain.AddressPatch{
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		City:       r.City,
		PostalCode: r.PostalCode,
		State:      r.State,
	}
}

func (r PhonePatchRequest) toPatch() domain.PhonePatch {
	return domain.PhonePatch{
		Number:   r.Number,
		AreaCode: r.AreaCode,
		Type:     r.Type,
	}
}
