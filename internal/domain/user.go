package domain

// User represents a registered account. The email is unique across all
// accounts; the database constraint on usuario.email is the source of truth
// for that invariant.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // never exposed in JSON
}

// NewUser builds a User pending registration. The password arrives in
// plaintext and must be hashed by the caller before the user is persisted;
// NewUser never stores it on the struct.
//
// Field-format validation (email shape, password strength) is the transport
// boundary's concern. Only presence is checked here because registration is
// meaningless without both values.
func NewUser(name, email, password string) (*User, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return &User{
		Name:  name,
		Email: email,
	}, nil
}

// UserPatch is a partial update for a User. Nil fields keep the stored
// value. Password, when set, is the new plaintext secret and is hashed
// before it is merged.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}
