package domain

// Address is a postal address owned by exactly one User. UserID is the
// owning account's id; it is stamped by the service layer from the caller
// resolved out of the bearer token, never taken from client input.
//
// The relationship to User exists only through UserID. The schema declares
// no foreign key, matching the persisted layout, so deleting a user leaves
// its addresses orphaned rather than cascading.
type Address struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	UserID     int64  `json:"user_id"`
}

// AddressPatch is a partial update for an Address. Nil fields keep the
// stored value. The owner is not patchable.
type AddressPatch struct {
	Street     *string
	Number     *string
	Complement *string
	City       *string
	PostalCode *string
	State      *string
}
