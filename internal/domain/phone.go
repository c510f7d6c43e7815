package domain

// Phone is a phone number owned by exactly one User. Number is unique
// across all phones (telefone.numero carries the constraint). Type is a
// free-form label such as "celular" or "fixo".
type Phone struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	AreaCode string `json:"area_code"`
	Type     string `json:"type"`
	UserID   int64  `json:"user_id"`
}

// PhonePatch is a partial update for a Phone. Nil fields keep the stored
// value. The owner is not patchable.
type PhonePatch struct {
	Number   *string
	AreaCode *string
	Type     *string
}
