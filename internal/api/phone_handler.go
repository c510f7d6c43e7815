package api

import (
	"net/http"
	"strconv"

	"github.com/Bauumgarten/usuario/internal/api/shared"
	"github.com/Bauumgarten/usuario/internal/service"
)

// PhoneHandler handles phone-related API requests.
type PhoneHandler struct {
	phoneService *service.PhoneService
}

// NewPhoneHandler creates a new PhoneHandler with the given dependencies.
func NewPhoneHandler(phoneService *service.PhoneService) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

// Create handles POST /usuario/telefone. The owner is always the account
// resolved from the bearer token.
func (h *PhoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PhoneRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	phone, err := h.phoneService.CreateForCaller(
		r.Context(),
		r.Header.Get("Authorization"),
		req.toDomain(),
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPhoneResponse(phone))
}

// Update handles PUT /usuario/telefone?id=. The lookup is id-scoped;
// ownership of the phone is not verified (see PhoneService.UpdateByID).
func (h *PhoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter id must be a number")
		return
	}

	var req PhonePatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	phone, err := h.phoneService.UpdateByID(r.Context(), id, req.toPatch())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toPhoneResponse(phone))
}
