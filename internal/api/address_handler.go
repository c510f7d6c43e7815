package api

import (
	"net/http"
	"strconv"

	"github.com/Bauumgarten/usuario/internal/api/shared"
	"github.com/Bauumgarten/usuario/internal/service"
)

// AddressHandler handles address-related API requests.
type AddressHandler struct {
	addressService *service.AddressService
}

// NewAddressHandler creates a new AddressHandler with the given
// dependencies.
func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// Create handles POST /usuario/endereco. The owner is always the account
// resolved from the bearer token.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	address, err := h.addressService.CreateForCaller(
		r.Context(),
		r.Header.Get("Authorization"),
		req.toDomain(),
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAddressResponse(address))
}

// Update handles PUT /usuario/endereco?id=. The lookup is id-scoped;
// ownership of the address is not verified (see AddressService.UpdateByID).
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter id must be a number")
		return
	}

	var req AddressPatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	address, err := h.addressService.UpdateByID(r.Context(), id, req.toPatch())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAddressResponse(address))
}
