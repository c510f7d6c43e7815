package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bauumgarten/usuario/internal/api/shared"
	"github.com/Bauumgarten/usuario/internal/service"
)

// UserHandler handles account-related API requests.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /usuario.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponse(user))
}

// GetByEmail handles GET /usuario?email=.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter email is required")
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponse(user))
}

// DeleteByEmail handles DELETE /usuario/{email}. Deleting an email with no
// account behind it succeeds with the same 200 as a real delete.
func (h *UserHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Path parameter email is required")
		return
	}

	if err := h.userService.DeleteByEmail(r.Context(), email); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Update handles PUT /usuario. The raw Authorization header value is
// passed to the core untouched; the "Bearer " prefix contract lives in the
// identity resolver.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UserPatchRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.UpdateCaller(r.Context(), r.Header.Get("Authorization"), req.toPatch())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponse(user))
}
