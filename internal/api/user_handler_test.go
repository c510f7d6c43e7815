package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bauumgarten/usuario/internal/api/shared"
	"github.com/Bauumgarten/usuario/internal/mocks"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns the created account without the password", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodPost, "/usuario", "", RegisterRequest{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[UserResponse](t, rec)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "Ana", resp.Name)
		assert.Equal(t, "ana@example.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), "secret",
			"password must never appear in the response")
	})

	t.Run("duplicate email responds 409", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPost, "/usuario", "", RegisterRequest{
			Name:     "Outra",
			Email:    "ana@example.com",
			Password: "other",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "Email already registered", resp.Error)
	})

	t.Run("missing required fields respond 400", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodPost, "/usuario", "", RegisterRequest{Name: "Ana"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body responds 400", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodPost, "/usuario", "", "not-an-object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetByEmailEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns the account for a registered email", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		created := env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodGet, "/usuario?email=ana@example.com", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[UserResponse](t, rec)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "ana@example.com", resp.Email)
	})

	t.Run("unknown email responds 404", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodGet, "/usuario?email=missing@example.com", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "User not found", resp.Error)
	})

	t.Run("missing email parameter responds 400", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodGet, "/usuario", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteByEmailEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing account", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodDelete, "/usuario/ana@example.com", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, env.userStore.Len())
	})

	t.Run("deleting an absent email also responds 200", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodDelete, "/usuario/nobody@example.com", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUpdateEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("merges the patch onto the caller's account", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPut, "/usuario",
			"Bearer "+mocks.TokenFor("ana@example.com"),
			UserPatchRequest{Name: strPtr("Ana Maria")})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[UserResponse](t, rec)
		assert.Equal(t, "Ana Maria", resp.Name)
		assert.Equal(t, "ana@example.com", resp.Email)
	})

	t.Run("missing Authorization header responds 401", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPut, "/usuario", "",
			UserPatchRequest{Name: strPtr("Ana Maria")})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer Authorization header responds 401", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPut, "/usuario", "Basic dXNlcjpwYXNz",
			UserPatchRequest{Name: strPtr("Ana Maria")})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token for a deleted account responds 404", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")
		env.do(t, http.MethodDelete, "/usuario/ana@example.com", "", nil)

		rec := env.do(t, http.MethodPut, "/usuario",
			"Bearer "+mocks.TokenFor("ana@example.com"),
			UserPatchRequest{Name: strPtr("Ana Maria")})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
