package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/mocks"
)

func TestCreateAddressEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates an address owned by the caller", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		owner := env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPost, "/usuario/endereco",
			"Bearer "+mocks.TokenFor("ana@example.com"),
			AddressRequest{
				Street:     "Rua das Flores",
				Number:     "100",
				City:       "Recife",
				PostalCode: "50000-000",
				State:      "PE",
			})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[AddressResponse](t, rec)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, owner.ID, resp.UserID)
		assert.Equal(t, "Rua das Flores", resp.Street)
	})

	t.Run("missing Authorization header responds 401", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.register(t, "Ana", "ana@example.com", "secret")

		rec := env.do(t, http.MethodPost, "/usuario/endereco", "",
			AddressRequest{City: "Recife"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, env.addressStore.Addresses)
	})
}

func TestUpdateAddressEndpoint(t *testing.T) {
	t.Parallel()

	seed := func(env *testEnv, userID int64) int64 {
		addr := &domain.Address{
			ID:     1,
			Street: "Rua das Flores",
			City:   "Recife",
			State:  "PE",
			UserID: userID,
		}
		env.addressStore.Addresses[addr.ID] = addr
		return addr.ID
	}

	t.Run("merges the patch onto the stored address", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		id := seed(env, 7)

		rec := env.do(t, http.MethodPut, fmt.Sprintf("/usuario/endereco?id=%d", id), "",
			AddressPatchRequest{City: strPtr("Olinda")})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[AddressResponse](t, rec)
		assert.Equal(t, "Olinda", resp.City)
		assert.Equal(t, "Rua das Flores", resp.Street)
		assert.Equal(t, int64(7), resp.UserID)
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodPut, "/usuario/endereco?id=99", "",
			AddressPatchRequest{City: strPtr("Olinda")})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id responds 400", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()

		rec := env.do(t, http.MethodPut, "/usuario/endereco?id=abc", "",
			AddressPatchRequest{City: strPtr("Olinda")})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
