package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Bauumgarten/usuario/internal/mocks"
	"github.com/Bauumgarten/usuario/internal/service"
)

// testEnv bundles the mock stores behind a router wired exactly like the
// production route table.
type testEnv struct {
	router       *chi.Mux
	userStore    *mocks.MockUserStore
	addressStore *mocks.MockAddressStore
	phoneStore   *mocks.MockPhoneStore
}

func newTestEnv() *testEnv {
	userStore := mocks.NewMockUserStore()
	addressStore := mocks.NewMockAddressStore()
	phoneStore := mocks.NewMockPhoneStore()

	jwtService := &mocks.MockJWTService{}
	hasher := &mocks.MockHasher{}

	identity := service.NewIdentityResolver(jwtService, userStore, nil)
	merger := service.NewMerger(hasher)
	userService := service.NewUserService(userStore, hasher, identity, merger, nil)
	addressService := service.NewAddressService(addressStore, identity, merger, nil)
	phoneService := service.NewPhoneService(phoneStore, identity, merger, nil)

	authHandler := NewAuthHandler(userStore, jwtService, hasher)
	userHandler := NewUserHandler(userService)
	addressHandler := NewAddressHandler(addressService)
	phoneHandler := NewPhoneHandler(phoneService)

	r := chi.NewRouter()
	r.Route("/usuario", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Post("/", userHandler.Register)
		r.Get("/", userHandler.GetByEmail)
		r.Put("/", userHandler.Update)
		r.Delete("/{email}", userHandler.DeleteByEmail)

		r.Post("/endereco", addressHandler.Create)
		r.Put("/endereco", addressHandler.Update)

		r.Post("/telefone", phoneHandler.Create)
		r.Put("/telefone", phoneHandler.Update)
	})

	return &testEnv{
		router:       r,
		userStore:    userStore,
		addressStore: addressStore,
		phoneStore:   phoneStore,
	}
}

// do performs a request against the test router. A non-nil body is JSON
// encoded; a non-empty authHeader is sent as the Authorization header.
func (e *testEnv) do(t *testing.T, method, target, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and fails the test on any
// non-200 response.
func (e *testEnv) register(t *testing.T, name, email, password string) UserResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/usuario", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "registration failed: %s", rec.Body.String())

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func strPtr(s string) *string {
	return &s
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
