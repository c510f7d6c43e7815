package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/mocks"
	"github.com/Bauumgarten/usuario/internal/service/auth"
	"github.com/Bauumgarten/usuario/internal/store"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves caller from a valid bearer token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		userStore.Users["ana@example.com"] = &domain.User{
			ID:    1,
			Email: "ana@example.com",
		}
		resolver := NewIdentityResolver(&mocks.MockJWTService{}, userStore, nil)

		user, err := resolver.Resolve(context.Background(), "Bearer "+mocks.TokenFor("ana@example.com"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("rejects malformed headers before any store lookup", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			header string
		}{
			{name: "empty header", header: ""},
			{name: "shorter than the prefix", header: "Bearer"},
			{name: "wrong prefix", header: "Basic dXNlcjpwYXNz"},
			{name: "lowercase prefix", header: "bearer " + mocks.TokenFor("ana@example.com")},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				lookups := 0
				userStore := mocks.NewMockUserStore()
				userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
					lookups++
					return nil, store.ErrUserNotFound
				}
				validations := 0
				jwtService := &mocks.MockJWTService{
					ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
						validations++
						return nil, auth.ErrInvalidToken
					},
				}
				resolver := NewIdentityResolver(jwtService, userStore, nil)

				_, err := resolver.Resolve(context.Background(), tc.header)
				assert.ErrorIs(t, err, auth.ErrMissingToken)
				assert.Zero(t, validations, "token must not be parsed")
				assert.Zero(t, lookups, "store must not be queried")
			})
		}
	})

	t.Run("invalid token surfaces as an auth error", func(t *testing.T) {
		t.Parallel()
		lookups := 0
		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			lookups++
			return nil, store.ErrUserNotFound
		}
		resolver := NewIdentityResolver(&mocks.MockJWTService{}, userStore, nil)

		_, err := resolver.Resolve(context.Background(), "Bearer not-a-real-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Zero(t, lookups, "store must not be queried for an invalid token")
	})

	t.Run("valid token for a deleted account is not-found, not auth", func(t *testing.T) {
		t.Parallel()
		resolver := NewIdentityResolver(&mocks.MockJWTService{}, mocks.NewMockUserStore(), nil)

		_, err := resolver.Resolve(context.Background(), "Bearer "+mocks.TokenFor("gone@example.com"))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NotErrorIs(t, err, auth.ErrInvalidToken)
	})
}
