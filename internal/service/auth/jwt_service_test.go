package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bauumgarten/usuario/internal/config"
)

const testSecret = "test-secret-thats-long-enough-for-hmac-256"

func configWithSecret(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 30,
	}
}

func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(now))
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "each token carries a unique id")
	assert.True(t, claims.IssuedAt.Equal(now),
		"issued at %v, want %v", claims.IssuedAt, now)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(30*time.Minute)),
		"expires at %v, want %v", claims.ExpiresAt, now.Add(30*time.Minute))
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(issued))
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "ana@example.com")
	require.NoError(t, err)

	// Validate one second past expiry.
	late := NewTestJWTService(testSecret, 30*time.Minute,
		fixedTime(issued.Add(30*time.Minute+time.Second)))

	_, err = late.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_StillValidJustBeforeExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(issued))
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "ana@example.com")
	require.NoError(t, err)

	almost := NewTestJWTService(testSecret, 30*time.Minute,
		fixedTime(issued.Add(30*time.Minute-time.Second)))

	claims, err := almost.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(now))
	token, err := svc.GenerateToken(ctx, "ana@example.com")
	require.NoError(t, err)

	other := NewTestJWTService("another-secret-also-long-enough-to-sign", 30*time.Minute, fixedTime(now))
	_, err = other.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(now))
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "not-a-jwt"},
		{name: "missing segments", token: "aaaa.bbbb"},
		{name: "garbage segments", token: "aaaa.bbbb.cccc"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.ValidateToken(ctx, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateToken_UnsignedAlgRejected(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, 30*time.Minute, fixedTime(now))

	// Header {"alg":"none","typ":"JWT"} with an arbitrary subject claim.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJhbmFAZXhhbXBsZS5jb20ifQ."

	_, err := svc.ValidateToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(configWithSecret("too-short"))
	assert.Error(t, err)

	svc, err := NewJWTService(configWithSecret(testSecret))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
