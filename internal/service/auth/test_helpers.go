package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function,
// used by tests to exercise expiry and clock-skew behavior with fixed times.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
